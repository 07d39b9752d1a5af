package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start: greets the admin and shows the menu
func (h *Handler) handleStart(c tele.Context) error {
	greeting := "Привет! "
	if sender := c.Sender(); sender != nil && sender.FirstName != "" {
		greeting = "Привет, " + sender.FirstName + "! "
	}

	h.logger.Info("admin opened menu",
		zap.Int64("chat_id", c.Chat().ID),
		zap.Int64("admin_id", c.Sender().ID),
	)

	return c.Send(greeting+"Бот администрации.", mainMenuMarkup())
}
