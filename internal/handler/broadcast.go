package handler

import (
	"strings"

	"adminbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// broadcastTextLabel prefixes the broadcast text in the confirmation
// prompt; launch extracts the text back out after this label.
const broadcastTextLabel = "Ваш текст для рассылки:\n"

// broadcastConfirmText builds the confirmation prompt embedding the
// broadcast text verbatim
func broadcastConfirmText(text string) string {
	return broadcastTextLabel + text
}

// broadcastTextFrom extracts the broadcast text back out of the
// confirmation prompt
func broadcastTextFrom(confirmation string) (string, bool) {
	return strings.CutPrefix(confirmation, broadcastTextLabel)
}

// confirmMarkup returns the edit/launch keyboard for the confirmation prompt
func confirmMarkup() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		InlineKeyboard: [][]tele.InlineButton{{
			{Text: "Редактировать", Data: string(domain.ActionEdit)},
			{Text: "Запустить рассылку", Data: string(domain.ActionLaunch)},
		}},
	}
}

// handleText handles free-form admin text according to the chat's state
func (h *Handler) handleText(c tele.Context) error {
	chatID := c.Chat().ID
	text := c.Text()

	state, err := h.states.GetState(chatID)
	if err != nil {
		return err
	}
	if state == nil {
		// No active workflow; unrecognized free text is a no-op
		return nil
	}

	switch state.State {
	case domain.StateWaitBroadcastText:
		if err := h.broadcasts.AcceptText(chatID); err != nil {
			return err
		}
		return c.Send(broadcastConfirmText(text), confirmMarkup())

	case domain.StateWaitAnswerText:
		return h.answerWithText(c, chatID, text)

	default:
		h.logger.Warn("chat in unexpected state",
			zap.Int64("chat_id", chatID),
			zap.String("state", string(state.State)),
		)
		return nil
	}
}

// handleMedia remembers a photo/video to attach to the next broadcast
// prepared in this chat. The media may arrive before or after the text.
func (h *Handler) handleMedia(c tele.Context) error {
	chatID := c.Chat().ID
	messageID := c.Message().ID

	h.logger.Info("pending broadcast media recorded",
		zap.Int64("chat_id", chatID),
		zap.Int("message_id", messageID),
	)

	return h.broadcasts.RecordMedia(chatID, messageID)
}
