package middleware

import (
	"fmt"

	"adminbot/internal/repository"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AdminMiddleware gates every update on the admin directory. Non-admins
// get a rejection reply in private chats and silence in groups, so the
// bot does not spam groups it is a member of.
func AdminMiddleware(admins repository.AdminRepository, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				logger.Warn("update without sender dropped")
				return nil
			}

			isAdmin, err := admins.IsAdmin(sender.ID)
			if err != nil {
				return fmt.Errorf("check admin %d: %w", sender.ID, err)
			}
			if isAdmin {
				return next(c)
			}

			logger.Info("non-admin update rejected",
				zap.Int64("sender_id", sender.ID),
			)

			if chat := c.Chat(); chat != nil && chat.Type == tele.ChatPrivate {
				return c.Send("Вы не являетесь администратором")
			}
			return nil
		}
	}
}
