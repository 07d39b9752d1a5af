package handler

import (
	"errors"

	"adminbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleCallback handles ALL callback queries. The payload is parsed once
// into a structured command before dispatch.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil || callback.Message == nil {
		h.logger.Warn("callback without message")
		return nil
	}

	cmd := domain.ParseCallback(callback.Data)
	chatID := callback.Message.Chat.ID

	h.logger.Info("processing callback",
		zap.String("action", string(cmd.Action)),
		zap.Int("question_id", cmd.QuestionID),
		zap.Int64("chat_id", chatID),
		zap.Int64("admin_id", c.Sender().ID),
	)

	// Acknowledge the press so the button stops spinning
	if err := c.Respond(); err != nil {
		h.logger.Warn("failed to acknowledge callback", zap.Error(err))
	}

	switch cmd.Action {
	case domain.ActionNewsletter, domain.ActionEdit:
		if err := h.broadcasts.Begin(chatID); err != nil {
			return err
		}
		return c.Send(msgEnterBroadcastText)

	case domain.ActionLaunch:
		text, ok := broadcastTextFrom(callback.Message.Text)
		if !ok {
			h.logger.Warn("launch pressed outside a confirmation prompt",
				zap.Int64("chat_id", chatID),
			)
			return c.Send(msgUnknownCommand)
		}
		return h.broadcasts.Launch(chatID, text)

	case domain.ActionShowOpenQuestions:
		return h.showOpenQuestions(c)

	case domain.ActionShowCloseQuestions:
		return h.showClosedQuestions(c)

	case domain.ActionAnswerQuestion:
		if !cmd.HasParam {
			return c.Send(msgUnknownCommand)
		}
		if err := h.questions.BeginAnswer(chatID, cmd.QuestionID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Stale card: the question is gone, tell the admin
				h.logger.Warn("answer requested for unknown question",
					zap.Int("question_id", cmd.QuestionID),
				)
				return c.Send(msgQuestionNotFound)
			}
			return err
		}
		return c.Send(msgEnterAnswerText)

	case domain.ActionQuitQuestion:
		if !cmd.HasParam {
			return c.Send(msgUnknownCommand)
		}
		if err := h.questions.Abandon(cmd.QuestionID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				h.logger.Warn("abandon requested for unknown question",
					zap.Int("question_id", cmd.QuestionID),
				)
				return c.Send(msgQuestionNotFound)
			}
			return err
		}
		return c.Send("Вопрос заброшен")

	default:
		return c.Send(msgUnknownCommand)
	}
}
