package handler

import (
	"errors"
	"fmt"

	"adminbot/internal/domain"
	"adminbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// showOpenQuestions lists open questions, one message per question with
// answer/abandon buttons
func (h *Handler) showOpenQuestions(c tele.Context) error {
	cards, err := h.questions.Open()
	if err != nil {
		return err
	}

	if err := c.Send("Список открытых вопросов"); err != nil {
		return err
	}
	if len(cards) == 0 {
		return c.Send("Нет открытых вопросов")
	}

	for _, card := range cards {
		if err := c.Send(formatOpenQuestion(card), questionActionsMarkup(card.Question.ID)); err != nil {
			return err
		}
	}
	return nil
}

// showClosedQuestions lists abandoned and resolved questions without
// action buttons
func (h *Handler) showClosedQuestions(c tele.Context) error {
	cards, err := h.questions.Closed()
	if err != nil {
		return err
	}

	if err := c.Send("Список закрытых вопросов"); err != nil {
		return err
	}
	if len(cards) == 0 {
		return c.Send("Нет закрытых вопросов")
	}

	for _, card := range cards {
		if err := c.Send(formatClosedQuestion(card)); err != nil {
			return err
		}
	}
	return nil
}

// answerWithText resolves the question bound to this chat with the given
// answer text. A missing binding is an expected, handled condition.
func (h *Handler) answerWithText(c tele.Context, chatID int64, text string) error {
	question, err := h.questions.Answer(chatID, text)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.logger.Warn("answer text received with no bound question",
				zap.Int64("chat_id", chatID),
			)
			return nil
		}
		return err
	}

	h.logger.Info("answer delivered",
		zap.Int("question_id", question.ID),
		zap.Int64("chat_id", chatID),
	)

	return c.Send("Вы ответили на вопрос")
}

func formatOpenQuestion(card service.QuestionCard) string {
	q := card.Question
	return fmt.Sprintf(
		"Группа: %s\nКлиент: @%s\n\nТема:\n%s\nВопрос: %s",
		card.GroupName, q.ClientLogin, q.Title, q.Description,
	)
}

func formatClosedQuestion(card service.QuestionCard) string {
	q := card.Question
	return fmt.Sprintf(
		"Статус: %s\nГруппа: %s\nКлиент: @%s\n\nТема:\n%s\nВопрос: %s\nОтвет: %s",
		q.Status.Label(), card.GroupName, q.ClientLogin, q.Title, q.Description, q.Answer,
	)
}

func questionActionsMarkup(questionID int) *tele.ReplyMarkup {
	return &tele.ReplyMarkup{
		InlineKeyboard: [][]tele.InlineButton{{
			{Text: "Ответить", Data: fmt.Sprintf("%s?%d", domain.ActionAnswerQuestion, questionID)},
			{Text: "Забросить", Data: fmt.Sprintf("%s?%d", domain.ActionQuitQuestion, questionID)},
		}},
	}
}
