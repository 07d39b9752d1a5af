package testutil

import (
	"adminbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestQuestion creates an open test question
func NewTestQuestion(id int, chatID int64, title, description string) domain.Question {
	return domain.Question{
		ID:          id,
		ChatID:      chatID,
		ClientID:    chatID + 1000,
		ClientLogin: "client",
		MessageID:   1,
		Title:       title,
		Description: description,
		Status:      domain.StatusOpen,
	}
}

// NewTestState creates a chat state row
func NewTestState(chatID int64, state domain.BotState, questionID int) *domain.ChatState {
	return &domain.ChatState{
		ChatID:     chatID,
		State:      state,
		QuestionID: questionID,
	}
}
