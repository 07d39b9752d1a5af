package repository

import (
	"adminbot/internal/domain"
)

// AdminRepository defines the admin directory lookup
type AdminRepository interface {
	IsAdmin(telegramID int64) (bool, error)
}

// StateRepository defines workflow state and pending media operations
type StateRepository interface {
	// SetState upserts the state row; at most one row per chat id.
	SetState(state domain.ChatState) error
	// GetState returns the active state or nil when the chat has none.
	GetState(chatID int64) (*domain.ChatState, error)
	// ClearState deletes the state row if it exists; no-op otherwise.
	ClearState(chatID int64) error

	// SetPendingMedia remembers the media message to attach to the next
	// broadcast from this chat, replacing any earlier one.
	SetPendingMedia(chatID int64, messageID int) error
	// TakePendingMedia consumes the pending media message id, returning 0
	// when there is none.
	TakePendingMedia(chatID int64) (int, error)
}

// QuestionRepository defines question data operations
type QuestionRepository interface {
	OpenQuestions() ([]domain.Question, error)
	ClosedQuestions() ([]domain.Question, error)
	GetQuestion(id int) (*domain.Question, error)
	ResolveQuestion(id int, answer string) error
	AbandonQuestion(id int) error
}

// GroupRepository defines the group chat registry lookups
type GroupRepository interface {
	ListGroupChatIDs() ([]int64, error)
	GetGroupChat(chatID int64) (*domain.GroupChat, error)
}
