package postgres

import (
	"database/sql"

	"adminbot/internal/domain"
)

// StateRepo implements repository.StateRepository
type StateRepo struct {
	db *sql.DB
}

// NewStateRepo creates a new state repository
func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// SetState upserts the workflow state for a chat. The upsert keeps the
// one-row-per-chat invariant in the store instead of trusting callers
// to clear before setting.
func (r *StateRepo) SetState(state domain.ChatState) error {
	query := `
		INSERT INTO chat_states (chat_id, state, question_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (chat_id)
		DO UPDATE SET state = EXCLUDED.state, question_id = EXCLUDED.question_id
	`
	_, err := r.db.Exec(query, state.ChatID, string(state.State), state.QuestionID)
	return err
}

// GetState returns the active workflow state for a chat, or nil if none
func (r *StateRepo) GetState(chatID int64) (*domain.ChatState, error) {
	var st domain.ChatState
	var state string
	query := `SELECT chat_id, state, question_id FROM chat_states WHERE chat_id = $1`
	err := r.db.QueryRow(query, chatID).Scan(&st.ChatID, &state, &st.QuestionID)

	if err == sql.ErrNoRows {
		// No active workflow for this chat
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	st.State = domain.BotState(state)
	return &st, nil
}

// ClearState removes the workflow state for a chat; no-op if absent
func (r *StateRepo) ClearState(chatID int64) error {
	query := `DELETE FROM chat_states WHERE chat_id = $1`
	_, err := r.db.Exec(query, chatID)
	return err
}

// SetPendingMedia remembers the media message to attach to the next
// broadcast from this chat, replacing any earlier one
func (r *StateRepo) SetPendingMedia(chatID int64, messageID int) error {
	query := `
		INSERT INTO pending_media (chat_id, message_id)
		VALUES ($1, $2)
		ON CONFLICT (chat_id)
		DO UPDATE SET message_id = EXCLUDED.message_id
	`
	_, err := r.db.Exec(query, chatID, messageID)
	return err
}

// TakePendingMedia consumes the pending media message id for a chat.
// Returns 0 when there is none.
func (r *StateRepo) TakePendingMedia(chatID int64) (int, error) {
	var messageID int
	query := `DELETE FROM pending_media WHERE chat_id = $1 RETURNING message_id`
	err := r.db.QueryRow(query, chatID).Scan(&messageID)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return messageID, nil
}
