package postgres

import (
	"testing"

	"adminbot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStateRepo_SetState(t *testing.T) {
	tests := []struct {
		name  string
		state domain.ChatState
	}{
		{
			name:  "broadcast state",
			state: domain.ChatState{ChatID: 100, State: domain.StateWaitBroadcastText},
		},
		{
			name:  "answer state with question id",
			state: domain.ChatState{ChatID: 100, State: domain.StateWaitAnswerText, QuestionID: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewStateRepo(db)

			mock.ExpectExec("INSERT INTO chat_states").
				WithArgs(tt.state.ChatID, string(tt.state.State), tt.state.QuestionID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			err = repo.SetState(tt.state)

			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStateRepo_GetState(t *testing.T) {
	tests := []struct {
		name     string
		chatID   int64
		mockRows *sqlmock.Rows
		expected *domain.ChatState
	}{
		{
			name:   "state found",
			chatID: 100,
			mockRows: sqlmock.NewRows([]string{"chat_id", "state", "question_id"}).
				AddRow(100, "wait_answer_text", 7),
			expected: &domain.ChatState{ChatID: 100, State: domain.StateWaitAnswerText, QuestionID: 7},
		},
		{
			name:     "no active state",
			chatID:   200,
			mockRows: sqlmock.NewRows([]string{"chat_id", "state", "question_id"}),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewStateRepo(db)

			mock.ExpectQuery("SELECT chat_id, state, question_id FROM chat_states").
				WithArgs(tt.chatID).
				WillReturnRows(tt.mockRows)

			state, err := repo.GetState(tt.chatID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, state)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStateRepo_ClearState_Idempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewStateRepo(db)

	// First clear removes the row, second finds nothing; both succeed
	mock.ExpectExec("DELETE FROM chat_states").
		WithArgs(int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM chat_states").
		WithArgs(int64(100)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.ClearState(100))
	assert.NoError(t, repo.ClearState(100))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_SetPendingMedia(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewStateRepo(db)

	mock.ExpectExec("INSERT INTO pending_media").
		WithArgs(int64(100), 555).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetPendingMedia(100, 555)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_TakePendingMedia(t *testing.T) {
	tests := []struct {
		name     string
		chatID   int64
		mockRows *sqlmock.Rows
		expected int
	}{
		{
			name:     "media pending",
			chatID:   100,
			mockRows: sqlmock.NewRows([]string{"message_id"}).AddRow(555),
			expected: 555,
		},
		{
			name:     "no media pending",
			chatID:   200,
			mockRows: sqlmock.NewRows([]string{"message_id"}),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewStateRepo(db)

			mock.ExpectQuery("DELETE FROM pending_media").
				WithArgs(tt.chatID).
				WillReturnRows(tt.mockRows)

			messageID, err := repo.TakePendingMedia(tt.chatID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, messageID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
