package postgres

import (
	"database/sql"

	"adminbot/internal/domain"
)

// GroupRepo implements repository.GroupRepository
type GroupRepo struct {
	db *sql.DB
}

// NewGroupRepo creates a new group registry repository
func NewGroupRepo(db *sql.DB) *GroupRepo {
	return &GroupRepo{db: db}
}

// ListGroupChatIDs returns the ids of every chat the bot broadcasts to
func (r *GroupRepo) ListGroupChatIDs() ([]int64, error) {
	query := `SELECT chat_id FROM bot_groups ORDER BY chat_id`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chatIDs []int64
	for rows.Next() {
		var chatID int64
		if err := rows.Scan(&chatID); err != nil {
			return nil, err
		}
		chatIDs = append(chatIDs, chatID)
	}

	return chatIDs, rows.Err()
}

// GetGroupChat returns registry data for a single chat
func (r *GroupRepo) GetGroupChat(chatID int64) (*domain.GroupChat, error) {
	var g domain.GroupChat
	query := `SELECT chat_id, chat_name FROM bot_groups WHERE chat_id = $1`
	err := r.db.QueryRow(query, chatID).Scan(&g.ChatID, &g.ChatName)

	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &g, nil
}
