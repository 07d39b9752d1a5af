package postgres

import (
	"database/sql"
)

// AdminRepo implements repository.AdminRepository
type AdminRepo struct {
	db *sql.DB
}

// NewAdminRepo creates a new admin repository
func NewAdminRepo(db *sql.DB) *AdminRepo {
	return &AdminRepo{db: db}
}

// IsAdmin checks if the sender is in the admin directory
func (r *AdminRepo) IsAdmin(telegramID int64) (bool, error) {
	var isAdmin bool
	query := `SELECT EXISTS(SELECT 1 FROM bot_admins WHERE telegram_id = $1)`
	err := r.db.QueryRow(query, telegramID).Scan(&isAdmin)
	if err != nil {
		return false, err
	}
	return isAdmin, nil
}
