package postgres

import (
	"database/sql"

	"adminbot/internal/domain"
)

// QuestionRepo implements repository.QuestionRepository
type QuestionRepo struct {
	db *sql.DB
}

// NewQuestionRepo creates a new question repository
func NewQuestionRepo(db *sql.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

const questionColumns = `id, chat_id, client_id, client_login, message_id, title, description, answer, status`

// OpenQuestions returns all questions still waiting for an answer
func (r *QuestionRepo) OpenQuestions() ([]domain.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions
		WHERE status = $1
		ORDER BY id
	`
	rows, err := r.db.Query(query, domain.StatusOpen)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// ClosedQuestions returns all abandoned and resolved questions
func (r *QuestionRepo) ClosedQuestions() ([]domain.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions
		WHERE status = $1 OR status = $2
		ORDER BY id
	`
	rows, err := r.db.Query(query, domain.StatusAbandoned, domain.StatusResolved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// GetQuestion returns a single question by id
func (r *QuestionRepo) GetQuestion(id int) (*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

	q, err := scanQuestion(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

// ResolveQuestion records the answer and marks the question resolved
func (r *QuestionRepo) ResolveQuestion(id int, answer string) error {
	query := `UPDATE questions SET answer = $2, status = $3 WHERE id = $1`
	res, err := r.db.Exec(query, id, answer, domain.StatusResolved)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// AbandonQuestion marks the question abandoned; the answer field is untouched
func (r *QuestionRepo) AbandonQuestion(id int) error {
	query := `UPDATE questions SET status = $2 WHERE id = $1`
	res, err := r.db.Exec(query, id, domain.StatusAbandoned)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (*domain.Question, error) {
	var q domain.Question
	var answer sql.NullString
	err := row.Scan(
		&q.ID, &q.ChatID, &q.ClientID, &q.ClientLogin,
		&q.MessageID, &q.Title, &q.Description, &answer, &q.Status,
	)
	if err != nil {
		return nil, err
	}
	q.Answer = answer.String
	return &q, nil
}

func scanQuestions(rows *sql.Rows) ([]domain.Question, error) {
	var questions []domain.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, rows.Err()
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
