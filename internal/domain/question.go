package domain

// QuestionStatus is the lifecycle stage of a client question
type QuestionStatus int

const (
	StatusOpen      QuestionStatus = 1
	StatusAbandoned QuestionStatus = 2
	StatusResolved  QuestionStatus = 3
)

// Label returns user-friendly status name
func (s QuestionStatus) Label() string {
	switch s {
	case StatusOpen:
		return "Открыт"
	case StatusAbandoned:
		return "Заброшено"
	case StatusResolved:
		return "Решено"
	default:
		return "Статус не опознан"
	}
}

// Closed reports whether the question left the open queue
func (s QuestionStatus) Closed() bool {
	return s == StatusAbandoned || s == StatusResolved
}

// Question represents a client question raised in a group chat
type Question struct {
	ID          int
	ChatID      int64
	ClientID    int64
	ClientLogin string
	MessageID   int
	Title       string
	Description string
	Answer      string
	Status      QuestionStatus
}
