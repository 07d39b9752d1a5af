package domain

// BotState is the current step of a multi-message workflow in a chat
type BotState string

const (
	StateNone              BotState = ""
	StateWaitBroadcastText BotState = "wait_broadcast_text"
	StateWaitAnswerText    BotState = "wait_answer_text"
)

// ChatState holds the active workflow step for a chat. The answer workflow
// carries the bound question id on the same row, so there is at most one
// state row per chat and no separate binding table.
type ChatState struct {
	ChatID     int64
	State      BotState
	QuestionID int // set only when State is StateWaitAnswerText
}
