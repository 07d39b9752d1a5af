package domain

// GroupChat is a group the bot is a member of; broadcasts fan out to these
type GroupChat struct {
	ChatID   int64
	ChatName string
}
