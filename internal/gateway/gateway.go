package gateway

import (
	"strconv"

	tele "gopkg.in/telebot.v3"
)

// Gateway sends outbound messages to the messaging platform on behalf of
// the bot. Services use it for sends addressed to chats other than the one
// the current update came from.
type Gateway interface {
	Send(chatID int64, text string, markup *tele.ReplyMarkup) error
	Forward(toChat, fromChat int64, messageID int) error
}

// TelebotGateway implements Gateway over a telebot instance
type TelebotGateway struct {
	bot *tele.Bot
}

// NewTelebotGateway creates a new gateway
func NewTelebotGateway(bot *tele.Bot) *TelebotGateway {
	return &TelebotGateway{bot: bot}
}

// Send sends a text message, optionally with an inline keyboard
func (g *TelebotGateway) Send(chatID int64, text string, markup *tele.ReplyMarkup) error {
	var err error
	if markup != nil {
		_, err = g.bot.Send(tele.ChatID(chatID), text, markup)
	} else {
		_, err = g.bot.Send(tele.ChatID(chatID), text)
	}
	return err
}

// Forward forwards a message between chats without a notification
func (g *TelebotGateway) Forward(toChat, fromChat int64, messageID int) error {
	stored := tele.StoredMessage{
		MessageID: strconv.Itoa(messageID),
		ChatID:    fromChat,
	}
	_, err := g.bot.Forward(tele.ChatID(toChat), stored, tele.Silent)
	return err
}
