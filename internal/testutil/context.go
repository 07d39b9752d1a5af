package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// FakeContext is a minimal tele.Context for middleware and handler tests.
// Only the accessors the update path touches are implemented; everything
// else panics through the embedded nil interface.
type FakeContext struct {
	tele.Context

	CurrentSender   *tele.User
	CurrentChat     *tele.Chat
	CurrentMessage  *tele.Message
	CurrentCallback *tele.Callback

	// Sent collects everything passed to Send, in order
	Sent []any
}

func (c *FakeContext) Sender() *tele.User {
	return c.CurrentSender
}

func (c *FakeContext) Chat() *tele.Chat {
	return c.CurrentChat
}

func (c *FakeContext) Message() *tele.Message {
	return c.CurrentMessage
}

func (c *FakeContext) Callback() *tele.Callback {
	return c.CurrentCallback
}

func (c *FakeContext) Text() string {
	if c.CurrentMessage == nil {
		return ""
	}
	return c.CurrentMessage.Text
}

func (c *FakeContext) Send(what any, opts ...any) error {
	c.Sent = append(c.Sent, what)
	return nil
}

func (c *FakeContext) Respond(resp ...*tele.CallbackResponse) error {
	return nil
}
