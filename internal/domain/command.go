package domain

import (
	"strconv"
	"strings"
	"unicode"
)

// Action is a callback command carried in an inline button
type Action string

const (
	ActionUnknown            Action = ""
	ActionNewsletter         Action = "/newsletter"
	ActionEdit               Action = "/edit"
	ActionLaunch             Action = "/launch"
	ActionShowOpenQuestions  Action = "/show_open_questions"
	ActionShowCloseQuestions Action = "/show_close_questions"
	ActionAnswerQuestion     Action = "/answer_question"
	ActionQuitQuestion       Action = "/quit_question"
)

// CallbackCommand is a callback payload parsed once at the boundary.
// Parameterized actions carry their question id after a '?' separator,
// e.g. "/answer_question?7".
type CallbackCommand struct {
	Action     Action
	QuestionID int
	HasParam   bool
}

// ParseCallback parses raw callback data into a structured command.
// Unknown actions and malformed parameters yield ActionUnknown or a
// command with HasParam=false; the caller decides how to reply.
func ParseCallback(data string) CallbackCommand {
	data = cleanCallbackData(data)
	action, param, found := strings.Cut(data, "?")

	var cmd CallbackCommand
	switch Action(action) {
	case ActionNewsletter, ActionEdit, ActionLaunch,
		ActionShowOpenQuestions, ActionShowCloseQuestions:
		cmd.Action = Action(action)

	case ActionAnswerQuestion, ActionQuitQuestion:
		cmd.Action = Action(action)
		if found {
			if id, err := strconv.Atoi(strings.TrimSpace(param)); err == nil && id > 0 {
				cmd.QuestionID = id
				cmd.HasParam = true
			}
		}

	default:
		cmd.Action = ActionUnknown
	}

	return cmd
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}
