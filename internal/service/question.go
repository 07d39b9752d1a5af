package service

import (
	"errors"
	"fmt"

	"adminbot/internal/domain"
	"adminbot/internal/gateway"
	"adminbot/internal/repository"

	"go.uber.org/zap"
)

// QuestionCard is a question together with the name of the group it was
// asked in, ready for rendering
type QuestionCard struct {
	Question  domain.Question
	GroupName string
}

// QuestionService drives question triage: listings, answering, abandoning
type QuestionService struct {
	questions repository.QuestionRepository
	groups    repository.GroupRepository
	states    repository.StateRepository
	gw        gateway.Gateway
	logger    *zap.Logger
}

// NewQuestionService creates a new question service
func NewQuestionService(
	questions repository.QuestionRepository,
	groups repository.GroupRepository,
	states repository.StateRepository,
	gw gateway.Gateway,
	logger *zap.Logger,
) *QuestionService {
	return &QuestionService{
		questions: questions,
		groups:    groups,
		states:    states,
		gw:        gw,
		logger:    logger,
	}
}

// Open returns cards for every question still waiting for an answer
func (s *QuestionService) Open() ([]QuestionCard, error) {
	questions, err := s.questions.OpenQuestions()
	if err != nil {
		return nil, err
	}
	return s.cards(questions)
}

// Closed returns cards for every abandoned or resolved question
func (s *QuestionService) Closed() ([]QuestionCard, error) {
	questions, err := s.questions.ClosedQuestions()
	if err != nil {
		return nil, err
	}
	return s.cards(questions)
}

// BeginAnswer binds the chat to a question and enters the wait-for-answer
// step. Returns domain.ErrNotFound if the question does not exist.
func (s *QuestionService) BeginAnswer(chatID int64, questionID int) error {
	if _, err := s.questions.GetQuestion(questionID); err != nil {
		return err
	}
	return s.states.SetState(domain.ChatState{
		ChatID:     chatID,
		State:      domain.StateWaitAnswerText,
		QuestionID: questionID,
	})
}

// Answer resolves the question bound to this chat with the given text and
// relays the answer to the group the question was asked in. Returns
// domain.ErrNotFound when the chat has no bound question.
func (s *QuestionService) Answer(chatID int64, answer string) (*domain.Question, error) {
	state, err := s.states.GetState(chatID)
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}
	if state == nil || state.State != domain.StateWaitAnswerText || state.QuestionID == 0 {
		return nil, fmt.Errorf("no question bound to chat %d: %w", chatID, domain.ErrNotFound)
	}

	question, err := s.questions.GetQuestion(state.QuestionID)
	if err != nil {
		return nil, err
	}

	if err := s.questions.ResolveQuestion(question.ID, answer); err != nil {
		return nil, err
	}
	question.Answer = answer
	question.Status = domain.StatusResolved

	if err := s.states.ClearState(chatID); err != nil {
		return nil, fmt.Errorf("clear state: %w", err)
	}

	relay := fmt.Sprintf(
		"@%s\n\nОператор ответил на ваш вопрос.\nВаш вопрос:\n\n%s\n\nОтвет оператора:\n\n%s",
		question.ClientLogin, question.Description, answer,
	)
	if err := s.gw.Send(question.ChatID, relay, nil); err != nil {
		return nil, fmt.Errorf("relay answer to chat %d: %w", question.ChatID, err)
	}

	s.logger.Info("question resolved",
		zap.Int("question_id", question.ID),
		zap.Int64("chat_id", chatID),
	)

	return question, nil
}

// Abandon marks a question abandoned. Returns domain.ErrNotFound if the
// question does not exist.
func (s *QuestionService) Abandon(questionID int) error {
	return s.questions.AbandonQuestion(questionID)
}

func (s *QuestionService) cards(questions []domain.Question) ([]QuestionCard, error) {
	cards := make([]QuestionCard, 0, len(questions))
	for _, q := range questions {
		card := QuestionCard{Question: q}

		group, err := s.groups.GetGroupChat(q.ChatID)
		switch {
		case err == nil:
			card.GroupName = group.ChatName
		case errors.Is(err, domain.ErrNotFound):
			// Group left the registry; render the card without a name
			s.logger.Warn("question references unknown group",
				zap.Int("question_id", q.ID),
				zap.Int64("chat_id", q.ChatID),
			)
		default:
			return nil, err
		}

		cards = append(cards, card)
	}
	return cards, nil
}
