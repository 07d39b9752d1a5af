package testutil

import (
	"adminbot/internal/domain"

	"github.com/stretchr/testify/mock"
	tele "gopkg.in/telebot.v3"
)

// MockAdminRepository is a mock for AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) IsAdmin(telegramID int64) (bool, error) {
	args := m.Called(telegramID)
	return args.Bool(0), args.Error(1)
}

// MockStateRepository is a mock for StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) SetState(state domain.ChatState) error {
	args := m.Called(state)
	return args.Error(0)
}

func (m *MockStateRepository) GetState(chatID int64) (*domain.ChatState, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatState), args.Error(1)
}

func (m *MockStateRepository) ClearState(chatID int64) error {
	args := m.Called(chatID)
	return args.Error(0)
}

func (m *MockStateRepository) SetPendingMedia(chatID int64, messageID int) error {
	args := m.Called(chatID, messageID)
	return args.Error(0)
}

func (m *MockStateRepository) TakePendingMedia(chatID int64) (int, error) {
	args := m.Called(chatID)
	return args.Int(0), args.Error(1)
}

// MockQuestionRepository is a mock for QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) OpenQuestions() ([]domain.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) ClosedQuestions() ([]domain.Question, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetQuestion(id int) (*domain.Question, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) ResolveQuestion(id int, answer string) error {
	args := m.Called(id, answer)
	return args.Error(0)
}

func (m *MockQuestionRepository) AbandonQuestion(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockGroupRepository is a mock for GroupRepository
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) ListGroupChatIDs() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockGroupRepository) GetGroupChat(chatID int64) (*domain.GroupChat, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupChat), args.Error(1)
}

// MockGateway is a mock for gateway.Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Send(chatID int64, text string, markup *tele.ReplyMarkup) error {
	args := m.Called(chatID, text, markup)
	return args.Error(0)
}

func (m *MockGateway) Forward(toChat, fromChat int64, messageID int) error {
	args := m.Called(toChat, fromChat, messageID)
	return args.Error(0)
}
