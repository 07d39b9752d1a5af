package service

import (
	"testing"

	"adminbot/internal/domain"
	"adminbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBroadcastService(
	groups *testutil.MockGroupRepository,
	states *testutil.MockStateRepository,
	gw *testutil.MockGateway,
) *BroadcastService {
	return NewBroadcastService(groups, states, gw, testutil.NewTestLogger())
}

func TestBroadcastService_Begin(t *testing.T) {
	groups := new(testutil.MockGroupRepository)
	states := new(testutil.MockStateRepository)
	gw := new(testutil.MockGateway)

	states.On("SetState", domain.ChatState{
		ChatID: 100,
		State:  domain.StateWaitBroadcastText,
	}).Return(nil)

	service := newBroadcastService(groups, states, gw)

	err := service.Begin(100)

	assert.NoError(t, err)
	states.AssertExpectations(t)
}

func TestBroadcastService_AcceptText(t *testing.T) {
	groups := new(testutil.MockGroupRepository)
	states := new(testutil.MockStateRepository)
	gw := new(testutil.MockGateway)

	states.On("ClearState", int64(100)).Return(nil)

	service := newBroadcastService(groups, states, gw)

	err := service.AcceptText(100)

	assert.NoError(t, err)
	states.AssertExpectations(t)
}

func TestBroadcastService_RecordMedia(t *testing.T) {
	groups := new(testutil.MockGroupRepository)
	states := new(testutil.MockStateRepository)
	gw := new(testutil.MockGateway)

	states.On("SetPendingMedia", int64(100), 555).Return(nil)

	service := newBroadcastService(groups, states, gw)

	err := service.RecordMedia(100, 555)

	assert.NoError(t, err)
	states.AssertExpectations(t)
}

func TestBroadcastService_Launch(t *testing.T) {
	tests := []struct {
		name    string
		chatIDs []int64
		mediaID int
	}{
		{
			name:    "text only",
			chatIDs: []int64{-1001, -1002},
			mediaID: 0,
		},
		{
			name:    "text with media forward",
			chatIDs: []int64{-1001, -1002, -1003},
			mediaID: 555,
		},
		{
			name:    "no registered groups",
			chatIDs: nil,
			mediaID: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := new(testutil.MockGroupRepository)
			states := new(testutil.MockStateRepository)
			gw := new(testutil.MockGateway)

			const fromChat = int64(100)
			const text = "Новая поставка на складе"

			groups.On("ListGroupChatIDs").Return(tt.chatIDs, nil)
			states.On("TakePendingMedia", fromChat).Return(tt.mediaID, nil)
			states.On("ClearState", fromChat).Return(nil)

			for _, chatID := range tt.chatIDs {
				if tt.mediaID != 0 {
					gw.On("Forward", chatID, fromChat, tt.mediaID).Return(nil)
				}
				gw.On("Send", chatID, text, mock.Anything).Return(nil)
			}
			gw.On("Send", fromChat, "Рассылка отправлена", mock.Anything).Return(nil)

			service := newBroadcastService(groups, states, gw)

			err := service.Launch(fromChat, text)

			assert.NoError(t, err)
			groups.AssertExpectations(t)
			states.AssertExpectations(t)
			gw.AssertExpectations(t)

			if tt.mediaID == 0 {
				gw.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything, mock.Anything)
			}
			// The pending media slot is consumed exactly once per launch
			states.AssertNumberOfCalls(t, "TakePendingMedia", 1)
		})
	}
}

func TestBroadcastService_Launch_SendFailureAborts(t *testing.T) {
	groups := new(testutil.MockGroupRepository)
	states := new(testutil.MockStateRepository)
	gw := new(testutil.MockGateway)

	groups.On("ListGroupChatIDs").Return([]int64{-1001, -1002}, nil)
	states.On("TakePendingMedia", int64(100)).Return(0, nil)
	gw.On("Send", int64(-1001), "текст", mock.Anything).Return(assert.AnError)

	service := newBroadcastService(groups, states, gw)

	err := service.Launch(100, "текст")

	assert.Error(t, err)
	// The failing chat stops the fan-out; later chats are not attempted
	gw.AssertNotCalled(t, "Send", int64(-1002), mock.Anything, mock.Anything)
	states.AssertNotCalled(t, "ClearState", mock.Anything)
}
