package service

import (
	"fmt"

	"adminbot/internal/domain"
	"adminbot/internal/gateway"
	"adminbot/internal/repository"

	"go.uber.org/zap"
)

// BroadcastService drives the broadcast workflow: collecting the text,
// attaching pending media and fanning the message out to every group
type BroadcastService struct {
	groups repository.GroupRepository
	states repository.StateRepository
	gw     gateway.Gateway
	logger *zap.Logger
}

// NewBroadcastService creates a new broadcast service
func NewBroadcastService(
	groups repository.GroupRepository,
	states repository.StateRepository,
	gw gateway.Gateway,
	logger *zap.Logger,
) *BroadcastService {
	return &BroadcastService{
		groups: groups,
		states: states,
		gw:     gw,
		logger: logger,
	}
}

// Begin puts the chat into the wait-for-broadcast-text step
func (s *BroadcastService) Begin(chatID int64) error {
	return s.states.SetState(domain.ChatState{
		ChatID: chatID,
		State:  domain.StateWaitBroadcastText,
	})
}

// AcceptText consumes the wait-for-text step once the broadcast text has
// been echoed back in the confirmation prompt. The fan-out itself waits
// for an explicit launch.
func (s *BroadcastService) AcceptText(chatID int64) error {
	return s.states.ClearState(chatID)
}

// RecordMedia remembers a photo/video message to attach to the next
// broadcast prepared in this chat
func (s *BroadcastService) RecordMedia(chatID int64, messageID int) error {
	return s.states.SetPendingMedia(chatID, messageID)
}

// Launch fans the broadcast text out to every registered group chat. A
// pending media message, if any, is forwarded ahead of the text and the
// pending slot is consumed. The admin chat gets a completion notice.
func (s *BroadcastService) Launch(fromChat int64, text string) error {
	chatIDs, err := s.groups.ListGroupChatIDs()
	if err != nil {
		return fmt.Errorf("list group chats: %w", err)
	}

	mediaID, err := s.states.TakePendingMedia(fromChat)
	if err != nil {
		return fmt.Errorf("take pending media: %w", err)
	}

	for _, chatID := range chatIDs {
		if mediaID != 0 {
			if err := s.gw.Forward(chatID, fromChat, mediaID); err != nil {
				return fmt.Errorf("forward media to chat %d: %w", chatID, err)
			}
		}
		if err := s.gw.Send(chatID, text, nil); err != nil {
			return fmt.Errorf("send broadcast to chat %d: %w", chatID, err)
		}
	}

	if err := s.states.ClearState(fromChat); err != nil {
		return fmt.Errorf("clear state: %w", err)
	}

	s.logger.Info("broadcast delivered",
		zap.Int64("from_chat", fromChat),
		zap.Int("chats", len(chatIDs)),
		zap.Bool("with_media", mediaID != 0),
	)

	return s.gw.Send(fromChat, "Рассылка отправлена", nil)
}
