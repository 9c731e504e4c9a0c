package service

import (
	"errors"

	"herald/internal/gateway/notifier"
	"herald/internal/logger"

	"github.com/google/uuid"
)

// NotificationService 将“发送什么”与“如何发送”解耦：持有且仅持有一个 Sender。
type NotificationService struct {
	sender notifier.Sender
}

// New 接管 sender 的所有权。
func New(sender notifier.Sender) (*NotificationService, error) {
	if sender == nil {
		return nil, errors.New("notification service requires a sender")
	}
	return &NotificationService{sender: sender}, nil
}

// Notify 原样转发消息（不裁剪、不校验，空串同样转发）。
func (s *NotificationService) Notify(message string) error {
	id := uuid.NewString()
	logger.Debugf("Notify: dispatch id=%s len=%d", id, len(message))
	if err := s.sender.Send(message); err != nil {
		logger.Errorf("Notify: dispatch id=%s failed: %v", id, err)
		return err
	}
	return nil
}
