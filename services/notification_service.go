package services

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/ripplefeed/api-go/models"
)

// NotificationService persists a notification row for audit and pushes the
// message through the dispatcher. Delivery never depends on the stored row.
type NotificationService struct {
	db         *gorm.DB
	dispatcher *Dispatcher
	logger     *slog.Logger
}

func NewNotificationService(db *gorm.DB, dispatcher *Dispatcher, logger *slog.Logger) *NotificationService {
	return &NotificationService{db: db, dispatcher: dispatcher, logger: logger}
}

// Notify records and publishes a message for the recipient. It is
// best-effort by contract: a failed audit insert is logged and the in-memory
// publish still happens, so callers never fail an action over it.
func (s *NotificationService) Notify(recipientID uint, message string) {
	notification := models.Notification{UserID: recipientID, Message: message}
	if err := s.db.Create(&notification).Error; err != nil {
		s.logger.Warn("notification audit insert failed",
			"recipient_id", recipientID,
			"error", err)
	}
	s.dispatcher.Publish(recipientID, message)
}

// Subscribe hands out the recipient's live stream.
func (s *NotificationService) Subscribe(recipientID uint) *Subscription {
	return s.dispatcher.Subscribe(recipientID)
}
