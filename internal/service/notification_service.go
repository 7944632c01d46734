package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type NotificationService struct {
	NotificationRepo *repository.NotificationRepository
}

func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{NotificationRepo: notificationRepo}
}

func (s *NotificationService) Create(n *model.Notification) error {
	return s.NotificationRepo.Create(n)
}

func (s *NotificationService) ListByUser(userID uint) ([]model.Notification, error) {
	return s.NotificationRepo.FindByUser(userID)
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.NotificationRepo.CountUnread(userID)
}

// MarkRead flips one notification; only the owner may touch it.
func (s *NotificationService) MarkRead(userID, id uint) error {
	n, err := s.NotificationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotificationNotFound
		}
		return err
	}
	if n.UserID != userID {
		return util.ErrNotificationNotFound
	}
	return s.NotificationRepo.MarkRead(id)
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.NotificationRepo.MarkAllRead(userID)
}

func (s *NotificationService) Delete(userID, id uint) error {
	n, err := s.NotificationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotificationNotFound
		}
		return err
	}
	if n.UserID != userID {
		return util.ErrNotificationNotFound
	}
	return s.NotificationRepo.Delete(id)
}
