package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(n *model.Notification) error {
	return r.DB.Create(n).Error
}

func (r *NotificationRepository) FindByID(id uint) (*model.Notification, error) {
	var n model.Notification
	err := r.DB.First(&n, id).Error
	return &n, err
}

func (r *NotificationRepository) FindByUser(userID uint) ([]model.Notification, error) {
	var list []model.Notification
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *NotificationRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepository) MarkRead(id uint) error {
	return r.DB.Model(&model.Notification{}).Where("id = ?", id).Update("is_read", true).Error
}

func (r *NotificationRepository) MarkAllRead(userID uint) error {
	return r.DB.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (r *NotificationRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Notification{}, id).Error
}
