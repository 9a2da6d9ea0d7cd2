package repository

import (
	"context"

	constant "github.com/hyeonwoo/placepick/internal/constant"
	"github.com/hyeonwoo/placepick/internal/model"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	*baseRepository
}

func (nr *NotificationRepository) Create(ctx context.Context, tx *gorm.DB, newNotification model.Notification) error {
	nr.logger.Debugf("Create notification for user: %s type: %s \n", newNotification.UserID, newNotification.Type)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Notification{}).Create(&model.Notification{
		UserID:  newNotification.UserID,
		Type:    newNotification.Type,
		Message: newNotification.Message,
		URL:     newNotification.URL,
	}).Error
}

func (nr NotificationRepository) ListByUserId(ctx context.Context, tx *gorm.DB, userId string, page uint, pageSize uint) ([]model.Notification, int64, error) {
	nr.logger.Debugf("List notifications of user: %s page: %d \n", userId, page)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Notification{}).Where("user_id = ?", userId)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []model.Notification
	offset := int((page - 1) * pageSize)
	if err := query.Order("created_at DESC").Offset(offset).Limit(int(pageSize)).Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

func (nr NotificationRepository) CountUnread(ctx context.Context, tx *gorm.DB, userId string) (int64, error) {
	nr.logger.Debugf("Count unread notifications of user: %s \n", userId)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.Notification{}).Where("user_id = ? AND is_read = ?", userId, false).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (nr *NotificationRepository) MarkRead(ctx context.Context, tx *gorm.DB, notificationId string, userId string) error {
	nr.logger.Debugf("Mark notification %s read for user: %s \n", notificationId, userId)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Notification{}).Where("id = ? AND user_id = ?", notificationId, userId).Update("is_read", true).Error
}

func (nr *NotificationRepository) MarkAllRead(ctx context.Context, tx *gorm.DB, userId string) error {
	nr.logger.Debugf("Mark all notifications read for user: %s \n", userId)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Model(&model.Notification{}).Where("user_id = ? AND is_read = ?", userId, false).Update("is_read", true).Error
}

func (nr *NotificationRepository) DeleteAllByUserId(ctx context.Context, tx *gorm.DB, userId string) error {
	nr.logger.Debugf("Delete notifications of user: %s \n", userId)

	db := nr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.Notification{}).Error
}
