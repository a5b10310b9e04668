package repository

import (
	"context"

	"github.com/user/cinemax/internal/model"
)

type NotificationRepository struct {
	conn *Conn
}

func NewNotificationRepository(conn *Conn) *NotificationRepository {
	return &NotificationRepository{conn: conn}
}

// Create 创建通知
func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return err
	}
	return db.Create(n).Error
}

// Recent 最近的 limit 条通知
func (r *NotificationRepository) Recent(ctx context.Context, limit int) ([]model.Notification, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]model.Notification, 0, limit)
	if err := db.Order("created_at DESC").Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// CountUnread 未读通知数量
func (r *NotificationRepository) CountUnread(ctx context.Context) (int64, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	err = db.Model(&model.Notification{}).Where("read = ?", false).Count(&count).Error
	return count, err
}

// MarkAllRead 全部标记为已读
func (r *NotificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return 0, err
	}

	res := db.Model(&model.Notification{}).Where("read = ?", false).Update("read", true)
	return res.RowsAffected, res.Error
}
