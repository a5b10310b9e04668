package service

import (
	"context"

	"github.com/user/cinemax/internal/model"
)

// RecentNotifications 后台通知面板显示的条数
const RecentNotifications = 10

// NotificationStore 通知存储
type NotificationStore interface {
	Create(ctx context.Context, n *model.Notification) error
	Recent(ctx context.Context, limit int) ([]model.Notification, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkAllRead(ctx context.Context) (int64, error)
}

// NotificationFeed 通知列表及未读数
type NotificationFeed struct {
	Notifications []model.Notification `json:"notifications"`
	Unread        int64                `json:"unread"`
}

type NotificationService struct {
	store NotificationStore
}

func NewNotificationService(store NotificationStore) *NotificationService {
	return &NotificationService{store: store}
}

// Emit 写入一条未读通知
func (s *NotificationService) Emit(ctx context.Context, kind, message, link string) error {
	return s.store.Create(ctx, &model.Notification{
		Type:    kind,
		Message: message,
		Link:    link,
	})
}

// Recent 最近的通知
func (s *NotificationService) Recent(ctx context.Context) (*NotificationFeed, error) {
	list, err := s.store.Recent(ctx, RecentNotifications)
	if err != nil {
		return nil, internalError("Failed to fetch notifications", err)
	}
	unread, err := s.store.CountUnread(ctx)
	if err != nil {
		return nil, internalError("Failed to fetch notifications", err)
	}
	return &NotificationFeed{Notifications: list, Unread: unread}, nil
}

// MarkAllRead 全部标记已读
func (s *NotificationService) MarkAllRead(ctx context.Context) (int64, error) {
	n, err := s.store.MarkAllRead(ctx)
	if err != nil {
		return 0, internalError("Failed to update notifications", err)
	}
	return n, nil
}
