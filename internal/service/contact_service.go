package service

import (
	"context"
	"strings"

	"github.com/user/cinemax/internal/errs"
	"github.com/user/cinemax/internal/model"
)

// ContactStore 留言存储
type ContactStore interface {
	Create(ctx context.Context, c *model.Contact) error
	List(ctx context.Context) ([]model.Contact, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// ContactInput 联系表单
type ContactInput struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=5000"`
}

type ContactService struct {
	store ContactStore
}

func NewContactService(store ContactStore) *ContactService {
	return &ContactService{store: store}
}

// Submit 保存留言
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*model.Contact, error) {
	c := &model.Contact{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}
	if c.Name == "" || c.Email == "" || c.Subject == "" || c.Message == "" {
		return nil, errs.Errorf(errs.EINVALID, "All fields are required")
	}

	if err := s.store.Create(ctx, c); err != nil {
		return nil, internalError("Failed to submit message", err)
	}
	return c, nil
}

// List 后台列表
func (s *ContactService) List(ctx context.Context) ([]model.Contact, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, internalError("Failed to fetch messages", err)
	}
	return list, nil
}

// Delete 删除留言
func (s *ContactService) Delete(ctx context.Context, id int) error {
	ok, err := s.store.Delete(ctx, id)
	if err != nil {
		return internalError("Failed to delete message", err)
	}
	if !ok {
		return errs.Errorf(errs.ENOTFOUND, "Message not found")
	}
	return nil
}
