package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/user/cinemax/internal/errs"
	"github.com/user/cinemax/internal/model"
	"github.com/user/cinemax/internal/utils"
)

// ErrTooManyAttempts 登录失败次数过多
var ErrTooManyAttempts = errors.New("too many login attempts")

// UserStore 用户查询与密码校验
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	CheckPassword(user *model.User, password string) bool
}

// AuthService 后台登录校验
type AuthService struct {
	users   UserStore
	limiter *utils.LoginLimiter
}

// NewAuthService 每个 IP+邮箱 15 分钟内最多失败 5 次
func NewAuthService(users UserStore) *AuthService {
	return &AuthService{
		users:   users,
		limiter: utils.NewLoginLimiter(5, 15*time.Minute),
	}
}

// Authenticate 校验邮箱密码，仅管理员可登录
func (s *AuthService) Authenticate(ctx context.Context, email, password, clientIP string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	key := clientIP + "|" + email
	if s.limiter.Blocked(key) {
		return nil, ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, internalError("Login failed", err)
	}
	if user == nil || !s.users.CheckPassword(user, password) || user.Role != model.RoleAdmin {
		s.limiter.Fail(key)
		return nil, errs.Errorf(errs.EUNAUTHORIZED, "Invalid credentials")
	}

	s.limiter.Reset(key)
	return user, nil
}

// Me 根据 Token 中的用户 ID 查询当前用户
func (s *AuthService) Me(ctx context.Context, id int) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, internalError("Failed to fetch user", err)
	}
	if user == nil {
		return nil, errs.Errorf(errs.EUNAUTHORIZED, "Unauthorized")
	}
	return user, nil
}
