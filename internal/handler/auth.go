package handler

import (
	"errors"
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/user/cinemax/internal/middleware"
	"github.com/user/cinemax/internal/model"
	"github.com/user/cinemax/internal/service"
	"github.com/user/cinemax/internal/utils"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login 管理员登录：签发 token Cookie，并把用户信息写入 Session
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	user, err := h.Auth.Authenticate(c.Request.Context(), req.Email, req.Password, c.ClientIP())
	if errors.Is(err, service.ErrTooManyAttempts) {
		utils.TooManyRequests(c, "Too many login attempts, please try again later")
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Email, user.Role, h.Config.AppSecret, h.Config.JWTExpiry())
	if err != nil {
		h.respondError(c, err)
		return
	}
	middleware.SetTokenCookie(c, token, h.Config.JWTExpiry())

	session := sessions.Default(c)
	session.Set("userinfo", model.SessionUser{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	})
	if err := session.Save(); err != nil {
		log.Printf("[Auth] 保存 Session 失败: %v", err)
	}

	utils.Success(c, gin.H{"message": "Logged in successfully", "user": user})
}

// Logout 退出登录
func (h *Handler) Logout(c *gin.Context) {
	middleware.ClearTokenCookie(c)

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Printf("[Auth] 清除 Session 失败: %v", err)
	}

	utils.Message(c, "Logged out successfully")
}

// Me 当前登录状态：优先使用 Session 中的信息，缺失时按 Token 查库
func (h *Handler) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		utils.Success(c, gin.H{"authenticated": false})
		return
	}

	session := sessions.Default(c)
	if su, ok := session.Get("userinfo").(model.SessionUser); ok && su.ID == userID {
		utils.Success(c, gin.H{"authenticated": true, "user": su})
		return
	}

	user, err := h.Auth.Me(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"authenticated": true, "user": model.SessionUser{ID: user.ID, Email: user.Email, Role: user.Role}})
}
