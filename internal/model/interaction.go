package model

import (
	"time"
)

// 求片状态流转：pending -> added -> notified
const (
	RecommendationPending  = "pending"
	RecommendationAdded    = "added"
	RecommendationNotified = "notified"
)

// Recommendation 用户求片
type Recommendation struct {
	ID        int       `json:"id"`
	MovieName string    `json:"movieName"`
	Email     string    `json:"email,omitempty"`
	UserID    string    `json:"userId,omitempty"`
	IPHash    string    `json:"-" gorm:"column:ip_hash"`
	Status    string    `json:"status"`
	MovieSlug string    `json:"movieSlug,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Contact 联系留言
type Contact struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// 通知类型
const (
	NotificationMovieAdded   = "movie_added"
	NotificationMovieUpdated = "movie_updated"
)

// Notification 后台通知
type Notification struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
