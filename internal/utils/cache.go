package utils

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimiter 按 key 的令牌桶限流：突发 limit 次，之后每 window/limit 恢复一次。
// 每个 key 的 limiter 存在 LRU 中，容量满时淘汰最久未访问的 key。
type RateLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	every    rate.Limit
	burst    int
	now      func() time.Time
}

// NewRateLimiter 创建限流器，size 为同时跟踪的 key 上限
func NewRateLimiter(limit int, window time.Duration, size int) *RateLimiter {
	c, err := lru.New[string, *rate.Limiter](size)
	if err != nil {
		panic(fmt.Sprintf("invalid limiter size %d: %v", size, err))
	}
	return &RateLimiter{
		limiters: c,
		every:    rate.Every(window / time.Duration(limit)),
		burst:    limit,
		now:      time.Now,
	}
}

// Allow 消耗一个令牌，没有可用令牌时返回 false
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	lim, ok := l.limiters.Get(key)
	if !ok {
		lim = rate.NewLimiter(l.every, l.burst)
		l.limiters.Add(key, lim)
	}
	l.mu.Unlock()

	return lim.AllowN(l.now(), 1)
}

// LoginLimiter 登录失败计数，达到上限后在 lockout 内拒绝登录
type LoginLimiter struct {
	store       *cache.Cache
	maxAttempts int
	lockout     time.Duration
}

// NewLoginLimiter 创建登录限流器
func NewLoginLimiter(maxAttempts int, lockout time.Duration) *LoginLimiter {
	// 清理间隔取锁定时间的两倍
	return &LoginLimiter{
		store:       cache.New(lockout, 2*lockout),
		maxAttempts: maxAttempts,
		lockout:     lockout,
	}
}

// Blocked 是否已被锁定
func (l *LoginLimiter) Blocked(key string) bool {
	if v, ok := l.store.Get(key); ok {
		return v.(int) >= l.maxAttempts
	}
	return false
}

// Fail 记录一次失败
func (l *LoginLimiter) Fail(key string) {
	if _, err := l.store.IncrementInt(key, 1); err != nil {
		l.store.Set(key, 1, l.lockout)
	}
}

// Reset 登录成功后清除计数
func (l *LoginLimiter) Reset(key string) {
	l.store.Delete(key)
}
