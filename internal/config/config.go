package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultSecret 未设置 APP_SECRET 时使用的占位密钥
const DefaultSecret = "your-secret-key-change-in-production"

// Config 应用配置
type Config struct {
	Env            string `envconfig:"APP_ENV" default:"development"`
	AppSecret      string `envconfig:"APP_SECRET" default:"your-secret-key-change-in-production"`
	JWTExpiryHours int    `envconfig:"JWT_EXPIRY_HOURS" default:"24"`
	Port           string `envconfig:"PORT" default:"5005"`
	SiteName       string `envconfig:"SITE_NAME" default:"Cinemax"`
	SiteUrl        string `envconfig:"SITE_URL" default:"http://localhost:5005"`
	SentryDSN      string `envconfig:"SENTRY_DSN"`
	AllowOrigins   string `envconfig:"ALLOW_ORIGINS" default:"*"`

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:"postgres"`
		Name     string `envconfig:"DB_NAME" default:"cinemax"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	}

	Mail struct {
		ResendAPIKey string `envconfig:"RESEND_API_KEY"`
		From         string `envconfig:"MAIL_FROM" default:"Cinemax <onboarding@resend.dev>"`
	}

	// 仅 cmd/migrate 使用，用于初始化管理员账号
	Admin struct {
		Email    string `envconfig:"ADMIN_EMAIL"`
		Password string `envconfig:"ADMIN_PASSWORD"`
	}
}

// Load 加载配置
func Load() (*Config, error) {
	// .env 不存在时直接使用系统环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] 未找到 .env 文件，使用系统环境变量")
	}

	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	if cfg.IsProduction() && cfg.AppSecret == DefaultSecret {
		log.Println("【严重警告】生产环境正在使用默认密钥！请立即设置 APP_SECRET 环境变量。")
	}

	return cfg, nil
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// JWTExpiry Token 有效期
func (c *Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpiryHours) * time.Hour
}

// DatabaseURL 拼接数据库连接串
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

// Origins 允许跨域的来源列表
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
