package repository

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// ErrNotConfigured 连接句柄未配置数据源
var ErrNotConfigured = errors.New("database connection is not configured")

// Open 打开数据库连接并设置连接池
func Open(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取连接池失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

// Conn 进程级数据库句柄：首次使用时建立连接，之后复用；
// 建立失败不缓存，下次调用会重试。
type Conn struct {
	mu   sync.Mutex
	dsn  string
	open func(string) (*gorm.DB, error)
	db   *gorm.DB
}

// NewConn 创建延迟连接的句柄
func NewConn(databaseURL string) *Conn {
	return &Conn{dsn: databaseURL, open: Open}
}

// Wrap 使用已建立的连接（测试与迁移命令使用）
func Wrap(db *gorm.DB) *Conn {
	return &Conn{db: db}
}

// DB 返回绑定了 ctx 的会话
func (c *Conn) DB(ctx context.Context) (*gorm.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		if c.open == nil {
			return nil, ErrNotConfigured
		}
		db, err := c.open(c.dsn)
		if err != nil {
			return nil, err
		}
		c.db = db
		log.Println("[DB] 数据库连接已建立")
	}

	return c.db.WithContext(ctx), nil
}

// Ping 检查连接是否可用（健康检查）
func (c *Conn) Ping(ctx context.Context) error {
	db, err := c.DB(ctx)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close 关闭连接池
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	c.db = nil
	return sqlDB.Close()
}

// Migrate 执行内嵌的 SQL 迁移，返回本次应用的数量
func Migrate(db *gorm.DB) (int, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, err
	}

	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations",
	}
	return migrate.Exec(sqlDB, "postgres", source, migrate.Up)
}

// Repositories 仓库集合
type Repositories struct {
	Conn           *Conn
	User           *UserRepository
	Movie          *MovieRepository
	Recommendation *RecommendationRepository
	Contact        *ContactRepository
	Notification   *NotificationRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(conn *Conn) *Repositories {
	return &Repositories{
		Conn:           conn,
		User:           NewUserRepository(conn),
		Movie:          NewMovieRepository(conn),
		Recommendation: NewRecommendationRepository(conn),
		Contact:        NewContactRepository(conn),
		Notification:   NewNotificationRepository(conn),
	}
}
