package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/user/cinemax/internal/config"
	"github.com/user/cinemax/internal/repository"
)

// 执行数据库迁移，并在设置了 ADMIN_EMAIL / ADMIN_PASSWORD 时初始化管理员账号
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	db, err := repository.Open(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}
	conn := repository.Wrap(db)
	defer conn.Close()

	n, err := repository.Migrate(db)
	if err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}
	log.Printf("已执行 %d 个迁移", n)

	email := strings.ToLower(strings.TrimSpace(cfg.Admin.Email))
	if email == "" || cfg.Admin.Password == "" {
		log.Println("未设置 ADMIN_EMAIL / ADMIN_PASSWORD，跳过管理员初始化")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := repository.NewRepositories(conn).User.EnsureAdmin(ctx, email, cfg.Admin.Password)
	if err != nil {
		log.Fatalf("初始化管理员失败: %v", err)
	}
	log.Printf("管理员账号已就绪: %s (id=%d)", user.Email, user.ID)
}
