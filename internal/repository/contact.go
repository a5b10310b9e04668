package repository

import (
	"context"

	"github.com/user/cinemax/internal/model"
)

// ContactRepository 联系留言仓库
type ContactRepository struct {
	conn *Conn
}

// NewContactRepository 创建联系留言仓库
func NewContactRepository(conn *Conn) *ContactRepository {
	return &ContactRepository{conn: conn}
}

// Create 创建留言
func (r *ContactRepository) Create(ctx context.Context, c *model.Contact) error {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return err
	}
	return db.Create(c).Error
}

// List 获取留言列表，最新在前
func (r *ContactRepository) List(ctx context.Context) ([]model.Contact, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, err
	}

	contacts := make([]model.Contact, 0)
	if err := db.Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// Delete 物理删除留言，返回是否有记录被删除
func (r *ContactRepository) Delete(ctx context.Context, id int) (bool, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return false, err
	}
	res := db.Delete(&model.Contact{}, id)
	return res.RowsAffected > 0, res.Error
}
