package repository

import (
	"context"
	"errors"

	"github.com/user/cinemax/internal/model"
	"gorm.io/gorm"
)

type RecommendationRepository struct {
	conn *Conn
}

func NewRecommendationRepository(conn *Conn) *RecommendationRepository {
	return &RecommendationRepository{conn: conn}
}

// Create 创建求片
func (r *RecommendationRepository) Create(ctx context.Context, rec *model.Recommendation) error {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return err
	}
	return db.Create(rec).Error
}

// List 获取求片列表（管理后台用），最新在前
func (r *RecommendationRepository) List(ctx context.Context) ([]model.Recommendation, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, err
	}

	recs := make([]model.Recommendation, 0)
	if err := db.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// FindByID 根据 ID 查找求片
func (r *RecommendationRepository) FindByID(ctx context.Context, id int) (*model.Recommendation, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, err
	}

	var rec model.Recommendation
	err = db.First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// MarkAdded 仅当当前状态为 from 时切换为 added，返回是否更新成功
func (r *RecommendationRepository) MarkAdded(ctx context.Context, id int, from, movieSlug string) (bool, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return false, err
	}

	res := db.Model(&model.Recommendation{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     model.RecommendationAdded,
			"movie_slug": movieSlug,
		})
	return res.RowsAffected > 0, res.Error
}

// FindUpdates 查找已上架、属于该用户（userId 或 IP）的求片
func (r *RecommendationRepository) FindUpdates(ctx context.Context, userID, ipHash string) ([]model.Recommendation, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, err
	}

	recs := make([]model.Recommendation, 0)
	q := db.Where("status = ?", model.RecommendationAdded)
	switch {
	case userID != "" && ipHash != "":
		q = q.Where("(user_id = ? OR ip_hash = ?)", userID, ipHash)
	case userID != "":
		q = q.Where("user_id = ?", userID)
	case ipHash != "":
		q = q.Where("ip_hash = ?", ipHash)
	default:
		return recs, nil
	}

	if err := q.Order("updated_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// MarkNotified 将已上架的求片批量标记为已通知，返回更新条数
func (r *RecommendationRepository) MarkNotified(ctx context.Context, ids []int) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	db, err := r.conn.DB(ctx)
	if err != nil {
		return 0, err
	}

	res := db.Model(&model.Recommendation{}).
		Where("id IN ? AND status = ?", ids, model.RecommendationAdded).
		Update("status", model.RecommendationNotified)
	return res.RowsAffected, res.Error
}

// Delete 删除求片
func (r *RecommendationRepository) Delete(ctx context.Context, id int) error {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return err
	}
	return db.Delete(&model.Recommendation{}, id).Error
}
