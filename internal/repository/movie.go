package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/user/cinemax/internal/catalog"
	"github.com/user/cinemax/internal/model"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// relevanceSQL 标题命中 10 分，简介命中 1 分
const relevanceSQL = "(CASE WHEN title ILIKE ? THEN 10 ELSE 0 END + CASE WHEN description ILIKE ? THEN 1 ELSE 0 END)"

var orderColumns = map[catalog.Field]string{
	catalog.FieldCreated: "created_at",
	catalog.FieldYear:    "release_year",
	catalog.FieldRating:  "imdb_rating",
	catalog.FieldTitle:   "title",
}

type MovieRepository struct {
	conn *Conn
}

func NewMovieRepository(conn *Conn) *MovieRepository {
	return &MovieRepository{conn: conn}
}

// Search 按过滤条件查询一页电影及总数。
// 总数与窗口来自同一个 filterScope，两条查询并发执行，任一失败整体失败。
func (r *MovieRepository) Search(ctx context.Context, q catalog.Query) (*catalog.Result, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, errors.Join(catalog.ErrQueryFailed, err)
	}

	var total int64
	movies := make([]model.Movie, 0, q.Window.Size)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.WithContext(gctx).Model(&model.Movie{}).
			Scopes(filterScope(q.Filter)).
			Count(&total).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).Model(&model.Movie{}).
			Scopes(filterScope(q.Filter), orderScope(q.Order, q.Filter.Text)).
			Offset(q.Window.Offset()).
			Limit(q.Window.Size).
			Find(&movies).Error
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Join(catalog.ErrQueryFailed, err)
	}

	return &catalog.Result{
		Movies:     movies,
		Pagination: q.Window.Paginate(total),
	}, nil
}

// filterScope 各过滤条件之间为 AND，未提供的条件不生成 SQL
func filterScope(f catalog.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.HasText() {
			pattern := likePattern(f.Text)
			db = db.Where("(title ILIKE ? OR EXISTS (SELECT 1 FROM unnest(genres) AS g WHERE g ILIKE ?) OR description ILIKE ?)",
				pattern, pattern, pattern)
		}
		if f.Genre != "" {
			db = db.Where("? = ANY(genres)", f.Genre)
		}
		if f.MinRating != nil {
			db = db.Where("imdb_rating >= ?", *f.MinRating)
		}
		if f.Year != nil {
			db = db.Where("release_year = ?", *f.Year)
		}
		return db
	}
}

// orderScope 将排序规则翻译为 ORDER BY，列名只来自白名单
func orderScope(o catalog.Order, text string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		parts := make([]string, 0, len(o))
		var vars []interface{}

		for _, k := range o {
			dir := " ASC"
			if k.Desc {
				dir = " DESC"
			}

			switch k.Field {
			case catalog.FieldRelevance:
				pattern := likePattern(text)
				parts = append(parts, relevanceSQL+dir)
				vars = append(vars, pattern, pattern)
			case catalog.FieldYear:
				// 没有年份的条目总是排在最后
				parts = append(parts, "release_year"+dir+" NULLS LAST")
			default:
				col, ok := orderColumns[k.Field]
				if !ok {
					continue
				}
				parts = append(parts, col+dir)
			}
		}

		if len(parts) == 0 {
			return db
		}
		return db.Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                strings.Join(parts, ", "),
			Vars:               vars,
			WithoutParentheses: true,
		}})
	}
}

// likePattern 转义通配符后包装为子串匹配
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// DistinctGenres 所有电影出现过的类型（未排序，可能含空值）
func (r *MovieRepository) DistinctGenres(ctx context.Context) ([]string, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, err
	}

	var genres []string
	err = db.Raw("SELECT DISTINCT unnest(genres) AS genre FROM movies").Scan(&genres).Error
	if err != nil {
		return nil, err
	}
	return genres, nil
}

// DistinctYears 所有出现过的上映年份，降序
func (r *MovieRepository) DistinctYears(ctx context.Context) ([]int, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, err
	}

	years := make([]int, 0)
	err = db.Model(&model.Movie{}).
		Where("release_year IS NOT NULL").
		Distinct().
		Order("release_year DESC").
		Pluck("release_year", &years).Error
	if err != nil {
		return nil, err
	}
	return years, nil
}

// Create 创建电影，slug 冲突时返回 gorm.ErrDuplicatedKey
func (r *MovieRepository) Create(ctx context.Context, movie *model.Movie) error {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return err
	}
	return db.Create(movie).Error
}

// Update 全量更新电影
func (r *MovieRepository) Update(ctx context.Context, movie *model.Movie) error {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return err
	}
	return db.Model(movie).Select("*").Omit("id", "created_at").Updates(movie).Error
}

// Delete 删除电影，返回是否有记录被删除
func (r *MovieRepository) Delete(ctx context.Context, id int) (bool, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return false, err
	}
	res := db.Delete(&model.Movie{}, id)
	return res.RowsAffected > 0, res.Error
}

// FindByID 根据 ID 查找电影
func (r *MovieRepository) FindByID(ctx context.Context, id int) (*model.Movie, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindBySlug 根据 slug 查找电影
func (r *MovieRepository) FindBySlug(ctx context.Context, slug string) (*model.Movie, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *MovieRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.Movie, error) {
	db, err := r.conn.DB(ctx)
	if err != nil {
		return nil, err
	}

	var movie model.Movie
	err = db.Where(query, arg).First(&movie).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}
