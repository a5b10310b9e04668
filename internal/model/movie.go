package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// DownloadButton 下载按钮（文字 + 链接）
type DownloadButton struct {
	Text string `json:"text" binding:"required"`
	Link string `json:"link" binding:"required,url"`
}

// Movie 电影条目
type Movie struct {
	ID              int                                 `json:"id" gorm:"primaryKey"`
	Title           string                              `json:"title" gorm:"not null"`
	Slug            string                              `json:"slug" gorm:"uniqueIndex;not null"`
	PosterURL       string                              `json:"posterUrl" gorm:"column:poster_url"`
	ImdbRating      float64                             `json:"imdbRating" gorm:"column:imdb_rating"`
	Description     string                              `json:"description"`
	Screenshots     pq.StringArray                      `json:"screenshots" gorm:"type:text[]"`
	DownloadButtons datatypes.JSONSlice[DownloadButton] `json:"downloadButtons" gorm:"type:jsonb"`
	Genres          pq.StringArray                      `json:"genres" gorm:"type:text[]"`
	Languages       pq.StringArray                      `json:"languages" gorm:"type:text[]"`
	ReleaseYear     *int                                `json:"releaseYear,omitempty"`
	Quality         string                              `json:"quality,omitempty"`
	Resolution      string                              `json:"resolution,omitempty"`
	Size            string                              `json:"size,omitempty"`
	Audio           string                              `json:"audio,omitempty"`
	Cast            pq.StringArray                      `json:"cast" gorm:"column:cast_members;type:text[]"`
	Series          string                              `json:"series,omitempty"`
	CreatedAt       time.Time                           `json:"createdAt"`
	UpdatedAt       time.Time                           `json:"updatedAt"`
}

// MovieInput 后台创建/编辑电影的请求体
type MovieInput struct {
	Title           string           `json:"title" binding:"required,max=300"`
	Slug            string           `json:"slug" binding:"slug"`
	PosterURL       string           `json:"posterUrl" binding:"omitempty,url"`
	ImdbRating      float64          `json:"imdbRating" binding:"gte=0,lte=10"`
	Description     string           `json:"description"`
	Screenshots     []string         `json:"screenshots" binding:"dive,url"`
	DownloadButtons []DownloadButton `json:"downloadButtons" binding:"dive"`
	Genres          []string         `json:"genres"`
	Languages       []string         `json:"languages"`
	ReleaseYear     *int             `json:"releaseYear" binding:"omitempty,gte=1870,lte=2200"`
	Quality         string           `json:"quality"`
	Resolution      string           `json:"resolution"`
	Size            string           `json:"size"`
	Audio           string           `json:"audio"`
	Cast            []string         `json:"cast"`
	Series          string           `json:"series"`
}

// Apply 将请求体写入电影实体（全量覆盖，ID 与时间戳除外）
func (in *MovieInput) Apply(m *Movie) {
	m.Title = in.Title
	m.Slug = in.Slug
	m.PosterURL = in.PosterURL
	m.ImdbRating = in.ImdbRating
	m.Description = in.Description
	m.Screenshots = nonNil(in.Screenshots)
	m.DownloadButtons = datatypes.JSONSlice[DownloadButton](in.DownloadButtons)
	if m.DownloadButtons == nil {
		m.DownloadButtons = datatypes.JSONSlice[DownloadButton]{}
	}
	m.Genres = nonNil(in.Genres)
	m.Languages = nonNil(in.Languages)
	m.ReleaseYear = in.ReleaseYear
	m.Quality = in.Quality
	m.Resolution = in.Resolution
	m.Size = in.Size
	m.Audio = in.Audio
	m.Cast = nonNil(in.Cast)
	m.Series = in.Series
}

// nonNil 去掉空白项，并保证数组列不会写入 NULL
func nonNil(values []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
