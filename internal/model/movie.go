package model

import (
	"errors"
	"strings"
)

// Movie 电影实体
type Movie struct {
	ID          int         `json:"id" gorm:"primaryKey"`
	Title       string      `json:"title" gorm:"not null;index"`
	ReleaseYear ReleaseYear `json:"release_year" gorm:"not null;index"`
	RunningTime RunningTime `json:"running_time" gorm:"not null"`
	Genre       GenreType   `json:"genre" gorm:"not null;index"`
	Reviews     []Review    `json:"reviews,omitempty" gorm:"foreignKey:MovieID"`
}

// NewMovie 创建电影，标题不能为空，初始评论列表为空
func NewMovie(title string, year ReleaseYear, runningTime RunningTime, genre GenreType) (*Movie, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("电影标题不能为空")
	}
	return &Movie{
		Title:       title,
		ReleaseYear: year,
		RunningTime: runningTime,
		Genre:       genre,
		Reviews:     []Review{},
	}, nil
}

// AddReviews 追加评论，不允许空集合，只追加不替换
func (m *Movie) AddReviews(reviews []Review) error {
	if len(reviews) == 0 {
		return errors.New("评论集合不能为空")
	}
	m.Reviews = append(m.Reviews, reviews...)
	return nil
}

// AverageScore 当前评论的平均分，每次访问重新计算，无评论时为 0
func (m *Movie) AverageScore() float64 {
	if len(m.Reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range m.Reviews {
		sum += r.Score
	}
	return float64(sum) / float64(len(m.Reviews))
}
