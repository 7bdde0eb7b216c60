package model

import "fmt"

// Review 评论实体，(movie_id, reviewer_id) 唯一，同一对只保留最新评分
type Review struct {
	ID         int `json:"id" gorm:"primaryKey"`
	ReviewerID int `json:"reviewer_id" gorm:"not null;uniqueIndex:uq_reviews_movie_reviewer"`
	MovieID    int `json:"movie_id" gorm:"not null;uniqueIndex:uq_reviews_movie_reviewer"`
	Score      int `json:"score" gorm:"not null"`
}

// NewReview 创建评论，外键必须为正整数，评分范围 [1, 5]
// ID 留空时由存储层自增生成
func NewReview(reviewerID, movieID, score int) (*Review, error) {
	if reviewerID <= 0 {
		return nil, fmt.Errorf("评论者 ID %d 无效，必须为正整数", reviewerID)
	}
	if movieID <= 0 {
		return nil, fmt.Errorf("电影 ID %d 无效，必须为正整数", movieID)
	}
	s, err := NewScore(score)
	if err != nil {
		return nil, err
	}
	return &Review{
		ReviewerID: reviewerID,
		MovieID:    movieID,
		Score:      s.Int(),
	}, nil
}
