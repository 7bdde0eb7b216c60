package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/user/movierank/internal/model"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Upsert 按 (movie_id, reviewer_id) 创建或覆盖评分
// 同一对评论者和电影只保留一条记录，重复提交覆盖原评分
func (r *ReviewRepository) Upsert(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "movie_id"}, {Name: "reviewer_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score"}),
	}).Create(review).Error
}

// ListByMovie 某部电影的全部评论
func (r *ReviewRepository) ListByMovie(ctx context.Context, movieID int) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).Where("movie_id = ?", movieID).Find(&reviews).Error
	return reviews, err
}

// ListByReviewer 某评论者的全部评论
func (r *ReviewRepository) ListByReviewer(ctx context.Context, reviewerID int) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).Where("reviewer_id = ?", reviewerID).Find(&reviews).Error
	return reviews, err
}

// ListAll 全部评论
func (r *ReviewRepository) ListAll(ctx context.Context) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).Find(&reviews).Error
	return reviews, err
}

// FindByMovieAndReviewer 查找某对 (电影, 评论者) 的评论，不存在时返回 nil
func (r *ReviewRepository) FindByMovieAndReviewer(ctx context.Context, movieID, reviewerID int) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).
		Where("movie_id = ? AND reviewer_id = ?", movieID, reviewerID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// CountByMovieAndReviewer 某对 (电影, 评论者) 的评论条数
func (r *ReviewRepository) CountByMovieAndReviewer(ctx context.Context, movieID, reviewerID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Where("movie_id = ? AND reviewer_id = ?", movieID, reviewerID).
		Count(&count).Error
	return count, err
}
