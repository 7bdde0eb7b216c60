package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/user/movierank/internal/model"
)

type ReviewerRepository struct {
	db *gorm.DB
}

func NewReviewerRepository(db *gorm.DB) *ReviewerRepository {
	return &ReviewerRepository{db: db}
}

// FindByID 根据 ID 查找评论者，不存在时返回 nil
func (r *ReviewerRepository) FindByID(ctx context.Context, id int) (*model.Reviewer, error) {
	var reviewer model.Reviewer
	err := r.db.WithContext(ctx).First(&reviewer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reviewer, nil
}

// Exists 判断评论者是否存在
func (r *ReviewerRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Reviewer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Count 评论者总数
func (r *ReviewerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Reviewer{}).Count(&count).Error
	return count, err
}
