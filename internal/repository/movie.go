package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/user/movierank/internal/model"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// Search 按条件组合查询，所有非默认条件取 AND
// 标题为不区分大小写的子串匹配
func (r *MovieRepository) Search(ctx context.Context, criteria model.MovieSearchCriteria) ([]model.Movie, error) {
	query := r.db.WithContext(ctx).Model(&model.Movie{})

	if criteria.Title != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(criteria.Title)+"%")
	}
	if criteria.Year != 0 {
		query = query.Where("release_year = ?", criteria.Year)
	}
	if genre := criteria.GenreCode(); genre != model.GenreUnknown {
		query = query.Where("genre = ?", genre)
	}

	var movies []model.Movie
	if err := query.Order("id").Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// FindByID 根据 ID 查找电影，不存在时返回 nil
func (r *MovieRepository) FindByID(ctx context.Context, id int) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.WithContext(ctx).First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

// FindByIDs 批量查找电影
func (r *MovieRepository) FindByIDs(ctx context.Context, ids []int) ([]model.Movie, error) {
	var movies []model.Movie
	if len(ids) == 0 {
		return movies, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&movies).Error
	return movies, err
}

// List 返回全部电影
func (r *MovieRepository) List(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.WithContext(ctx).Order("id").Find(&movies).Error
	return movies, err
}

// Exists 判断电影是否存在
func (r *MovieRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Movie{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Count 电影总数
func (r *MovieRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Movie{}).Count(&count).Error
	return count, err
}
