package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/user/movierank/internal/model"
)

// seedMovie 种子电影定义
type seedMovie struct {
	id      int
	title   string
	year    int
	minutes int
	genre   string
}

// seedReview 种子评分定义
type seedReview struct {
	reviewerID int
	movieID    int
	score      int
}

// Seed 写入启动数据：3 位评论者、8 部电影、18 条评分
// 已有数据时跳过，保证重启幂等
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Movie{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	reviewers := []struct {
		id      int
		name    string
		email   string
		country string
		phone   string
	}{
		{1, "John Smith", "john.smith@example.com", "GB", "+44 20 7031 3000"},
		{2, "Anna Li", "anna.li@example.com", "US", "+1 650 253 0000"},
		{3, "Carlos Rey", "carlos.rey@example.com", "ES", "+34 912 34 56 78"},
	}

	movies := []seedMovie{
		{1, "Superman", 1978, 143, "SuperHero"},
		{2, "Superman Returns", 2006, 154, "SuperHero"},
		{3, "Super Size Me", 2004, 100, "Comedy"},
		{4, "Superbad", 2007, 113, "Comedy"},
		{5, "Super Troopers", 2001, 100, "Comedy"},
		{6, "Super 8", 2011, 112, "SciFi"},
		{7, "Supernova Love", 2004, 98, "Romance"},
		{8, "The Notebook", 2004, 123, "Romance"},
	}

	reviews := []seedReview{
		{1, 1, 5}, {2, 1, 2}, {3, 1, 1},
		{1, 2, 3}, {2, 2, 4},
		{1, 3, 5}, {2, 3, 4}, {3, 3, 4},
		{2, 4, 3}, {3, 4, 4},
		{1, 5, 4}, {3, 5, 4},
		{2, 6, 5}, {3, 6, 3},
		{1, 7, 2}, {3, 7, 5},
		{2, 8, 4}, {3, 8, 4},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, r := range reviewers {
			reviewer, err := model.NewReviewer(r.name, r.email, r.country, r.phone)
			if err != nil {
				return fmt.Errorf("种子评论者 %d 无效: %w", r.id, err)
			}
			reviewer.ID = r.id
			if err := tx.Create(reviewer).Error; err != nil {
				return err
			}
		}

		for _, m := range movies {
			year, err := model.NewReleaseYear(m.year)
			if err != nil {
				return fmt.Errorf("种子电影 %d 无效: %w", m.id, err)
			}
			runningTime, err := model.NewRunningTime(m.minutes)
			if err != nil {
				return fmt.Errorf("种子电影 %d 无效: %w", m.id, err)
			}
			genre, err := model.ParseGenre(m.genre)
			if err != nil {
				return fmt.Errorf("种子电影 %d 无效: %w", m.id, err)
			}
			movie, err := model.NewMovie(m.title, year, runningTime, genre)
			if err != nil {
				return fmt.Errorf("种子电影 %d 无效: %w", m.id, err)
			}
			movie.ID = m.id
			if err := tx.Create(movie).Error; err != nil {
				return err
			}
		}

		for i, r := range reviews {
			review, err := model.NewReview(r.reviewerID, r.movieID, r.score)
			if err != nil {
				return fmt.Errorf("种子评分 %d 无效: %w", i+1, err)
			}
			if err := tx.Create(review).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
