package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/singleflight"

	"github.com/user/movierank/internal/config"
	"github.com/user/movierank/internal/model"
	"github.com/user/movierank/internal/repository"
	"github.com/user/movierank/internal/utils"
)

var (
	// ErrMovieNotFound 电影不存在
	ErrMovieNotFound = errors.New("电影不存在")
	// ErrReviewerNotFound 评论者不存在
	ErrReviewerNotFound = errors.New("评论者不存在")
)

// MovieService 电影领域服务：查询、排行、评分
type MovieService struct {
	movies    *repository.MovieRepository
	reviewers *repository.ReviewerRepository
	reviews   *repository.ReviewRepository

	searchCache *utils.SearchCache[[]model.MovieResponse]
	rankOrder   RankOrder
	sf          singleflight.Group
}

// NewMovieService 创建电影服务
func NewMovieService(repos *repository.Repositories, cfg *config.Config) *MovieService {
	return &MovieService{
		movies:      repos.Movie,
		reviewers:   repos.Reviewer,
		reviews:     repos.Review,
		searchCache: utils.NewSearchCache[[]model.MovieResponse](cfg.SearchCacheSize, cfg.RankCacheTTL),
		rankOrder:   DefaultRankOrder,
	}
}

// Search 按条件查询电影
// 条件全空时直接拒绝，不触达存储；命中结果走 LRU 缓存
func (s *MovieService) Search(ctx context.Context, criteria model.MovieSearchCriteria) ([]model.MovieResponse, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	key := criteria.CacheKey()
	if cached, ok := s.searchCache.Get(key); ok {
		return cached, nil
	}

	movies, err := s.movies.Search(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("查询电影失败: %w", err)
	}

	results := make([]model.MovieResponse, 0, len(movies))
	for i := range movies {
		results = append(results, movies[i].ToResponse())
	}

	if len(results) > 0 {
		s.searchCache.Set(key, results)
	}
	return results, nil
}

// GetMovie 单部电影详情，评论由服务层显式查询后挂到实体上
func (s *MovieService) GetMovie(ctx context.Context, id int) (*model.MovieDetailResponse, error) {
	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询电影失败: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	reviews, err := s.reviews.ListByMovie(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("查询评论失败: %w", err)
	}
	if len(reviews) > 0 {
		if err := movie.AddReviews(reviews); err != nil {
			return nil, err
		}
	}

	return &model.MovieDetailResponse{
		MovieResponse: movie.ToResponse(),
		AverageScore:  movie.AverageScore(),
		ReviewCount:   len(movie.Reviews),
	}, nil
}

// GetTopMovies 总排行：按均分（四舍五入到 0.5）降序，取前 n
// 结果带 TTL 缓存，并发计算用 singleflight 合并
func (s *MovieService) GetTopMovies(ctx context.Context, n int) ([]model.RankedMovieResponse, error) {
	if n <= 0 {
		return []model.RankedMovieResponse{}, nil
	}

	key := fmt.Sprintf("rank:top:%d", n)
	if cached, ok := utils.CacheGet(key); ok {
		return cached.([]model.RankedMovieResponse), nil
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		ranked, err := s.computeTopMovies(ctx, n)
		if err != nil {
			return nil, err
		}
		utils.CacheSet(key, ranked, 0)
		return ranked, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.RankedMovieResponse), nil
}

func (s *MovieService) computeTopMovies(ctx context.Context, n int) ([]model.RankedMovieResponse, error) {
	movies, err := s.movies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询电影失败: %w", err)
	}
	reviews, err := s.reviews.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询评论失败: %w", err)
	}

	sums := make(map[int]int, len(movies))
	counts := make(map[int]int, len(movies))
	for _, r := range reviews {
		sums[r.MovieID] += r.Score
		counts[r.MovieID]++
	}

	ranked := make([]model.RankedMovieResponse, 0, len(movies))
	for i := range movies {
		rating := 0.0
		if c := counts[movies[i].ID]; c > 0 {
			rating = RoundToNearestHalf(float64(sums[movies[i].ID]) / float64(c))
		}
		ranked = append(ranked, movies[i].ToRanked(rating))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return s.rankOrder(ranked[i], ranked[j])
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// GetMoviesByReviewer 某评论者的个人评分排行：按其打出的单条评分降序，取前 n
func (s *MovieService) GetMoviesByReviewer(ctx context.Context, n, reviewerID int) ([]model.RankedMovieResponse, error) {
	if n <= 0 || reviewerID <= 0 {
		return []model.RankedMovieResponse{}, nil
	}

	key := fmt.Sprintf("rank:reviewer:%d:%d", reviewerID, n)
	if cached, ok := utils.CacheGet(key); ok {
		return cached.([]model.RankedMovieResponse), nil
	}

	reviews, err := s.reviews.ListByReviewer(ctx, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("查询评论失败: %w", err)
	}
	if len(reviews) == 0 {
		return []model.RankedMovieResponse{}, nil
	}

	ids := make([]int, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.MovieID)
	}
	movies, err := s.movies.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("查询电影失败: %w", err)
	}
	byID := make(map[int]*model.Movie, len(movies))
	for i := range movies {
		byID[movies[i].ID] = &movies[i]
	}

	ranked := make([]model.RankedMovieResponse, 0, len(reviews))
	for _, r := range reviews {
		movie, ok := byID[r.MovieID]
		if !ok {
			continue
		}
		ranked = append(ranked, movie.ToRanked(float64(r.Score)))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ScoreDescOrder(ranked[i], ranked[j])
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	utils.CacheSet(key, ranked, 0)
	return ranked, nil
}

// AddUpdateReview 创建或覆盖评分
// 先校验电影、评论者存在，再按 (movie_id, reviewer_id) 落库；
// 校验失败与持久化失败是两类错误，分别上报
func (s *MovieService) AddUpdateReview(ctx context.Context, reviewerID, movieID, score int) error {
	review, err := model.NewReview(reviewerID, movieID, score)
	if err != nil {
		return err
	}

	exists, err := s.movies.Exists(ctx, movieID)
	if err != nil {
		return fmt.Errorf("查询电影失败: %w", err)
	}
	if !exists {
		return ErrMovieNotFound
	}

	exists, err = s.reviewers.Exists(ctx, reviewerID)
	if err != nil {
		return fmt.Errorf("查询评论者失败: %w", err)
	}
	if !exists {
		return ErrReviewerNotFound
	}

	if err := s.reviews.Upsert(ctx, review); err != nil {
		return fmt.Errorf("保存评分失败: %w", err)
	}

	// 评分变化后排行缓存立即失效
	utils.CacheClear()
	return nil
}
