package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/user/movierank/internal/model"
	"github.com/user/movierank/internal/service"
	"github.com/user/movierank/internal/utils"
)

// SearchMovies GET /movies?Title=&Year=&Genre=
func (h *Handler) SearchMovies(c *gin.Context) {
	var criteria model.MovieSearchCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		utils.BadRequest(c, "查询参数无效: "+err.Error())
		return
	}

	movies, err := h.MovieService.Search(c.Request.Context(), criteria)
	if err != nil {
		if errors.Is(err, model.ErrEmptyCriteria) {
			utils.BadRequest(c, err.Error())
			return
		}
		h.fail500(c, err)
		return
	}
	if len(movies) == 0 {
		utils.NotFound(c, "没有符合条件的电影")
		return
	}
	utils.Success(c, movies)
}

// MovieDetail GET /movies/detail/:id
func (h *Handler) MovieDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "电影 ID 无效")
		return
	}

	detail, err := h.MovieService.GetMovie(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			utils.NotFound(c, "电影不存在")
			return
		}
		h.fail500(c, err)
		return
	}
	utils.Success(c, detail)
}

// TopMovies GET /movies/top-ranked/:n
func (h *Handler) TopMovies(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		utils.BadRequest(c, "数量参数无效")
		return
	}

	ranked, err := h.MovieService.GetTopMovies(c.Request.Context(), n)
	if err != nil {
		h.fail500(c, err)
		return
	}
	if len(ranked) == 0 {
		utils.NotFound(c, "没有可排行的电影")
		return
	}
	utils.Success(c, ranked)
}

// TopMoviesByReviewer GET /movies/top-ranked/:n/reviewer/:reviewerId
func (h *Handler) TopMoviesByReviewer(c *gin.Context) {
	n, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		utils.BadRequest(c, "数量参数无效")
		return
	}
	reviewerID, err := strconv.Atoi(c.Param("reviewerId"))
	if err != nil {
		utils.BadRequest(c, "评论者 ID 无效")
		return
	}
	if n <= 0 || reviewerID <= 0 {
		utils.BadRequest(c, "数量和评论者 ID 必须为正整数")
		return
	}

	ranked, err := h.MovieService.GetMoviesByReviewer(c.Request.Context(), n, reviewerID)
	if err != nil {
		h.fail500(c, err)
		return
	}
	if len(ranked) == 0 {
		utils.NotFound(c, "该评论者没有评分记录")
		return
	}
	utils.Success(c, ranked)
}

// AddReview POST /movies/review
func (h *Handler) AddReview(c *gin.Context) {
	var req model.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请求体无效: "+err.Error())
		return
	}

	err := h.MovieService.AddUpdateReview(c.Request.Context(), req.ReviewerID, req.MovieID, req.Score)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMovieNotFound):
			utils.NotFound(c, "电影不存在")
		case errors.Is(err, service.ErrReviewerNotFound):
			utils.NotFound(c, "评论者不存在")
		default:
			h.fail500(c, err)
		}
		return
	}
	utils.SuccessWithMessage(c, "评分已保存", nil)
}
