package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/user/movierank/internal/handler"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	movies := r.Group("/movies")
	{
		movies.GET("", h.SearchMovies)
		movies.GET("/detail/:id", h.MovieDetail)
		movies.GET("/top-ranked/:n", h.TopMovies)
		movies.GET("/top-ranked/:n/reviewer/:reviewerId", h.TopMoviesByReviewer)
		movies.POST("/review", h.AddReview)
	}
}
