package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/user/movierank/internal/config"
	"github.com/user/movierank/internal/logger"
	"github.com/user/movierank/internal/repository"
	"github.com/user/movierank/internal/service"
	"github.com/user/movierank/internal/utils"
)

// Handler HTTP 处理器
type Handler struct {
	Repos        *repository.Repositories
	Config       *config.Config
	MovieService *service.MovieService
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	return &Handler{
		Repos:        repos,
		Config:       cfg,
		MovieService: service.NewMovieService(repos, cfg),
	}
}

// fail500 记录根因并返回带事件编号的 500
func (h *Handler) fail500(c *gin.Context, err error) {
	incidentID := uuid.NewString()
	logger.Get().WithFields(map[string]interface{}{
		"incident_id": incidentID,
		"path":        c.Request.URL.Path,
		"error":       err.Error(),
	}).Error("internal error")
	utils.InternalServerError(c, incidentID)
}
