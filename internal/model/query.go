package model

import (
	"errors"
	"fmt"
)

// ErrEmptyCriteria 查询条件全部为空
var ErrEmptyCriteria = errors.New("至少需要提供 Title、Year、Genre 中的一个查询条件")

// MovieSearchCriteria 电影查询条件
// Title 不区分大小写的子串匹配，Year 精确匹配，Genre 按规范编码精确匹配
type MovieSearchCriteria struct {
	Title string `form:"Title"`
	Year  int    `form:"Year" binding:"omitempty,gte=0"`
	Genre string `form:"Genre"`
}

// GenreCode 解析 Genre 别名为规范编码，未知别名视同未提供
func (c MovieSearchCriteria) GenreCode() GenreType {
	if c.Genre == "" {
		return GenreUnknown
	}
	return GenreFromName(c.Genre)
}

// Validate 至少一个条件非默认值才允许查询
func (c MovieSearchCriteria) Validate() error {
	if c.Title == "" && c.Year == 0 && c.GenreCode() == GenreUnknown {
		return ErrEmptyCriteria
	}
	return nil
}

// CacheKey 条件的缓存键
func (c MovieSearchCriteria) CacheKey() string {
	return fmt.Sprintf("search:%s:%d:%d", c.Title, c.Year, c.GenreCode())
}

// AddReviewRequest 提交评分请求体
type AddReviewRequest struct {
	ReviewerID int `json:"reviewerId" binding:"required,gt=0"`
	MovieID    int `json:"movieId" binding:"required,gt=0"`
	Score      int `json:"score" binding:"required,gte=1,lte=5"`
}
