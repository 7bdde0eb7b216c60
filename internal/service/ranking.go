package service

import (
	"math"

	"github.com/user/movierank/internal/model"
)

// RoundToNearestHalf 四舍五入到最近的 0.5，恰好一半时远离零取整
// 例如 3.25 -> 3.5，2.75 -> 3.0；已对齐到 0.5 的值保持不变
func RoundToNearestHalf(v float64) float64 {
	return math.Round(v*2) / 2
}

// RankOrder 排行比较器，返回 a 是否应排在 b 之前
type RankOrder func(a, b model.RankedMovieResponse) bool

// DefaultRankOrder 默认排序策略：评分降序，同分按标题升序
// 两个历史版本对同分顺序的处理不一致，这里固定采用确定性的一种
var DefaultRankOrder RankOrder = func(a, b model.RankedMovieResponse) bool {
	if a.Rating != b.Rating {
		return a.Rating > b.Rating
	}
	return a.Title < b.Title
}

// ScoreDescOrder 按个人评分降序，同分保持原有顺序（配合稳定排序使用）
var ScoreDescOrder RankOrder = func(a, b model.RankedMovieResponse) bool {
	return a.Rating > b.Rating
}
