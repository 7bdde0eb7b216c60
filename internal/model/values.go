package model

import (
	"fmt"
	"math"
	"time"
)

// 电影诞生于 1895 年（卢米埃尔兄弟），上映年份不可能早于它
const cinemaInventionYear = 1895

// 片长上限：一天 24 小时
const maxRunningMinutes = 1440

// ReleaseYear 上映年份值对象
type ReleaseYear int

// NewReleaseYear 创建上映年份，范围 [1895, 当前年份]
func NewReleaseYear(year int) (ReleaseYear, error) {
	current := time.Now().Year()
	if year < cinemaInventionYear || year > current {
		return 0, fmt.Errorf("上映年份 %d 无效，必须在 %d 到 %d 之间", year, cinemaInventionYear, current)
	}
	return ReleaseYear(year), nil
}

// Int 返回年份整数值
func (y ReleaseYear) Int() int {
	return int(y)
}

// YearsSince 距今年数（响应时动态计算）
func (y ReleaseYear) YearsSince() int {
	return time.Now().Year() - int(y)
}

// RunningTime 片长值对象，单位分钟
type RunningTime int

// NewRunningTime 创建片长，范围 [1, 1440] 分钟
func NewRunningTime(minutes int) (RunningTime, error) {
	if minutes < 1 || minutes > maxRunningMinutes {
		return 0, fmt.Errorf("片长 %d 分钟无效，必须在 1 到 %d 之间", minutes, maxRunningMinutes)
	}
	return RunningTime(minutes), nil
}

// NewRunningTimeFromHours 以小时创建片长，截断到整数分钟后委托给 NewRunningTime
func NewRunningTimeFromHours(hours float64) (RunningTime, error) {
	return NewRunningTime(int(math.Floor(hours * 60)))
}

// Minutes 返回分钟数
func (t RunningTime) Minutes() int {
	return int(t)
}

// Score 评分值对象，整数 1-5
type Score int

// NewScore 创建评分，范围 [1, 5]
func NewScore(value int) (Score, error) {
	if value < 1 || value > 5 {
		return 0, fmt.Errorf("评分 %d 超出范围，必须在 1 到 5 之间", value)
	}
	return Score(value), nil
}

// Int 返回评分整数值
func (s Score) Int() int {
	return int(s)
}
