package model

// MovieResponse 电影响应 DTO，距今年数在响应时计算
type MovieResponse struct {
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	RunningTime int    `json:"runningTime"`
	YearsAgo    int    `json:"yearsSinceRelease"`
}

// ToResponse 转换为响应 DTO
func (m *Movie) ToResponse() MovieResponse {
	return MovieResponse{
		Title:       m.Title,
		Genre:       m.Genre.String(),
		RunningTime: m.RunningTime.Minutes(),
		YearsAgo:    m.ReleaseYear.YearsSince(),
	}
}

// MovieDetailResponse 单部电影详情，附带当前均分与评论数
type MovieDetailResponse struct {
	MovieResponse
	AverageScore float64 `json:"averageScore"`
	ReviewCount  int     `json:"reviewCount"`
}

// RankedMovieResponse 排行结果 DTO，Rating 为四舍五入到 0.5 的展示评分
type RankedMovieResponse struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	ReleaseYear int     `json:"releaseYear"`
	RunningTime int     `json:"runningTime"`
	Genre       string  `json:"genre"`
	Rating      float64 `json:"rating"`
}

// ToRanked 转换为排行 DTO
func (m *Movie) ToRanked(rating float64) RankedMovieResponse {
	return RankedMovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear.Int(),
		RunningTime: m.RunningTime.Minutes(),
		Genre:       m.Genre.String(),
		Rating:      rating,
	}
}
