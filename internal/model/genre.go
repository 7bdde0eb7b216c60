package model

import "fmt"

// GenreType 题材枚举，多个别名映射到同一个规范编码
type GenreType int

const (
	GenreUnknown GenreType = iota
	GenreSuperHero
	GenreComedy
	GenreRomance
	GenreAction
	GenreSciFi
)

// genreAliases 别名表，区分大小写精确匹配
var genreAliases = map[string]GenreType{
	"Unknown":         GenreUnknown,
	"SuperHero":       GenreSuperHero,
	"Super Hero":      GenreSuperHero,
	"Hero":            GenreSuperHero,
	"Heros":           GenreSuperHero,
	"Heroes":          GenreSuperHero,
	"Marvel":          GenreSuperHero,
	"DC":              GenreSuperHero,
	"Comedy":          GenreComedy,
	"Humor":           GenreComedy,
	"Humour":          GenreComedy,
	"Funny":           GenreComedy,
	"Romance":         GenreRomance,
	"Romantic":        GenreRomance,
	"RomCom":          GenreRomance,
	"Love Story":      GenreRomance,
	"Action":          GenreAction,
	"Adventure":       GenreAction,
	"SciFi":           GenreSciFi,
	"Sci-Fi":          GenreSciFi,
	"Sci Fi":          GenreSciFi,
	"Science Fiction": GenreSciFi,
}

// genreNames 编码到规范名称
var genreNames = map[GenreType]string{
	GenreUnknown:   "Unknown",
	GenreSuperHero: "SuperHero",
	GenreComedy:    "Comedy",
	GenreRomance:   "Romance",
	GenreAction:    "Action",
	GenreSciFi:     "SciFi",
}

// GenreFromName 按别名解析题材，未知名称返回 GenreUnknown
func GenreFromName(name string) GenreType {
	if g, ok := genreAliases[name]; ok {
		return g
	}
	return GenreUnknown
}

// ParseGenre 严格解析题材，未知名称返回错误
func ParseGenre(name string) (GenreType, error) {
	g, ok := genreAliases[name]
	if !ok {
		return GenreUnknown, fmt.Errorf("未知题材: %q", name)
	}
	return g, nil
}

// String 返回规范名称
func (g GenreType) String() string {
	if name, ok := genreNames[g]; ok {
		return name
	}
	return genreNames[GenreUnknown]
}
