package catalog

import (
	"regexp"
	"sort"
	"strings"
)

var whitespace = regexp.MustCompile(`\s+`)

// GenreDirectory 去重、去空并排序，首位补上 All
func GenreDirectory(genres []string) []string {
	seen := make(map[string]struct{}, len(genres))
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		if strings.TrimSpace(g) == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	sort.Strings(out)
	return append([]string{All}, out...)
}

// GenreSlug 类型的 URL 形式："Sci Fi" -> "sci-fi"
func GenreSlug(genre string) string {
	return whitespace.ReplaceAllString(strings.ToLower(genre), "-")
}

// ResolveGenre 在类型目录中查找与 slug 对应的类型
func ResolveGenre(directory []string, slug string) (string, bool) {
	if strings.EqualFold(slug, All) {
		return All, true
	}
	for _, g := range directory {
		if g != All && GenreSlug(g) == slug {
			return g, true
		}
	}
	return "", false
}

// IsYear 是否为四位数字年份
func IsYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
