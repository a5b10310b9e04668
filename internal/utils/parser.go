package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reSlugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	reSlugValid   = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Slugify 由标题（和年份）生成 URL 安全的 slug："Inception" + 2010 -> "inception-2010"
func Slugify(title string, year *int) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, "'", "")
	s = reSlugInvalid.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if year != nil && *year > 0 {
		suffix := strconv.Itoa(*year)
		if !strings.HasSuffix(s, suffix) {
			if s != "" {
				s += "-"
			}
			s += suffix
		}
	}
	return s
}

// IsSlug 是否为合法 slug：小写字母数字，以单个连字符分隔
func IsSlug(s string) bool {
	return len(s) <= 200 && reSlugValid.MatchString(s)
}
