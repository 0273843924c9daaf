package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	LocaleZhCN = "zh-CN"
	LocaleEnUS = "en-US"

	// DefaultLocale 无法识别 Accept-Language 时的默认语言
	DefaultLocale = LocaleZhCN
)

var (
	supportedTags = []language.Tag{language.SimplifiedChinese, language.AmericanEnglish}
	matcher       = language.NewMatcher(supportedTags)
	tagLocales    = map[language.Tag]string{
		language.SimplifiedChinese: LocaleZhCN,
		language.AmericanEnglish:   LocaleEnUS,
	}
)

// ResolveLocale 根据 Accept-Language 选择语言
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return DefaultLocale
	}
	return ParseLocale(c.GetHeader("Accept-Language"))
}

// ParseLocale 解析 Accept-Language 头
func ParseLocale(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	if locale, ok := tagLocales[supportedTags[index]]; ok {
		return locale
	}
	return DefaultLocale
}

// T 翻译 key，缺失时回退默认语言，仍缺失则返回 key 本身
func T(locale, key string) string {
	if msg, ok := lookup(locale, key); ok {
		return msg
	}
	if msg, ok := lookup(DefaultLocale, key); ok {
		return msg
	}
	return key
}

// Sprintf 翻译带参数的 key
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

func lookup(locale, key string) (string, bool) {
	catalog, ok := catalogs[locale]
	if !ok {
		return "", false
	}
	msg, ok := catalog[key]
	return msg, ok
}
