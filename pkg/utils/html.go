package utils

import (
	"regexp"
	"strings"
)

// HTML 태그 정규식
var htmlTagRe = regexp.MustCompile(`<[^>]*>`)
var multiSpaceRe = regexp.MustCompile(`\s+`)

// RemoveHTMLTags는 문자열에서 HTML 태그를 제거합니다
func RemoveHTMLTags(s string) string {
	noTags := htmlTagRe.ReplaceAllString(s, "")

	// HTML 엔티티 처리
	noTags = strings.ReplaceAll(noTags, "&lt;", "<")
	noTags = strings.ReplaceAll(noTags, "&gt;", ">")
	noTags = strings.ReplaceAll(noTags, "&amp;", "&")
	noTags = strings.ReplaceAll(noTags, "&quot;", "\"")
	noTags = strings.ReplaceAll(noTags, "&#39;", "'")
	noTags = strings.ReplaceAll(noTags, "&nbsp;", " ")

	// 여러 공백 정리
	noTags = multiSpaceRe.ReplaceAllString(noTags, " ")

	return strings.TrimSpace(noTags)
}

// IsHTMLContent는 응답 본문이 HTML 문서인지 확인합니다
func IsHTMLContent(content string, contentType string) bool {
	if strings.Contains(contentType, "text/html") {
		return true
	}

	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(strings.ToLower(trimmed), "<!doctype") {
		return true
	}

	// 문서 앞부분에만 html 태그가 있는지 확인
	head := content
	if len(head) > 1000 {
		head = head[:1000]
	}
	return strings.Contains(strings.ToLower(head), "<html")
}
