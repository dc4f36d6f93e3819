package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveHTMLTags(t *testing.T) {
	assert.Equal(t, "제목 텍스트", RemoveHTMLTags("<b>제목</b> <i>텍스트</i>"))
	assert.Equal(t, "a < b", RemoveHTMLTags("a &lt; b"))
	assert.Equal(t, "공백 정리", RemoveHTMLTags("  공백   \n  정리  "))
	assert.Equal(t, "", RemoveHTMLTags("<script></script>"))
}

func TestIsHTMLContent(t *testing.T) {
	// 콘텐츠 타입으로 판별
	assert.True(t, IsHTMLContent("아무 내용", "text/html; charset=utf-8"))

	// 문서 프리픽스로 판별
	assert.True(t, IsHTMLContent("<!DOCTYPE html><html></html>", "application/octet-stream"))
	assert.True(t, IsHTMLContent("  <!doctype html>", ""))
	assert.True(t, IsHTMLContent("<html lang=\"en\"><body></body></html>", ""))

	// 일반 텍스트는 HTML이 아님
	assert.False(t, IsHTMLContent("plain text content", "text/plain"))
	assert.False(t, IsHTMLContent("{\"json\": true}", "application/json"))
}
