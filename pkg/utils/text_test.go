package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceDocument_WithinRange(t *testing.T) {
	slice := SliceDocument("0123456789", 0, 20)

	assert.Equal(t, "0123456789", slice.Content)
	assert.Equal(t, 10, slice.TotalLength)
	assert.False(t, slice.Truncated)
	assert.Equal(t, 0, slice.NextStartIndex)
}

func TestSliceDocument_Truncates(t *testing.T) {
	slice := SliceDocument("0123456789", 0, 4)

	assert.Equal(t, "0123", slice.Content)
	assert.True(t, slice.Truncated)
	assert.Equal(t, 4, slice.NextStartIndex)

	// 이어서 읽기
	next := SliceDocument("0123456789", slice.NextStartIndex, 4)
	assert.Equal(t, "4567", next.Content)
	assert.True(t, next.Truncated)

	last := SliceDocument("0123456789", next.NextStartIndex, 4)
	assert.Equal(t, "89", last.Content)
	assert.False(t, last.Truncated)
}

func TestSliceDocument_StartBeyondEnd(t *testing.T) {
	slice := SliceDocument("짧은 문서", 100, 10)

	assert.Equal(t, "", slice.Content)
	assert.False(t, slice.Truncated)
}

func TestSliceDocument_MultibyteSafe(t *testing.T) {
	content := "한글 문서 내용입니다"
	slice := SliceDocument(content, 0, 5)

	// 문자 단위로 잘려 깨진 문자가 없어야 함
	assert.Equal(t, "한글 문서", slice.Content)
	assert.Equal(t, len([]rune(content)), slice.TotalLength)
	assert.True(t, strings.HasPrefix(content, slice.Content))
}

func TestSliceDocument_NegativeStart(t *testing.T) {
	slice := SliceDocument("abcdef", -5, 3)

	assert.Equal(t, "abc", slice.Content)
	assert.Equal(t, 0, slice.StartIndex)
}
