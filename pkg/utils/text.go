package utils

import (
	structure "github.com/ocidocs-dev/ocidocs-go/pkg/types/structures"
)

// SliceDocument는 문서 본문에서 요청된 구간을 잘라냅니다.
// 인덱스는 문자(룬) 단위로 계산되어 멀티바이트 문자가 잘리지 않습니다.
func SliceDocument(content string, startIndex int, maxLength int) structure.DocumentSlice {
	runes := []rune(content)
	total := len(runes)

	if startIndex < 0 {
		startIndex = 0
	}
	if startIndex > total {
		startIndex = total
	}

	end := startIndex + maxLength
	if maxLength <= 0 || end > total {
		end = total
	}

	truncated := end < total
	next := 0
	if truncated {
		next = end
	}

	return structure.DocumentSlice{
		Content:        string(runes[startIndex:end]),
		TotalLength:    total,
		StartIndex:     startIndex,
		EndIndex:       end,
		Truncated:      truncated,
		NextStartIndex: next,
	}
}
