package structure

// SearchResultItem은 검색 엔진에서 파싱한 단일 결과입니다
type SearchResultItem struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// DocumentPage는 문서 페이지를 가져와 변환한 결과입니다
type DocumentPage struct {
	URL         string
	ContentType string
	// 마크다운으로 변환된 전체 본문
	Markdown string
	// 캐시에서 조회된 페이지인지 여부
	FromCache bool
}

// DocumentSlice는 페이지 본문의 일부 구간입니다
type DocumentSlice struct {
	Content        string
	TotalLength    int
	StartIndex     int
	EndIndex       int
	Truncated      bool
	NextStartIndex int
}
