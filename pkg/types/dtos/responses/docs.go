package response

import structure "github.com/ocidocs-dev/ocidocs-go/pkg/types/structures"

// SearchDocumentation은 문서 검색 요청에 대한 응답을 나타냅니다.
type SearchDocumentation struct {
	SearchPhrase string                       `json:"searchPhrase"`
	TotalResults int                          `json:"totalResults"`
	Results      []structure.SearchResultItem `json:"results"`
}

// ReadDocumentation은 문서 읽기 요청에 대한 응답을 나타냅니다.
type ReadDocumentation struct {
	URL            string `json:"url"`
	Content        string `json:"content"`
	TotalLength    int    `json:"totalLength"`
	StartIndex     int    `json:"startIndex"`
	EndIndex       int    `json:"endIndex"`
	Truncated      bool   `json:"truncated"`
	NextStartIndex int    `json:"nextStartIndex,omitempty"`
	FromCache      bool   `json:"fromCache"`
}
