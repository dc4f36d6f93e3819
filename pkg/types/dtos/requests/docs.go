package request

// SearchDocumentation은 문서 검색 요청 본문을 나타냅니다.
type SearchDocumentation struct {
	SearchPhrase string `json:"search_phrase" validate:"required,min=2,max=200"`
	Limit        int    `json:"limit,omitempty" validate:"min=0,max=10"`
}

// ReadDocumentation은 문서 읽기 요청 본문을 나타냅니다.
type ReadDocumentation struct {
	URL        string `json:"url" validate:"required"`
	MaxLength  int    `json:"max_length,omitempty" validate:"min=0,max=999999"`
	StartIndex int    `json:"start_index,omitempty" validate:"min=0"`
}
