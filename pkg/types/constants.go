package constants

import "time"

// 문서 페이지 허용 URL 패턴
const DOCS_URL_PATTERN = `^https?://docs\.oracle\.com/`

// 문서 페이지 허용 확장자
var DOCS_URL_SUFFIXES = []string{
	".htm",
	".html",
}

// 마크다운 변환 시 제거할 요소 선택자
var STRIP_SELECTORS = []string{
	"script",
	"style",
	"noscript",
	"nav",
	"header",
	"footer",
	"iframe",
}

// 검색 결과 영역 선택자 (DuckDuckGo HTML 버전)
var RESULT_SELECTORS = struct {
	Result  string
	Title   string
	Snippet string
}{
	Result:  ".result, .web-result",
	Title:   ".result__a",
	Snippet: ".result__snippet",
}

// 검색 기본값
const (
	SEARCH_DEFAULT_LIMIT = 3
	SEARCH_MIN_LIMIT     = 1
	SEARCH_MAX_LIMIT     = 10
)

// 문서 읽기 기본값
const (
	READ_DEFAULT_MAX_LENGTH = 5000
	READ_MAX_LENGTH_LIMIT   = 999999
)

// 타임아웃 시간
var (
	SEARCH_TIMEOUT = 10 * time.Second
	FETCH_TIMEOUT  = 30 * time.Second
)

// 페이지 요청 재시도 설정
const (
	FETCH_MAX_RETRIES = 3
	FETCH_RETRY_DELAY = 500 * time.Millisecond
)
