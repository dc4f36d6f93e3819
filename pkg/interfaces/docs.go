package _interface

import (
	"errors"

	request "github.com/ocidocs-dev/ocidocs-go/pkg/types/dtos/requests"
	model "github.com/ocidocs-dev/ocidocs-go/pkg/types/models"
	structure "github.com/ocidocs-dev/ocidocs-go/pkg/types/structures"
)

// ErrInvalidRequest는 요청 값 자체가 잘못된 경우를 나타냅니다.
// 핸들러에서 업스트림 오류(502)와 구분하여 400으로 응답하는 데 사용됩니다.
var ErrInvalidRequest = errors.New("잘못된 요청")

// SearchService는 문서 검색 서비스 인터페이스입니다
type SearchService interface {
	// SearchDocumentation은 검색어로 문서 페이지를 검색합니다
	SearchDocumentation(req request.SearchDocumentation) ([]structure.SearchResultItem, error)
}

// ReaderService는 문서 읽기 서비스 인터페이스입니다
type ReaderService interface {
	// ReadDocumentation은 문서 페이지를 가져와 마크다운으로 변환하고 요청된 구간을 반환합니다
	ReadDocumentation(req request.ReadDocumentation) (*structure.DocumentPage, *structure.DocumentSlice, error)
}

// PageCacheRepository는 변환된 페이지 캐시 저장소 인터페이스입니다
type PageCacheRepository interface {
	// GetPageCache는 페이지 URL에 대한 캐시를 가져옵니다
	GetPageCache(pageURL string) (*model.PageCache, error)

	// SavePageCache는 변환된 페이지를 캐시에 저장합니다
	SavePageCache(cache *model.PageCache) error
}
