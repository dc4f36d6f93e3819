package reader

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ocidocs-dev/ocidocs-go/pkg/configs"
	_interface "github.com/ocidocs-dev/ocidocs-go/pkg/interfaces"
	"github.com/ocidocs-dev/ocidocs-go/pkg/services/internal/converter"
	"github.com/ocidocs-dev/ocidocs-go/pkg/services/internal/crawler"
	constants "github.com/ocidocs-dev/ocidocs-go/pkg/types"
	request "github.com/ocidocs-dev/ocidocs-go/pkg/types/dtos/requests"
	model "github.com/ocidocs-dev/ocidocs-go/pkg/types/models"
	structure "github.com/ocidocs-dev/ocidocs-go/pkg/types/structures"
	"github.com/ocidocs-dev/ocidocs-go/pkg/utils"
)

var docsURLRe = regexp.MustCompile(constants.DOCS_URL_PATTERN)

// ReaderImpl는 문서 읽기 서비스 구현체입니다
type ReaderImpl struct {
	config   *configs.EnvConfig
	fetcher  *crawler.PageFetcher
	pageRepo _interface.PageCacheRepository
}

// NewReaderService는 새 문서 읽기 서비스를 생성합니다
func NewReaderService(pageRepo _interface.PageCacheRepository) _interface.ReaderService {
	config := configs.GetConfig()

	return &ReaderImpl{
		config:   config,
		fetcher:  crawler.NewPageFetcher(config),
		pageRepo: pageRepo,
	}
}

// ReadDocumentation은 문서 페이지를 가져와 마크다운으로 변환하고 요청된 구간을 반환합니다
func (s *ReaderImpl) ReadDocumentation(req request.ReadDocumentation) (*structure.DocumentPage, *structure.DocumentSlice, error) {
	// URL 검증
	if err := ValidateDocsURL(req.URL); err != nil {
		return nil, nil, err
	}

	// 기본값 적용
	maxLength := req.MaxLength
	if maxLength <= 0 {
		maxLength = constants.READ_DEFAULT_MAX_LENGTH
	}
	if maxLength > constants.READ_MAX_LENGTH_LIMIT {
		maxLength = constants.READ_MAX_LENGTH_LIMIT
	}

	// 페이지 조회 (캐시 우선)
	page, err := s.loadPage(req.URL)
	if err != nil {
		return nil, nil, err
	}

	// 요청된 구간 잘라내기
	slice := utils.SliceDocument(page.Markdown, req.StartIndex, maxLength)

	if slice.Truncated {
		utils.Debug("reader", "본문 잘림: %d/%d 문자 (다음 시작 인덱스 %d)",
			slice.EndIndex, slice.TotalLength, slice.NextStartIndex)
	}

	return page, &slice, nil
}

// loadPage는 캐시를 확인하고 없으면 페이지를 가져와 변환합니다
func (s *ReaderImpl) loadPage(pageURL string) (*structure.DocumentPage, error) {
	// 캐시 조회 (실패해도 계속 진행)
	if s.pageRepo != nil {
		cache, err := s.pageRepo.GetPageCache(pageURL)
		if err != nil {
			utils.Warn("reader", "페이지 캐시 조회 중 무시된 오류: %v", err)
		}
		utils.RecordCacheLookup(cache != nil)

		if cache != nil {
			return &structure.DocumentPage{
				URL:         pageURL,
				ContentType: cache.ContentType,
				Markdown:    cache.Markdown,
				FromCache:   true,
			}, nil
		}
	}

	// 페이지 가져오기
	body, contentType, err := s.fetcher.FetchPage(pageURL)
	if err != nil {
		return nil, fmt.Errorf("페이지 가져오기 실패: %v", err)
	}

	// HTML이면 마크다운으로 변환, 아니면 본문 그대로 사용
	content := body
	if utils.IsHTMLContent(body, contentType) {
		content, err = converter.ToMarkdown(body)
		if err != nil {
			return nil, fmt.Errorf("마크다운 변환 실패: %v", err)
		}
	}

	page := &structure.DocumentPage{
		URL:         pageURL,
		ContentType: contentType,
		Markdown:    content,
	}

	// 캐시 저장 (실패해도 응답에는 영향 없음)
	if s.pageRepo != nil {
		ttl := time.Duration(s.config.Cache.TTLHours) * time.Hour
		cache := &model.PageCache{
			PageURL:     pageURL,
			Markdown:    content,
			ContentType: contentType,
			CreatedAt:   time.Now(),
			ExpiresAt:   time.Now().Add(ttl),
		}
		if err := s.pageRepo.SavePageCache(cache); err != nil {
			utils.Warn("reader", "페이지 캐시 저장 실패: %v", err)
		}
	}

	return page, nil
}

// ValidateDocsURL은 요청된 URL이 허용된 문서 페이지인지 확인합니다
func ValidateDocsURL(pageURL string) error {
	if !docsURLRe.MatchString(pageURL) {
		return fmt.Errorf("%w: docs.oracle.com 도메인의 URL만 허용됩니다", _interface.ErrInvalidRequest)
	}

	for _, suffix := range constants.DOCS_URL_SUFFIXES {
		if strings.HasSuffix(pageURL, suffix) {
			return nil
		}
	}

	return fmt.Errorf("%w: URL은 .htm 또는 .html로 끝나야 합니다", _interface.ErrInvalidRequest)
}
