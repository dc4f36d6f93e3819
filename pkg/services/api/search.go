package api

import (
	"fmt"

	ddg "github.com/ocidocs-dev/ocidocs-go/pkg/clients"
	"github.com/ocidocs-dev/ocidocs-go/pkg/configs"
	_interface "github.com/ocidocs-dev/ocidocs-go/pkg/interfaces"
	constants "github.com/ocidocs-dev/ocidocs-go/pkg/types"
	request "github.com/ocidocs-dev/ocidocs-go/pkg/types/dtos/requests"
	structure "github.com/ocidocs-dev/ocidocs-go/pkg/types/structures"
	"github.com/ocidocs-dev/ocidocs-go/pkg/utils"
)

// searchEngine은 검색 엔진 클라이언트가 제공해야 하는 동작입니다
type searchEngine interface {
	SearchDocs(searchPhrase string, limit int) ([]structure.SearchResultItem, error)
}

// SearchImpl는 문서 검색 서비스 구현체입니다
type SearchImpl struct {
	_interface.Service
	ddgClient searchEngine
}

// NewSearchService는 새 문서 검색 서비스를 생성합니다
func NewSearchService() _interface.SearchService {
	config := configs.GetConfig()
	ddgClient := ddg.NewDDGClient(config)

	return &SearchImpl{
		Service:   _interface.Service{Config: config},
		ddgClient: ddgClient,
	}
}

// SearchDocumentation은 검색어로 문서 페이지를 검색합니다
func (s *SearchImpl) SearchDocumentation(req request.SearchDocumentation) ([]structure.SearchResultItem, error) {
	if s.ddgClient == nil {
		return nil, fmt.Errorf("검색 클라이언트가 초기화되지 않았습니다")
	}

	// limit 기본값 및 범위 보정
	limit := req.Limit
	if limit <= 0 {
		limit = constants.SEARCH_DEFAULT_LIMIT
	}
	if limit > constants.SEARCH_MAX_LIMIT {
		limit = constants.SEARCH_MAX_LIMIT
	}

	utils.Info("search", "문서 검색: %q (limit=%d)", req.SearchPhrase, limit)

	// 검색 엔진 호출
	results, err := s.ddgClient.SearchDocs(req.SearchPhrase, limit)
	if err != nil {
		return nil, fmt.Errorf("문서 검색 실패: %v", err)
	}

	if len(results) == 0 {
		utils.Debug("search", "검색 결과 없음: %q", req.SearchPhrase)
		return []structure.SearchResultItem{}, nil
	}

	return results, nil
}
