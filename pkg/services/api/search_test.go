package api

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	request "github.com/ocidocs-dev/ocidocs-go/pkg/types/dtos/requests"
	structure "github.com/ocidocs-dev/ocidocs-go/pkg/types/structures"
)

// stubEngine은 전달받은 limit을 기록하는 검색 엔진 스텁입니다
type stubEngine struct {
	lastLimit int
	results   []structure.SearchResultItem
	err       error
}

func (s *stubEngine) SearchDocs(searchPhrase string, limit int) ([]structure.SearchResultItem, error) {
	s.lastLimit = limit
	return s.results, s.err
}

func newTestService(engine *stubEngine) *SearchImpl {
	return &SearchImpl{ddgClient: engine}
}

func TestSearchDocumentation_DefaultLimit(t *testing.T) {
	engine := &stubEngine{results: []structure.SearchResultItem{}}
	svc := newTestService(engine)

	// limit 생략(0)이면 기본값 3으로 검색
	_, err := svc.SearchDocumentation(request.SearchDocumentation{SearchPhrase: "compute instance"})
	require.NoError(t, err)
	assert.Equal(t, 3, engine.lastLimit)
}

func TestSearchDocumentation_ClampsLimit(t *testing.T) {
	engine := &stubEngine{results: []structure.SearchResultItem{}}
	svc := newTestService(engine)

	_, err := svc.SearchDocumentation(request.SearchDocumentation{SearchPhrase: "object storage", Limit: 25})
	require.NoError(t, err)
	assert.Equal(t, 10, engine.lastLimit)

	// 범위 안의 값은 그대로 전달
	_, err = svc.SearchDocumentation(request.SearchDocumentation{SearchPhrase: "object storage", Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, engine.lastLimit)
}

func TestSearchDocumentation_PassesThroughResults(t *testing.T) {
	engine := &stubEngine{results: []structure.SearchResultItem{
		{Title: "Compute", URL: "https://docs.oracle.com/en-us/iaas/Content/Compute/home.htm", Description: "컴퓨트 개요"},
	}}
	svc := newTestService(engine)

	results, err := svc.SearchDocumentation(request.SearchDocumentation{SearchPhrase: "compute", Limit: 1})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Compute", results[0].Title)
}

func TestSearchDocumentation_EngineError(t *testing.T) {
	engine := &stubEngine{err: fmt.Errorf("연결 실패")}
	svc := newTestService(engine)

	_, err := svc.SearchDocumentation(request.SearchDocumentation{SearchPhrase: "compute"})
	assert.Error(t, err)
}
