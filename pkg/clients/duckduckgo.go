package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ocidocs-dev/ocidocs-go/pkg/configs"
	_interface "github.com/ocidocs-dev/ocidocs-go/pkg/interfaces"
	constants "github.com/ocidocs-dev/ocidocs-go/pkg/types"
	structure "github.com/ocidocs-dev/ocidocs-go/pkg/types/structures"
	"github.com/ocidocs-dev/ocidocs-go/pkg/utils"
)

// DDGClient는 DuckDuckGo HTML 검색 요청을 처리하는 클라이언트입니다.
type DDGClient struct {
	_interface.Service
}

// NewDDGClient는 새로운 DuckDuckGo 검색 클라이언트를 생성합니다.
func NewDDGClient(config *configs.EnvConfig) *DDGClient {
	return &DDGClient{
		Service: _interface.Service{
			Client: &http.Client{
				Timeout: constants.SEARCH_TIMEOUT,
			},
			Config: config,
		},
	}
}

// SearchDocs는 검색어를 문서 도메인으로 한정하여 검색하고 결과를 반환합니다.
func (c *DDGClient) SearchDocs(searchPhrase string, limit int) ([]structure.SearchResultItem, error) {
	// 도메인 한정 검색어 구성
	query := fmt.Sprintf("%s site:%s", searchPhrase, c.Config.Search.DocsDomain)

	form := url.Values{}
	form.Add("q", query)
	form.Add("kl", "us-en")

	// HTTP 요청 생성
	req, err := http.NewRequest("POST", c.Config.Search.EngineURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %v", err)
	}

	// 검색 엔진이 봇 요청을 차단하지 않도록 브라우저 헤더 설정
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.Config.Search.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	// 요청 실행
	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		utils.RecordApiCall("duckduckgo", 0, time.Since(start).Seconds())
		return nil, fmt.Errorf("요청 실행 실패: %v", err)
	}
	defer resp.Body.Close()

	utils.RecordApiCall("duckduckgo", resp.StatusCode, time.Since(start).Seconds())

	// 응답 상태 확인
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("검색 엔진 오류 (%d)", resp.StatusCode)
	}

	// 결과 페이지 파싱
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("결과 페이지 파싱 실패: %v", err)
	}

	results := c.parseResults(doc, limit)
	return results, nil
}

// parseResults는 검색 결과 페이지에서 결과 항목을 추출합니다.
func (c *DDGClient) parseResults(doc *goquery.Document, limit int) []structure.SearchResultItem {
	results := []structure.SearchResultItem{}

	doc.Find(constants.RESULT_SELECTORS.Result).EachWithBreak(func(i int, s *goquery.Selection) bool {
		anchor := s.Find(constants.RESULT_SELECTORS.Title).First()
		title := strings.TrimSpace(anchor.Text())
		href, exists := anchor.Attr("href")
		if !exists || title == "" {
			return true // 광고 블록 등은 건너뜀
		}

		// 리다이렉트 링크 디코딩
		resultURL := DecodeResultURL(href)
		if resultURL == "" {
			return true
		}

		// 문서 도메인 외 결과 제외
		parsed, err := url.Parse(resultURL)
		if err != nil || !strings.HasSuffix(parsed.Hostname(), c.Config.Search.DocsDomain) {
			return true
		}

		description := utils.RemoveHTMLTags(s.Find(constants.RESULT_SELECTORS.Snippet).Text())

		results = append(results, structure.SearchResultItem{
			Title:       title,
			URL:         resultURL,
			Description: description,
		})

		return len(results) < limit
	})

	return results
}

// DecodeResultURL은 검색 결과의 리다이렉트 링크에서 실제 URL을 복원합니다.
// DuckDuckGo HTML 버전은 "//duckduckgo.com/l/?uddg=<인코딩된 URL>" 형식을 사용합니다.
func DecodeResultURL(href string) string {
	if href == "" {
		return ""
	}

	// 스킴 없는 리다이렉트 링크 보정
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	// 리다이렉트 링크가 아니면 그대로 반환
	// (uddg 값은 Query()에서 이미 디코딩됨)
	uddg := parsed.Query().Get("uddg")
	if uddg == "" {
		if parsed.Scheme == "http" || parsed.Scheme == "https" {
			return href
		}
		return ""
	}

	return uddg
}
