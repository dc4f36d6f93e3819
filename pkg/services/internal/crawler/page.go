package crawler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ocidocs-dev/ocidocs-go/pkg/configs"
	constants "github.com/ocidocs-dev/ocidocs-go/pkg/types"
	"github.com/ocidocs-dev/ocidocs-go/pkg/utils"
)

// PageFetcher는 문서 페이지를 가져오는 크롤러입니다
type PageFetcher struct {
	config *configs.EnvConfig
	client *http.Client
}

// NewPageFetcher는 새 페이지 크롤러를 생성합니다
func NewPageFetcher(config *configs.EnvConfig) *PageFetcher {
	return &PageFetcher{
		config: config,
		client: &http.Client{
			Timeout: constants.FETCH_TIMEOUT,
			// 리다이렉트는 기본 정책(최대 10회)을 따름
		},
	}
}

// FetchPage는 문서 페이지를 가져와 본문과 콘텐츠 타입을 반환합니다.
// 일시적인 네트워크 오류는 재시도합니다.
func (f *PageFetcher) FetchPage(pageURL string) (string, string, error) {
	var lastErr error

	for attempt := 0; attempt < constants.FETCH_MAX_RETRIES; attempt++ {
		if attempt > 0 {
			time.Sleep(constants.FETCH_RETRY_DELAY)
			utils.Debug("crawler", "페이지 요청 재시도 (%d/%d): %s", attempt+1, constants.FETCH_MAX_RETRIES, pageURL)
		}

		body, contentType, err := f.fetchOnce(pageURL)
		if err == nil {
			return body, contentType, nil
		}
		lastErr = err

		// 상태 코드 오류는 재시도해도 같은 결과이므로 중단
		if _, ok := err.(*statusError); ok {
			break
		}
	}

	return "", "", lastErr
}

// fetchOnce는 단일 페이지 요청을 수행합니다
func (f *PageFetcher) fetchOnce(pageURL string) (string, string, error) {
	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("HTTP 요청 생성 실패: %v", err)
	}

	// 사용자 에이전트 설정
	req.Header.Set("User-Agent", f.config.Search.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,*/*")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		utils.RecordApiCall("docs_fetch", 0, time.Since(start).Seconds())
		return "", "", fmt.Errorf("HTTP 요청 실패: %v", err)
	}
	defer resp.Body.Close()

	utils.RecordApiCall("docs_fetch", resp.StatusCode, time.Since(start).Seconds())

	// 응답 상태 코드 확인
	if resp.StatusCode >= 400 {
		return "", "", &statusError{code: resp.StatusCode, url: pageURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("응답 읽기 실패: %v", err)
	}

	return string(body), resp.Header.Get("Content-Type"), nil
}

// statusError는 4xx/5xx 응답을 나타내는 오류입니다
type statusError struct {
	code int
	url  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("HTTP 상태 코드 오류 (%d): %s", e.code, e.url)
}
