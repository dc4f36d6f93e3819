package client

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/ocidocs-dev/ocidocs-go/pkg/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *DDGClient {
	config := &configs.EnvConfig{}
	config.Search.DocsDomain = "docs.oracle.com"
	config.Search.EngineURL = "https://html.duckduckgo.com/html/"
	return NewDDGClient(config)
}

const resultPageFixture = `
<html><body>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fdocs.oracle.com%2Fiaas%2FContent%2Fhome.htm&amp;rut=abc123">OCI Documentation Home</a>
  <a class="result__snippet">Oracle Cloud Infrastructure <b>documentation</b> home page.</a>
</div>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com%2Fother.html&amp;rut=def456">Unrelated Result</a>
  <a class="result__snippet">Not a docs page.</a>
</div>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fdocs.oracle.com%2Fen%2Fcloud%2Fcompute.html&amp;rut=ghi789">Compute Service</a>
  <a class="result__snippet">Compute instances overview.</a>
</div>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fdocs.oracle.com%2Fen%2Fcloud%2Fstorage.html&amp;rut=jkl012">Storage Service</a>
  <a class="result__snippet">Object storage overview.</a>
</div>
</body></html>`

func TestParseResults_FiltersAndDecodes(t *testing.T) {
	c := newTestClient()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resultPageFixture))
	require.NoError(t, err)

	results := c.parseResults(doc, 10)

	// example.com 결과는 제외되어야 함
	require.Len(t, results, 3)

	assert.Equal(t, "OCI Documentation Home", results[0].Title)
	assert.Equal(t, "https://docs.oracle.com/iaas/Content/home.htm", results[0].URL)
	assert.Equal(t, "Oracle Cloud Infrastructure documentation home page.", results[0].Description)

	assert.Equal(t, "https://docs.oracle.com/en/cloud/compute.html", results[1].URL)
	assert.Equal(t, "https://docs.oracle.com/en/cloud/storage.html", results[2].URL)
}

func TestParseResults_RespectsLimit(t *testing.T) {
	c := newTestClient()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resultPageFixture))
	require.NoError(t, err)

	results := c.parseResults(doc, 2)
	assert.Len(t, results, 2)
}

func TestParseResults_EmptyPage(t *testing.T) {
	c := newTestClient()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body><div class="no-results">검색 결과 없음</div></body></html>`))
	require.NoError(t, err)

	results := c.parseResults(doc, 5)
	assert.Empty(t, results)
}

func TestDecodeResultURL(t *testing.T) {
	// 리다이렉트 링크 디코딩
	decoded := DecodeResultURL("//duckduckgo.com/l/?uddg=https%3A%2F%2Fdocs.oracle.com%2Fiaas%2FContent%2Fhome.htm&rut=abc")
	assert.Equal(t, "https://docs.oracle.com/iaas/Content/home.htm", decoded)

	// 직접 링크는 그대로 반환
	assert.Equal(t, "https://docs.oracle.com/page.htm", DecodeResultURL("https://docs.oracle.com/page.htm"))

	// 빈 값과 상대 경로는 무시
	assert.Equal(t, "", DecodeResultURL(""))
	assert.Equal(t, "", DecodeResultURL("/html/?q=next"))
}
