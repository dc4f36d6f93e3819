package converter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMarkdown_Headings(t *testing.T) {
	html := `<html><body><h1>시작하기</h1><p>본문 내용</p><h2>설치</h2></body></html>`

	md, err := ToMarkdown(html)
	require.NoError(t, err)

	assert.Contains(t, md, "# 시작하기")
	assert.Contains(t, md, "## 설치")
	assert.Contains(t, md, "본문 내용")
}

func TestToMarkdown_RemovesScriptsAndStyles(t *testing.T) {
	html := `<html><head><style>body { color: red; }</style></head>
	<body><script>alert("x");</script><nav>메뉴</nav><p>유지되는 본문</p></body></html>`

	md, err := ToMarkdown(html)
	require.NoError(t, err)

	assert.Contains(t, md, "유지되는 본문")
	assert.NotContains(t, md, "alert")
	assert.NotContains(t, md, "color: red")
	assert.NotContains(t, md, "메뉴")
}

func TestToMarkdown_Links(t *testing.T) {
	html := `<body><p>자세한 내용은 <a href="https://docs.oracle.com/iaas/Content/home.htm">문서 홈</a> 참고</p></body>`

	md, err := ToMarkdown(html)
	require.NoError(t, err)

	assert.Contains(t, md, "[문서 홈](https://docs.oracle.com/iaas/Content/home.htm)")
}

func TestToMarkdown_AnchorLinksKeepTextOnly(t *testing.T) {
	html := `<body><p><a href="#section-2">다음 절</a>로 이동</p></body>`

	md, err := ToMarkdown(html)
	require.NoError(t, err)

	assert.Contains(t, md, "다음 절")
	assert.NotContains(t, md, "#section-2")
}

func TestToMarkdown_Lists(t *testing.T) {
	html := `<body><ul><li>첫 번째</li><li>두 번째<ul><li>중첩 항목</li></ul></li></ul>
	<ol><li>하나</li><li>둘</li></ol></body>`

	md, err := ToMarkdown(html)
	require.NoError(t, err)

	assert.Contains(t, md, "- 첫 번째")
	assert.Contains(t, md, "- 두 번째")
	assert.Contains(t, md, "  - 중첩 항목")
	assert.Contains(t, md, "1. 하나")
	assert.Contains(t, md, "2. 둘")
}

func TestToMarkdown_CodeBlocks(t *testing.T) {
	html := `<body><p>실행 예시: <code>oci os bucket list</code></p>
	<pre><code>func main() {
    fmt.Println("hello")
}</code></pre></body>`

	md, err := ToMarkdown(html)
	require.NoError(t, err)

	assert.Contains(t, md, "`oci os bucket list`")
	assert.Contains(t, md, "```")
	assert.Contains(t, md, `fmt.Println("hello")`)
	// 코드 블록 내부 들여쓰기 유지
	assert.Contains(t, md, "    fmt.Println")
}

func TestToMarkdown_Tables(t *testing.T) {
	html := `<body><table>
	<thead><tr><th>이름</th><th>설명</th></tr></thead>
	<tbody><tr><td>limit</td><td>최대 결과 수</td></tr></tbody>
	</table></body>`

	md, err := ToMarkdown(html)
	require.NoError(t, err)

	assert.Contains(t, md, "| 이름 | 설명 |")
	assert.Contains(t, md, "| --- | --- |")
	assert.Contains(t, md, "| limit | 최대 결과 수 |")
}

func TestToMarkdown_Emphasis(t *testing.T) {
	html := `<body><p><strong>중요</strong>하고 <em>강조</em>된 내용</p></body>`

	md, err := ToMarkdown(html)
	require.NoError(t, err)

	assert.Contains(t, md, "**중요**")
	assert.Contains(t, md, "*강조*")
}

func TestToMarkdown_NormalizesBlankLines(t *testing.T) {
	html := `<body><div><div><p>단락 1</p></div></div><div><p>단락 2</p></div></body>`

	md, err := ToMarkdown(html)
	require.NoError(t, err)

	assert.NotContains(t, md, "\n\n\n")
	assert.False(t, strings.HasPrefix(md, "\n"))
	assert.False(t, strings.HasSuffix(md, "\n"))
}

func TestToMarkdown_FragmentWithoutBody(t *testing.T) {
	md, err := ToMarkdown(`<p>조각 문서</p>`)
	require.NoError(t, err)

	assert.Equal(t, "조각 문서", md)
}
