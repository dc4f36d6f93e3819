package converter

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	constants "github.com/ocidocs-dev/ocidocs-go/pkg/types"
	"github.com/ocidocs-dev/ocidocs-go/pkg/utils"
	"golang.org/x/net/html"
)

var blankLinesRe = regexp.MustCompile(`\n{3,}`)
var spacesRe = regexp.MustCompile(`[ \t]+`)

// ToMarkdown은 HTML 문서를 마크다운 텍스트로 변환합니다.
// 스크립트/스타일/내비게이션 요소는 제거되고 제목, 링크, 목록,
// 코드 블록, 표 구조가 유지됩니다.
func ToMarkdown(htmlContent string) (string, error) {
	start := time.Now()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("HTML 파싱 실패: %v", err)
	}

	// 본문 변환에 불필요한 요소 제거
	for _, selector := range constants.STRIP_SELECTORS {
		doc.Find(selector).Remove()
	}

	// body가 없는 조각 문서도 처리
	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var sb strings.Builder
	for _, node := range root.Nodes {
		renderChildren(&sb, node)
	}

	markdown := normalize(sb.String())
	utils.RecordConvertTime(time.Since(start).Seconds())

	return markdown, nil
}

// renderChildren은 노드의 자식들을 순서대로 렌더링합니다
func renderChildren(sb *strings.Builder, node *html.Node) {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		renderNode(sb, child)
	}
}

// renderNode는 단일 노드를 마크다운으로 렌더링합니다
func renderNode(sb *strings.Builder, node *html.Node) {
	switch node.Type {
	case html.TextNode:
		sb.WriteString(collapseSpace(node.Data))
		return
	case html.ElementNode:
		// 아래에서 처리
	default:
		return
	}

	switch node.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(node.Data[1] - '0')
		sb.WriteString("\n\n")
		sb.WriteString(strings.Repeat("#", level))
		sb.WriteString(" ")
		sb.WriteString(strings.TrimSpace(inlineText(node)))
		sb.WriteString("\n\n")

	case "p", "section", "article", "main", "figure", "figcaption", "blockquote", "dl", "dt", "dd":
		sb.WriteString("\n\n")
		renderChildren(sb, node)
		sb.WriteString("\n\n")

	case "div":
		// div는 블록 경계만 만들고 내용은 그대로 내려감
		sb.WriteString("\n")
		renderChildren(sb, node)
		sb.WriteString("\n")

	case "br":
		sb.WriteString("\n")

	case "hr":
		sb.WriteString("\n\n---\n\n")

	case "strong", "b":
		text := strings.TrimSpace(inlineText(node))
		if text != "" {
			sb.WriteString("**" + text + "**")
		}

	case "em", "i":
		text := strings.TrimSpace(inlineText(node))
		if text != "" {
			sb.WriteString("*" + text + "*")
		}

	case "a":
		renderAnchor(sb, node)

	case "img":
		alt := attrValue(node, "alt")
		src := attrValue(node, "src")
		if src != "" {
			sb.WriteString(fmt.Sprintf("![%s](%s)", alt, src))
		}

	case "pre":
		sb.WriteString("\n\n```\n")
		sb.WriteString(strings.TrimRight(rawText(node), "\n"))
		sb.WriteString("\n```\n\n")

	case "code":
		// pre 내부 코드는 pre에서 처리되므로 여기는 인라인 코드만 해당
		text := rawText(node)
		if strings.Contains(text, "\n") {
			sb.WriteString("\n\n```\n" + strings.TrimRight(text, "\n") + "\n```\n\n")
		} else if strings.TrimSpace(text) != "" {
			sb.WriteString("`" + strings.TrimSpace(text) + "`")
		}

	case "ul":
		sb.WriteString("\n\n")
		renderList(sb, node, false, 0)
		sb.WriteString("\n")

	case "ol":
		sb.WriteString("\n\n")
		renderList(sb, node, true, 0)
		sb.WriteString("\n")

	case "table":
		sb.WriteString("\n\n")
		renderTable(sb, node)
		sb.WriteString("\n")

	case "head", "title", "meta", "link", "base":
		// 문서 메타데이터는 본문에 포함하지 않음

	default:
		renderChildren(sb, node)
	}
}

// renderAnchor는 a 요소를 마크다운 링크로 렌더링합니다
func renderAnchor(sb *strings.Builder, node *html.Node) {
	text := strings.TrimSpace(inlineText(node))
	href := attrValue(node, "href")

	// 본문 없는 앵커나 페이지 내 점프 링크는 텍스트만 유지
	if text == "" {
		return
	}
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
		sb.WriteString(text)
		return
	}

	sb.WriteString(fmt.Sprintf("[%s](%s)", text, href))
}

// renderList는 ul/ol 요소를 마크다운 목록으로 렌더링합니다
func renderList(sb *strings.Builder, node *html.Node, ordered bool, depth int) {
	index := 1
	indent := strings.Repeat("  ", depth)

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode || child.Data != "li" {
			continue
		}

		marker := "- "
		if ordered {
			marker = fmt.Sprintf("%d. ", index)
			index++
		}

		sb.WriteString(indent + marker + strings.TrimSpace(listItemText(child)) + "\n")

		// 중첩 목록 처리
		for nested := child.FirstChild; nested != nil; nested = nested.NextSibling {
			if nested.Type == html.ElementNode && (nested.Data == "ul" || nested.Data == "ol") {
				renderList(sb, nested, nested.Data == "ol", depth+1)
			}
		}
	}
}

// listItemText는 li 요소에서 중첩 목록을 제외한 인라인 내용을 렌더링합니다
func listItemText(node *html.Node) string {
	var sb strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && (child.Data == "ul" || child.Data == "ol") {
			continue
		}
		renderNode(&sb, child)
	}
	return collapseSpace(sb.String())
}

// renderTable은 table 요소를 행 단위 마크다운 표로 렌더링합니다
func renderTable(sb *strings.Builder, node *html.Node) {
	headerDone := false

	var walkRows func(n *html.Node)
	walkRows = func(n *html.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode {
				continue
			}

			switch child.Data {
			case "tr":
				cells := []string{}
				isHeader := false
				for cell := child.FirstChild; cell != nil; cell = cell.NextSibling {
					if cell.Type != html.ElementNode {
						continue
					}
					if cell.Data == "th" {
						isHeader = true
					}
					if cell.Data == "th" || cell.Data == "td" {
						cells = append(cells, strings.TrimSpace(inlineText(cell)))
					}
				}
				if len(cells) == 0 {
					continue
				}

				sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")

				// 첫 헤더 행 뒤에 구분선 추가
				if isHeader && !headerDone {
					separators := make([]string, len(cells))
					for i := range separators {
						separators[i] = "---"
					}
					sb.WriteString("| " + strings.Join(separators, " | ") + " |\n")
					headerDone = true
				}

			case "thead", "tbody", "tfoot":
				walkRows(child)
			}
		}
	}

	walkRows(node)
}

// attrValue는 노드의 속성 값을 반환합니다 (없으면 빈 문자열)
func attrValue(node *html.Node, key string) string {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// inlineText는 노드의 자식을 인라인 마크다운으로 렌더링한 문자열을 반환합니다
func inlineText(node *html.Node) string {
	var sb strings.Builder
	renderChildren(&sb, node)
	return collapseSpace(sb.String())
}

// rawText는 공백을 보존한 순수 텍스트를 반환합니다 (코드 블록용)
func rawText(node *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return sb.String()
}

// collapseSpace는 연속 공백을 하나로 줄입니다 (줄바꿈은 유지)
func collapseSpace(s string) string {
	return spacesRe.ReplaceAllString(strings.ReplaceAll(s, " ", " "), " ")
}

// normalize는 변환 결과의 공백과 빈 줄을 정리합니다
func normalize(markdown string) string {
	lines := strings.Split(markdown, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	result := strings.Join(lines, "\n")
	result = blankLinesRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}
