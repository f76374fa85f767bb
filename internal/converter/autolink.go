package converter

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	gutil "github.com/yuin/goldmark/util"

	"github.com/riverfjs/tiptapify-go/internal/types"
)

// LinkSpan 文本中被识别为 URL 的区间（字节偏移）
type LinkSpan struct {
	Start int
	End   int
	Href  string
}

// newLinkParser 只包含段落和 Linkify 的 goldmark 解析器，
// 文本中的 Markdown 语法（代码、链接、强调）按普通字符处理
func newLinkParser(protocols []string) parser.Parser {
	return parser.NewParser(
		parser.WithBlockParsers(
			gutil.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(
			gutil.Prioritized(extension.NewLinkifyParser(
				extension.WithLinkifyAllowedProtocols(LinkifyProtocols(protocols)),
			), 999),
		),
	)
}

// FindLinks 使用 goldmark 的 Linkify 解析器查找文本中的裸 URL
//
// 只接受 protocols 中的协议；www. 开头的链接得到 http:// 前缀的 href。
// 邮件地址不处理。
func FindLinks(s string, protocols []string) []LinkSpan {
	if len(protocols) == 0 {
		protocols = types.DefaultLinkProtocols
	}
	source := []byte(s)
	doc := newLinkParser(protocols).Parse(text.NewReader(source))

	spans := make([]LinkSpan, 0)
	// cursor 是上一个内联节点在原文中的结束位置
	cursor := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			cursor = node.Segment.Stop
		case *ast.AutoLink:
			label := node.Label(source)
			idx := bytes.Index(source[cursor:], label)
			if len(label) == 0 || idx < 0 {
				return ast.WalkSkipChildren, nil
			}
			start := cursor + idx
			cursor = start + len(label)
			if node.AutoLinkType != ast.AutoLinkURL {
				return ast.WalkSkipChildren, nil
			}
			href := string(node.URL(source))
			if hasProtocol(href, protocols) {
				spans = append(spans, LinkSpan{Start: start, End: cursor, Href: href})
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return spans
}

// LinkifyProtocols converts scheme names into the prefixes goldmark's Linkify matches.
func LinkifyProtocols(protocols []string) [][]byte {
	allowed := make([][]byte, 0, len(protocols))
	for _, p := range protocols {
		allowed = append(allowed, []byte(strings.ToLower(p)+":"))
	}
	return allowed
}

func hasProtocol(href string, protocols []string) bool {
	i := strings.IndexByte(href, ':')
	if i <= 0 {
		return false
	}
	scheme := strings.ToLower(href[:i])
	for _, p := range protocols {
		if strings.EqualFold(scheme, p) {
			return true
		}
	}
	return false
}

// Autolink splits unmarked text nodes so that URLs carry a link mark.
// Nodes that already have marks, and non-text nodes, are passed through.
func Autolink(nodes []*types.Node, protocols []string) []*types.Node {
	out := make([]*types.Node, 0, len(nodes))
	for _, n := range nodes {
		if n == nil || n.Type != types.NodeText || len(n.Marks) > 0 {
			out = append(out, n)
			continue
		}
		spans := FindLinks(n.Text, protocols)
		if len(spans) == 0 {
			out = append(out, n)
			continue
		}
		pos := 0
		for _, sp := range spans {
			if sp.Start > pos {
				out = append(out, NewText(n.Text[pos:sp.Start]))
			}
			out = append(out, NewText(n.Text[sp.Start:sp.End], NewLinkMark(sp.Href)))
			pos = sp.End
		}
		if pos < len(n.Text) {
			out = append(out, NewText(n.Text[pos:]))
		}
	}
	return out
}
