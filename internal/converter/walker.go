package converter

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	gutil "github.com/yuin/goldmark/util"

	"github.com/riverfjs/tiptapify-go/internal/types"
	"github.com/riverfjs/tiptapify-go/internal/util"
)

// LinkScope 用于跟踪未闭合的链接
type LinkScope struct {
	Href string
}

// DocWalker 遍历 goldmark AST 并生成编辑器文档树
type DocWalker struct {
	source []byte
	config *types.Config

	blocks    []*types.Node
	current   *types.Node
	linkStack []LinkScope

	// 同一标记下连续的文本先合并，再统一切分 mention
	pending     strings.Builder
	pendingHref string

	skipped int
}

// NewDocWalker 创建新的 DocWalker
func NewDocWalker(source []byte, config *types.Config) *DocWalker {
	if config == nil {
		config = types.DefaultConfig()
	}
	return &DocWalker{
		source:    source,
		config:    config,
		blocks:    make([]*types.Node, 0),
		linkStack: make([]LinkScope, 0),
	}
}

// Walk 遍历 AST 节点
func (w *DocWalker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	// --- Blocks that carry inline text ---
	case *ast.Paragraph, *ast.TextBlock, *ast.Heading, *east.TableCell:
		if entering {
			w.openParagraph()
		} else {
			w.closeParagraph()
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.onCodeBlock(n)
		}
		return ast.WalkSkipChildren, nil

	case *ast.HTMLBlock, *ast.ThematicBreak:
		if entering {
			w.skipped++
		}
		return ast.WalkSkipChildren, nil

	// --- Inline elements ---
	case *ast.Text:
		if entering {
			w.writeText(inlineText(n.Segment.Value(w.source)))
			if n.SoftLineBreak() || n.HardLineBreak() {
				w.onBreak()
			}
		}

	case *ast.String:
		if entering {
			w.writeText(string(n.Value))
		}

	case *ast.CodeSpan:
		if entering {
			w.writeText(extractCodeSpanText(n, w.source))
			return ast.WalkSkipChildren, nil
		}

	case *ast.Link:
		if entering {
			w.linkStack = append(w.linkStack, LinkScope{Href: string(n.Destination)})
		} else if len(w.linkStack) > 0 {
			w.linkStack = w.linkStack[:len(w.linkStack)-1]
		}

	case *ast.AutoLink:
		if entering {
			w.onAutoLink(n)
		}
		return ast.WalkSkipChildren, nil

	case *ast.RawHTML, *east.TaskCheckBox:
		if entering {
			w.skipped++
		}
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

// Result 返回转换结果；没有任何段落时返回空文档
func (w *DocWalker) Result() *types.Node {
	w.closeParagraph()
	if len(w.blocks) == 0 {
		return &types.Node{}
	}
	return &types.Node{
		Type:    types.NodeDoc,
		Content: w.blocks,
	}
}

// Skipped returns how many nodes had no representation in the tree.
func (w *DocWalker) Skipped() int {
	return w.skipped
}

// --- Paragraphs ---

func (w *DocWalker) openParagraph() {
	if w.current != nil {
		w.closeParagraph()
	}
	w.current = NewParagraph()
}

func (w *DocWalker) closeParagraph() {
	if w.current == nil {
		return
	}
	w.flush()
	p := w.current
	w.current = nil
	if len(p.Content) == 0 || util.IsBlank(DocToText(p)) {
		return
	}
	w.blocks = append(w.blocks, p)
}

func (w *DocWalker) onCodeBlock(n ast.Node) {
	w.closeParagraph()
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code := strings.TrimRight(string(line.Value(w.source)), "\r\n")
		if util.IsBlank(code) {
			continue
		}
		w.blocks = append(w.blocks, NewParagraph(NewText(code)))
	}
}

func (w *DocWalker) onBreak() {
	if w.current == nil {
		return
	}
	w.flush()
	w.current.Content = append(w.current.Content, NewHardBreak())
}

// --- Text handling ---

// onAutoLink 只为允许的协议生成链接，其余按普通文本处理
func (w *DocWalker) onAutoLink(n *ast.AutoLink) {
	label := string(n.Label(w.source))
	href := string(n.URL(w.source))
	if n.AutoLinkType == ast.AutoLinkURL && hasProtocol(href, w.protocols()) {
		w.writeLinked(label, href)
		return
	}
	w.writeText(label)
}

func (w *DocWalker) protocols() []string {
	if len(w.config.LinkProtocols) == 0 {
		return types.DefaultLinkProtocols
	}
	return w.config.LinkProtocols
}

func (w *DocWalker) writeText(s string) {
	href := ""
	if len(w.linkStack) > 0 {
		href = w.linkStack[len(w.linkStack)-1].Href
	}
	w.writeLinked(s, href)
}

func (w *DocWalker) writeLinked(s string, href string) {
	if s == "" {
		return
	}
	if w.current == nil {
		w.openParagraph()
	}
	if href != w.pendingHref {
		w.flush()
		w.pendingHref = href
	}
	w.pending.WriteString(s)
}

func (w *DocWalker) flush() {
	if w.pending.Len() == 0 || w.current == nil {
		w.pending.Reset()
		return
	}
	s := w.pending.String()
	w.pending.Reset()

	var nodes []*types.Node
	if w.pendingHref != "" {
		nodes = []*types.Node{NewText(s, NewLinkMark(w.pendingHref))}
	} else {
		nodes = ScanLine(s)
	}
	w.current.Content = append(w.current.Content, nodes...)
}

// --- Utilities ---

// inlineText 处理反斜杠转义和 HTML 实体引用
func inlineText(value []byte) string {
	value = gutil.UnescapePunctuations(value)
	value = gutil.ResolveNumericReferences(value)
	value = gutil.ResolveEntityNames(value)
	return string(value)
}

func extractCodeSpanText(n *ast.CodeSpan, source []byte) string {
	var buf strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if textNode, ok := c.(*ast.Text); ok {
			_, _ = buf.Write(textNode.Segment.Value(source))
		}
	}
	return buf.String()
}
