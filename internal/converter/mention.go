package converter

import (
	"strings"
	"unicode/utf8"

	"github.com/riverfjs/tiptapify-go/internal/types"
	"github.com/riverfjs/tiptapify-go/internal/util"
)

// TextToDoc 将带 @mention 的纯文本转换为编辑器文档树
//
// 空串返回没有 type 和 content 的空文档；空白行被跳过，每个非空白行
// 生成一个 paragraph。
func TextToDoc(text string, config *types.Config) *types.Node {
	if text == "" {
		return &types.Node{}
	}

	lines := strings.Split(text, "\n")
	content := make([]*types.Node, 0, len(lines))
	for _, line := range lines {
		if util.IsBlank(line) {
			continue
		}
		inline := ScanLine(line)
		if config != nil && config.Autolink {
			inline = Autolink(inline, config.LinkProtocols)
		}
		content = append(content, NewParagraph(inline...))
	}

	return &types.Node{
		Type:    types.NodeDoc,
		Content: content,
	}
}

// ScanLine splits a single line into text and mention nodes.
//
// An '@' starts a mention that runs until the next whitespace rune, so "@a@b"
// is one mention with id "a@b" and a bare '@' is a mention with an empty id.
// Everything else up to the next '@' becomes a text node.
func ScanLine(line string) []*types.Node {
	nodes := make([]*types.Node, 0, 2)
	pos := 0
	for pos < len(line) {
		if line[pos] == '@' {
			end := pos + 1
			for end < len(line) {
				r, size := utf8.DecodeRuneInString(line[end:])
				if util.IsSpace(r) {
					break
				}
				end += size
			}
			nodes = append(nodes, NewMention(line[pos+1:end]))
			pos = end
			continue
		}

		end := strings.IndexByte(line[pos:], '@')
		if end < 0 {
			end = len(line)
		} else {
			end += pos
		}
		if end > pos {
			nodes = append(nodes, NewText(line[pos:end]))
		}
		pos = end
	}
	return nodes
}

// NewParagraph 创建 paragraph 节点
func NewParagraph(children ...*types.Node) *types.Node {
	return &types.Node{
		Type:    types.NodeParagraph,
		Content: children,
	}
}

// NewText 创建 text 节点
func NewText(text string, marks ...types.Mark) *types.Node {
	n := &types.Node{
		Type: types.NodeText,
		Text: text,
	}
	if len(marks) > 0 {
		n.Marks = marks
	}
	return n
}

// NewMention 创建 mention 节点
func NewMention(id string) *types.Node {
	return &types.Node{
		Type:  types.NodeMention,
		Attrs: map[string]any{types.AttrID: id},
	}
}

// NewHardBreak 创建 hardBreak 节点
func NewHardBreak() *types.Node {
	return &types.Node{Type: types.NodeHardBreak}
}

// NewLinkMark 创建 link 标记
func NewLinkMark(href string) types.Mark {
	return types.Mark{
		Type:  types.MarkLink,
		Attrs: map[string]any{types.AttrHref: href},
	}
}
