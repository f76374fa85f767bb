package converter

import (
	"github.com/riverfjs/tiptapify-go/internal/buffer"
	"github.com/riverfjs/tiptapify-go/internal/types"
)

// DocToText 将文档树还原为带 @mention 的纯文本
//
// doc 和 paragraph 在子节点之后各追加一个换行，因此结果通常带有尾部换行，
// 由调用方负责 trim。未知类型的节点输出空串。
func DocToText(node *types.Node) string {
	buf := buffer.New()
	writeNode(buf, node)
	return buf.String()
}

func writeNode(buf *buffer.TextBuffer, node *types.Node) {
	if node == nil {
		return
	}
	switch node.Type {
	case types.NodeDoc, types.NodeParagraph:
		for _, child := range node.Content {
			writeNode(buf, child)
		}
		buf.Newline()
	case types.NodeHardBreak:
		buf.Newline()
	case types.NodeText:
		buf.Write(node.Text)
	case types.NodeMention:
		buf.Write("@" + node.Attr(types.AttrID))
	}
}
