// Package tiptapify 在编辑器的纯文本表示与文档树之间相互转换
//
// 纯文本中 @ 后的非空白字符串表示 mention，换行分隔段落；文档树是
// ProseMirror/Tiptap 使用的 JSON 结构（doc > paragraph > text | mention | hardBreak），
// text 节点可以带 link 标记。
//
// 核心功能：
//   - TextToDoc(): 纯文本 → 文档树
//   - DocToText(): 文档树 → 纯文本
//   - ExtractLinks(): 按文档顺序提取所有链接
//   - FromMarkdown(): Markdown → 文档树
//   - Composer: 编辑器命令接口（提交、插入、粘贴、链接变化通知）
//
// 示例：
//
//	doc := tiptapify.TextToDoc("@alice hello\nsee you")
//	text := strings.TrimSpace(tiptapify.DocToText(doc))
//
//	c := tiptapify.NewComposer("",
//	    tiptapify.WithPublishHandler(func(ctx context.Context, text string) error {
//	        return post(ctx, text)
//	    }),
//	)
//	c.Update(docFromEditor)
//	err := c.Submit(ctx)
package tiptapify

import (
	"github.com/riverfjs/tiptapify-go/internal/converter"
	"github.com/riverfjs/tiptapify-go/internal/parser"
	"github.com/riverfjs/tiptapify-go/internal/types"
)

// 导出类型别名
type (
	Node = types.Node
	Mark = types.Mark
)

// 节点与标记类型
const (
	NodeDoc       = types.NodeDoc
	NodeParagraph = types.NodeParagraph
	NodeText      = types.NodeText
	NodeMention   = types.NodeMention
	NodeHardBreak = types.NodeHardBreak
	MarkLink      = types.MarkLink
)

// ShapeError 是 Validate 报告的单个错误
type ShapeError = converter.ShapeError

// TextToDoc 将带 @mention 的纯文本转换为文档树
//
// 空串返回空文档（Node.IsEmpty 为 true），空白行不生成段落。
func TextToDoc(text string, opts ...Option) *Node {
	options := applyOptions(opts...)
	return converter.TextToDoc(text, options.Config)
}

// DocToText 将文档树转换回纯文本
//
// 每个 doc/paragraph 之后追加一个换行，调用方通常需要 strings.TrimSpace。
func DocToText(doc *Node) string {
	return converter.DocToText(doc)
}

// ExtractLinks 返回文档树中所有 link 标记的 href，按文档顺序，不去重
func ExtractLinks(doc *Node) []string {
	return converter.ExtractLinks(doc)
}

// FromMarkdown 将 Markdown 转换为文档树
//
// 段落、标题、列表项、引用和表格单元格各生成一个段落，换行生成 hardBreak，
// 链接生成 link 标记。没有内容时返回空文档。
func FromMarkdown(markdown string, opts ...Option) *Node {
	options := applyOptions(opts...)
	doc, skipped := parser.Parse(markdown, options.Config)
	if skipped > 0 {
		Logger.Debug("markdown elements without a document representation were dropped", "count", skipped)
	}
	return doc
}

// Validate 检查文档树结构，返回所有问题（*multierror.Error）或 nil
//
// 转换函数本身从不报错；需要严格检查时调用 Validate。
func Validate(doc *Node) error {
	return converter.Validate(doc)
}
