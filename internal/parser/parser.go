package parser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/tiptapify-go/internal/converter"
	"github.com/riverfjs/tiptapify-go/internal/types"
)

// StandardOptions goldmark 扩展配置：GFM 中除 Linkify 以外的部分
//
// Linkify 由 Options 按配置决定是否启用，并限制为配置的协议。
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
		extension.DefinitionList,
		extension.Footnote,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
}

// Options returns the goldmark options for config.
func Options(config *types.Config) []goldmark.Option {
	opts := append([]goldmark.Option(nil), StandardOptions...)
	if config == nil || !config.Autolink {
		return opts
	}
	protocols := config.LinkProtocols
	if len(protocols) == 0 {
		protocols = types.DefaultLinkProtocols
	}
	return append(opts, goldmark.WithExtensions(
		extension.NewLinkify(extension.WithLinkifyAllowedProtocols(converter.LinkifyProtocols(protocols))),
	))
}

// Parse 解析 Markdown 并遍历 AST 生成文档树
//
// 第二个返回值是没有对应节点而被丢弃的 Markdown 元素数量。
func Parse(markdown string, config *types.Config) (*types.Node, int) {
	if config == nil {
		config = types.DefaultConfig()
	}

	source := []byte(markdown)
	node := ParseAST(source, config)

	walker := converter.NewDocWalker(source, config)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return walker.Walk(n, entering)
	})

	return walker.Result(), walker.Skipped()
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(source []byte, config *types.Config) ast.Node {
	md := goldmark.New(Options(config)...)
	return md.Parser().Parse(text.NewReader(source))
}
