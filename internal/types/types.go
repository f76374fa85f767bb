package types

import "fmt"

// 节点类型，与编辑器 schema 中的名字一致
const (
	NodeDoc       = "doc"
	NodeParagraph = "paragraph"
	NodeText      = "text"
	NodeMention   = "mention"
	NodeHardBreak = "hardBreak"

	MarkLink = "link"

	AttrID   = "id"
	AttrHref = "href"
)

// Mark 表示附加在 text 节点上的标记（如链接）
type Mark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Attr returns the string value of a mark attribute, or "" when absent.
func (m Mark) Attr(key string) string {
	return attrString(m.Attrs, key)
}

// Node 表示编辑器文档树中的一个节点
type Node struct {
	Type    string         `json:"type,omitempty"`
	Content []*Node        `json:"content,omitempty"`
	Text    string         `json:"text,omitempty"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
}

// IsEmpty reports whether n is the "no content yet" document: no type, no content.
func (n *Node) IsEmpty() bool {
	return n == nil || (n.Type == "" && len(n.Content) == 0)
}

// Attr returns the string value of a node attribute, or "" when absent.
func (n *Node) Attr(key string) string {
	if n == nil {
		return ""
	}
	return attrString(n.Attrs, key)
}

// LinkMark returns the first link mark of n.
func (n *Node) LinkMark() (Mark, bool) {
	if n == nil {
		return Mark{}, false
	}
	for _, m := range n.Marks {
		if m.Type == MarkLink {
			return m, true
		}
	}
	return Mark{}, false
}

// attrString 读取属性并转为字符串。JSON 解码后的非字符串值按 fmt 格式输出，
// nil、false 和空串视为缺失
func attrString(attrs map[string]any, key string) string {
	v, ok := attrs[key]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if !val {
			return ""
		}
	}
	return fmt.Sprint(v)
}

// Config 转换与编辑器配置
type Config struct {
	// Autolink marks bare URLs in text nodes with a link mark.
	Autolink bool `yaml:"autolink"`
	// LinkProtocols are the URL schemes the autolinker accepts.
	LinkProtocols []string `yaml:"link_protocols"`
	// MaxGraphemes limits post length on submit; 0 disables the check.
	MaxGraphemes int `yaml:"max_graphemes"`
}

// DefaultLinkProtocols 与编辑器 Link 扩展的 protocols 配置一致
var DefaultLinkProtocols = []string{"http", "https"}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Autolink:      false,
		LinkProtocols: append([]string(nil), DefaultLinkProtocols...),
		MaxGraphemes:  300,
	}
}
