package tiptapify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/riverfjs/tiptapify-go/internal/converter"
	"github.com/riverfjs/tiptapify-go/internal/util"
)

var (
	// ErrNoPublisher is returned by Submit when no publish handler is set.
	ErrNoPublisher = errors.New("no publish handler")
	// ErrEmptyPost is returned by Submit when the composer holds no text.
	ErrEmptyPost = errors.New("post is empty")
	// ErrTooLong is returned by Submit when the text exceeds Config.MaxGraphemes.
	ErrTooLong = errors.New("post exceeds maximum length")
)

// PublishFunc publishes the composed text.
type PublishFunc func(ctx context.Context, text string) error

// LinksFunc receives the new suggested link set after it changed.
type LinksFunc func(links LinkSet)

// PhotoFunc receives a pasted photo.
type PhotoFunc func(photo *Photo)

// KeyEvent 键盘事件，Code 使用 KeyboardEvent.code 的取值（如 "Enter"）
type KeyEvent struct {
	Code string
	Meta bool
	Ctrl bool
}

// Composer 编辑器的命令接口
//
// 编辑器每次内容变化时调用 Update；外部控件通过 Submit、InsertAtCursor、
// Paste 直接操作，不需要全局事件。光标始终位于文档末尾。
// Composer 可以并发使用，回调在锁外执行。
type Composer struct {
	mu    sync.Mutex
	doc   *Node
	text  string
	links LinkSet

	config *Config
	logger hclog.Logger

	onPublish PublishFunc
	onLinks   LinksFunc
	onPhoto   PhotoFunc
}

// ComposerOption configures a Composer.
type ComposerOption func(*Composer)

// WithPublishHandler sets the handler invoked by Submit.
func WithPublishHandler(fn PublishFunc) ComposerOption {
	return func(c *Composer) {
		c.onPublish = fn
	}
}

// WithSuggestedLinksHandler sets the handler invoked when the suggested links change.
func WithSuggestedLinksHandler(fn LinksFunc) ComposerOption {
	return func(c *Composer) {
		c.onLinks = fn
	}
}

// WithPhotoHandler sets the handler invoked for pasted photos.
func WithPhotoHandler(fn PhotoFunc) ComposerOption {
	return func(c *Composer) {
		c.onPhoto = fn
	}
}

// WithComposerConfig sets the Composer configuration.
func WithComposerConfig(config *Config) ComposerOption {
	return func(c *Composer) {
		if config != nil {
			c.config = config
		}
	}
}

// WithComposerLogger sets the Composer logger.
func WithComposerLogger(logger hclog.Logger) ComposerOption {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewComposer 创建 Composer，初始文档由 initialText 转换得到
func NewComposer(initialText string, opts ...ComposerOption) *Composer {
	c := &Composer{
		config: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = Logger.Named("composer")
	}

	c.doc = converter.TextToDoc(initialText, c.config)
	c.text = strings.TrimSpace(initialText)
	c.links = SuggestedLinks(c.doc)
	return c
}

// Document returns the current document tree.
func (c *Composer) Document() *Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc
}

// Text returns the current annotated text, trimmed.
func (c *Composer) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// SuggestedLinks returns the links found in the current document.
func (c *Composer) SuggestedLinks() LinkSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.links
}

// CursorEnd returns the caret position at the end of the text in UTF-16 code units.
func (c *Composer) CursorEnd() int {
	return UTF16Len(c.Text())
}

// Length returns the user-visible length of the text.
func (c *Composer) Length() int {
	return CountText(c.Text())
}

// Update 处理编辑器内容变化：重新计算文本与链接，链接集合变化时通知调用方
func (c *Composer) Update(doc *Node) {
	c.mu.Lock()
	links, changed := c.updateLocked(doc)
	handler := c.onLinks
	c.mu.Unlock()

	c.notifyLinks(handler, links, changed)
}

// InsertAtCursor 在光标（文档末尾）处插入文本，如 emoji
func (c *Composer) InsertAtCursor(value string) {
	if value == "" {
		return
	}
	c.mu.Lock()
	links, changed := c.updateLocked(appendText(c.doc, value, c.config))
	handler := c.onLinks
	c.mu.Unlock()

	c.notifyLinks(handler, links, changed)
}

// Paste 处理粘贴：图片交给 photo 回调，文本插入到光标处
func (c *Composer) Paste(items []ClipboardItem) []Content {
	contents := ClassifyPaste(items)

	c.mu.Lock()
	doc := c.doc
	photos := make([]*Photo, 0)
	for _, content := range contents {
		switch v := content.(type) {
		case *Photo:
			photos = append(photos, v)
		case *Text:
			doc = appendText(doc, v.Text, c.config)
		}
	}
	links, changed := c.updateLocked(doc)
	linksHandler, photoHandler := c.onLinks, c.onPhoto
	c.mu.Unlock()

	c.notifyLinks(linksHandler, links, changed)
	for _, p := range photos {
		if photoHandler == nil {
			c.logger.Debug("pasted photo dropped, no photo handler", "mime", p.MimeType)
			continue
		}
		photoHandler(p)
	}
	return contents
}

// HandleKeyDown 处理快捷键：Cmd/Ctrl+Enter 提交
//
// 返回值表示事件是否被处理，以及提交的错误。
func (c *Composer) HandleKeyDown(ctx context.Context, ev KeyEvent) (bool, error) {
	if (ev.Meta || ev.Ctrl) && ev.Code == "Enter" {
		return true, c.Submit(ctx)
	}
	return false, nil
}

// Submit 发布当前文本
func (c *Composer) Submit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	text := c.text
	publish := c.onPublish
	maxLen := c.config.MaxGraphemes
	c.mu.Unlock()

	if publish == nil {
		return ErrNoPublisher
	}
	if text == "" {
		return ErrEmptyPost
	}
	if maxLen > 0 {
		if n := CountText(text); n > maxLen {
			return fmt.Errorf("%w: %d > %d", ErrTooLong, n, maxLen)
		}
	}

	if err := publish(ctx, text); err != nil {
		c.logger.Warn("publish failed", "error", err)
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

// updateLocked must be called with c.mu held.
func (c *Composer) updateLocked(doc *Node) (LinkSet, bool) {
	links := SuggestedLinks(doc)
	changed := !links.Equal(c.links)
	c.doc = doc
	c.text = strings.TrimSpace(DocToText(doc))
	c.links = links
	return links, changed
}

func (c *Composer) notifyLinks(handler LinksFunc, links LinkSet, changed bool) {
	if !changed {
		return
	}
	c.logger.Debug("suggested links changed", "count", links.Len())
	if handler != nil {
		handler(links)
	}
}

// appendText 返回在 doc 末尾追加 value 后的新文档，不修改 doc
//
// value 的第一行接在最后一个段落之后，其余各行生成新段落，空白行跳过。
func appendText(doc *Node, value string, config *Config) *Node {
	out := &Node{Type: NodeDoc}
	if doc != nil && !doc.IsEmpty() {
		out.Content = append(out.Content, doc.Content...)
	}

	scan := func(line string) []*Node {
		nodes := converter.ScanLine(line)
		if config != nil && config.Autolink {
			nodes = converter.Autolink(nodes, config.LinkProtocols)
		}
		return nodes
	}

	lines := strings.Split(value, "\n")
	first, rest := lines[0], lines[1:]
	if first != "" {
		last := len(out.Content) - 1
		if last >= 0 && out.Content[last] != nil && out.Content[last].Type == NodeParagraph {
			p := *out.Content[last]
			p.Content = append(append([]*Node(nil), p.Content...), scan(first)...)
			out.Content[last] = &p
		} else {
			out.Content = append(out.Content, converter.NewParagraph(scan(first)...))
		}
	}
	for _, line := range rest {
		if util.IsBlank(line) {
			continue
		}
		out.Content = append(out.Content, converter.NewParagraph(scan(line)...))
	}

	if len(out.Content) == 0 {
		return &Node{}
	}
	return out
}
