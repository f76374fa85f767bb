package tiptapify

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/riverfjs/tiptapify-go/internal/util"
)

// ContentType represents the type of pasted content.
type ContentType int

const (
	// ContentTypeText represents pasted text.
	ContentTypeText ContentType = iota
	// ContentTypePhoto represents a pasted image.
	ContentTypePhoto
)

// String returns the string representation of ContentType.
func (ct ContentType) String() string {
	switch ct {
	case ContentTypeText:
		return "text"
	case ContentTypePhoto:
		return "photo"
	default:
		return "unknown"
	}
}

// 剪贴板条目种类
const (
	ClipboardKindString = "string"
	ClipboardKindFile   = "file"
)

// ClipboardItem 表示一个剪贴板条目
//
// Kind 为 "string" 或 "file"，Type 为 MIME 类型；Data 为文件内容或字符串内容。
type ClipboardItem struct {
	Kind string
	Type string
	Data []byte
}

// ContentTrace tracks the source and metadata of content.
type ContentTrace struct {
	SourceType string
	Extra      map[string]interface{}
}

// Content represents a classified piece of pasted content.
type Content interface {
	GetContentType() ContentType
	GetContentTrace() ContentTrace
}

// Text represents pasted text.
type Text struct {
	Text         string
	ContentTrace ContentTrace
}

// GetContentType returns ContentTypeText.
func (t *Text) GetContentType() ContentType {
	return ContentTypeText
}

// GetContentTrace returns the content trace.
func (t *Text) GetContentTrace() ContentTrace {
	return t.ContentTrace
}

// Photo represents a pasted image.
//
// URI is a data URI for pasted files, or the original address for pasted image links.
// Width, Height and Format are zero for image links and for files whose header
// could not be decoded.
type Photo struct {
	URI          string
	MimeType     string
	Format       string
	Width        int
	Height       int
	ContentTrace ContentTrace
}

// GetContentType returns ContentTypePhoto.
func (p *Photo) GetContentType() ContentType {
	return ContentTypePhoto
}

// GetContentTrace returns the content trace.
func (p *Photo) GetContentTrace() ContentTrace {
	return p.ContentTrace
}

// ClassifyPaste 将剪贴板条目分类为文本或图片
//
// 文件条目生成 data URI 形式的 Photo，能解码图片头部时补充格式和尺寸；
// text/plain 条目如果是图片链接则生成 Photo，否则作为文本。其他条目忽略。
func ClassifyPaste(items []ClipboardItem) []Content {
	result := make([]Content, 0, len(items))
	for _, item := range items {
		switch {
		case item.Kind == ClipboardKindFile:
			if photo := photoFromFile(item); photo != nil {
				result = append(result, photo)
			}
		case item.Type == "text/plain":
			s := string(item.Data)
			if mime, ok := util.ImageMimeType(s); ok {
				result = append(result, &Photo{
					URI:      strings.TrimSpace(s),
					MimeType: mime,
					ContentTrace: ContentTrace{
						SourceType: "image_uri",
					},
				})
				continue
			}
			if s != "" {
				result = append(result, &Text{
					Text:         s,
					ContentTrace: ContentTrace{SourceType: "text"},
				})
			}
		}
	}
	return result
}

func photoFromFile(item ClipboardItem) *Photo {
	if len(item.Data) == 0 {
		return nil
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(item.Data))
	if err != nil {
		// HEIC、SVG 等无法解码的文件原样转发，尺寸未知
		Logger.Debug("pasted file is not a decodable image", "type", item.Type, "size", len(item.Data), "error", err)
		mime := item.Type
		if mime == "" {
			mime = "application/octet-stream"
		}
		return &Photo{
			URI:      util.DataURI(mime, item.Data),
			MimeType: mime,
			ContentTrace: ContentTrace{
				SourceType: "file",
				Extra: map[string]interface{}{
					"size":    len(item.Data),
					"decoded": false,
				},
			},
		}
	}
	mime := item.Type
	if !strings.HasPrefix(mime, "image/") {
		mime = "image/" + format
	}
	return &Photo{
		URI:      util.DataURI(mime, item.Data),
		MimeType: mime,
		Format:   format,
		Width:    cfg.Width,
		Height:   cfg.Height,
		ContentTrace: ContentTrace{
			SourceType: "file",
			Extra: map[string]interface{}{
				"size":    len(item.Data),
				"decoded": true,
			},
		},
	}
}
