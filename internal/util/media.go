package util

import (
	"encoding/base64"
	"net/url"
	"path"
	"strings"
)

// imageExts 可识别为图片链接的扩展名
var imageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ImageMimeType guesses the MIME type of an image URI from its extension.
// Query string and fragment are ignored.
func ImageMimeType(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " \n\t") {
		return "", false
	}
	p := s
	if u, err := url.Parse(s); err == nil && u.Path != "" {
		p = u.Path
	}
	mime, ok := imageExts[strings.ToLower(path.Ext(p))]
	return mime, ok
}

// DataURI formats data as a base64 data URI.
func DataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
