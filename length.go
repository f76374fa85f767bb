package tiptapify

import (
	"github.com/rivo/uniseg"

	"github.com/riverfjs/tiptapify-go/internal/util"
)

// CountText 计算文本的用户可见长度（grapheme cluster 数量）
//
// 帖子长度限制按用户看到的字符计数，一个 emoji 序列算一个字符。
func CountText(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// The editing surface measures selection positions in UTF-16 code units.
func UTF16Len(text string) int {
	return util.UTF16Len(text)
}
