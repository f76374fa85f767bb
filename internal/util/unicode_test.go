package util

import "testing"

func TestIsSpace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\r', '\u00A0', '\u2003', '\u3000', '\uFEFF'} {
		if !IsSpace(r) {
			t.Errorf("IsSpace(%U) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', '@', '_', '\u200B', '\u0085'} {
		if IsSpace(r) {
			t.Errorf("IsSpace(%U) = true, want false", r)
		}
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"", true},
		{"  \t", true},
		{"\u3000\uFEFF", true},
		{" a ", false},
		{"@", false},
		{"\u0085", false},
	}
	for _, tt := range tests {
		if got := IsBlank(tt.line); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"你好", 2},
		{"\U0001F389", 2},
		{"a\U0001F468\u200D\U0001F469", 6},
	}
	for _, tt := range tests {
		if got := UTF16Len(tt.text); got != tt.want {
			t.Errorf("UTF16Len(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
