package tiptapify

import "testing"

func TestCountText(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"你好", 2},
		{"e\u0301", 1},
		{"\U0001F44D\U0001F3FD", 1},
		{"\U0001F1FA\U0001F1F8", 1},
		{"hi \U0001F468\u200D\U0001F469\u200D\U0001F467", 4},
	}
	for _, tt := range tests {
		if got := CountText(tt.in); got != tt.want {
			t.Errorf("CountText(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"你好", 2},
		{"📌", 2},
		{"A📌B", 4},
	}
	for _, tt := range tests {
		if got := UTF16Len(tt.in); got != tt.want {
			t.Errorf("UTF16Len(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
