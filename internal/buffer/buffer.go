package buffer

// TextBuffer accumulates the annotated text rendered from a document tree.
type TextBuffer struct {
	parts []string
	size  int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		parts: make([]string, 0),
	}
}

// Write appends text to the buffer. Empty strings are ignored.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	tb.parts = append(tb.parts, text)
	tb.size += len(text)
}

// Newline appends a single line break.
func (tb *TextBuffer) Newline() {
	tb.Write("\n")
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	if len(tb.parts) == 0 {
		return ""
	}
	result := make([]byte, 0, tb.size)
	for _, p := range tb.parts {
		result = append(result, p...)
	}
	return string(result)
}
