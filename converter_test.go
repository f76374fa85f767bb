package tiptapify

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func text(s string, marks ...Mark) *Node {
	n := &Node{Type: NodeText, Text: s}
	if len(marks) > 0 {
		n.Marks = marks
	}
	return n
}

func mention(id string) *Node {
	return &Node{Type: NodeMention, Attrs: map[string]any{"id": id}}
}

func link(href string) Mark {
	return Mark{Type: MarkLink, Attrs: map[string]any{"href": href}}
}

func paragraph(children ...*Node) *Node {
	return &Node{Type: NodeParagraph, Content: children}
}

func doc(children ...*Node) *Node {
	return &Node{Type: NodeDoc, Content: children}
}

// TestTextToDoc_Empty 空串返回空文档而不是空的 doc 节点
func TestTextToDoc_Empty(t *testing.T) {
	got := TextToDoc("")
	if !got.IsEmpty() {
		t.Fatalf("TextToDoc(\"\") = %+v, want empty document", got)
	}
	if got.Type != "" {
		t.Errorf("empty document type = %q, want none", got.Type)
	}
	out, err := json.Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "{}" {
		t.Errorf("empty document JSON = %s, want {}", out)
	}
}

func TestTextToDoc(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *Node
	}{
		{
			name: "mention then text",
			in:   "@alice hello",
			want: doc(paragraph(mention("alice"), text(" hello"))),
		},
		{
			name: "blank line dropped",
			in:   "line1\n\nline2",
			want: doc(paragraph(text("line1")), paragraph(text("line2"))),
		},
		{
			name: "whitespace only line dropped",
			in:   "a\n \t \nb\n",
			want: doc(paragraph(text("a")), paragraph(text("b"))),
		},
		{
			name: "bare at sign",
			in:   "@",
			want: doc(paragraph(mention(""))),
		},
		{
			name: "at sign before space",
			in:   "hi @ there",
			want: doc(paragraph(text("hi "), mention(""), text(" there"))),
		},
		{
			name: "adjacent mentions fold",
			in:   "@alice@bob",
			want: doc(paragraph(mention("alice@bob"))),
		},
		{
			name: "mention inside word",
			in:   "mail me@example.com now",
			want: doc(paragraph(text("mail me"), mention("example.com"), text(" now"))),
		},
		{
			name: "unicode whitespace ends mention",
			in:   "@alice\u3000hi",
			want: doc(paragraph(mention("alice"), text("\u3000hi"))),
		},
		{
			name: "non-ascii identifier",
			in:   "你好 @小明",
			want: doc(paragraph(text("你好 "), mention("小明"))),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TextToDoc(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("TextToDoc(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

// TestTextToDoc_OnlyBlankLines 只有空白行时得到没有段落的 doc
func TestTextToDoc_OnlyBlankLines(t *testing.T) {
	got := TextToDoc(" \n\t\n")
	if got.Type != NodeDoc {
		t.Fatalf("type = %q, want %q", got.Type, NodeDoc)
	}
	if len(got.Content) != 0 {
		t.Errorf("content = %d paragraphs, want 0", len(got.Content))
	}
}

func TestTextToDoc_Autolink(t *testing.T) {
	got := TextToDoc("see https://example.com now", WithAutolink(true))
	want := doc(paragraph(
		text("see "),
		text("https://example.com", link("https://example.com")),
		text(" now"),
	))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("autolink mismatch (-want +got):\n%s", diff)
	}

	// 文本中的 Markdown 语法不影响链接识别
	got = TextToDoc("`https://a.io` then https://a.io", WithAutolink(true))
	want = doc(paragraph(
		text("`https://a.io` then "),
		text("https://a.io", link("https://a.io")),
	))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("autolink with backticks mismatch (-want +got):\n%s", diff)
	}

	got = TextToDoc("[x](https://b.io) and https://c.io", WithAutolink(true))
	if diff := cmp.Diff([]string{"https://b.io", "https://c.io"}, ExtractLinks(got)); diff != "" {
		t.Errorf("autolink with brackets mismatch (-want +got):\n%s", diff)
	}

	plain := TextToDoc("see https://example.com now")
	if links := ExtractLinks(plain); len(links) != 0 {
		t.Errorf("links without autolink = %v, want none", links)
	}
}

func TestDocToText(t *testing.T) {
	tests := []struct {
		name string
		in   *Node
		want string
	}{
		{"nil", nil, ""},
		{"empty document", &Node{}, ""},
		{"paragraphs", doc(paragraph(text("a")), paragraph(text("b"))), "a\nb\n\n"},
		{"mention", doc(paragraph(text("hi "), mention("bob"))), "hi @bob\n\n"},
		{"mention without id", doc(paragraph(&Node{Type: NodeMention})), "@\n\n"},
		{"hard break", doc(paragraph(text("a"), &Node{Type: NodeHardBreak}, text("b"))), "a\nb\n\n"},
		{"unknown type", doc(paragraph(&Node{Type: "image"}, text("x"))), "x\n\n"},
		{"text without payload", doc(paragraph(&Node{Type: NodeText})), "\n\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DocToText(tt.in); got != tt.want {
				t.Errorf("DocToText() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestRoundTrip 每行恢复并追加一个换行，最后是 doc 的换行
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"hello @bob",
		"hello @bob\nsecond line",
		"@a @b @c\nplain\n@x",
		"emoji 🎉 and @名字",
	}
	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			first := TextToDoc(s)
			out := DocToText(first)

			var want strings.Builder
			for _, line := range strings.Split(s, "\n") {
				want.WriteString(line + "\n")
			}
			want.WriteString("\n")
			if out != want.String() {
				t.Errorf("DocToText(TextToDoc(%q)) = %q, want %q", s, out, want.String())
			}
			if got := strings.TrimSpace(out); got != s {
				t.Errorf("trimmed round trip = %q, want %q", got, s)
			}

			second := TextToDoc(out)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("tree changed after round trip (-first +second):\n%s", diff)
			}
			third := TextToDoc(DocToText(second))
			if diff := cmp.Diff(second, third); diff != "" {
				t.Errorf("round trip not idempotent (-second +third):\n%s", diff)
			}
		})
	}
}

func TestExtractLinks_Nested(t *testing.T) {
	d := doc(paragraph(text("x", link("https://example.com"))))
	got := ExtractLinks(d)
	if diff := cmp.Diff([]string{"https://example.com"}, got); diff != "" {
		t.Errorf("ExtractLinks mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractLinks_Order(t *testing.T) {
	d := doc(
		paragraph(
			text("a", link("https://a.example")),
			text(" and "),
			text("b", link("https://b.example")),
		),
		paragraph(text("again", link("https://a.example"))),
	)
	want := []string{"https://a.example", "https://b.example", "https://a.example"}
	if diff := cmp.Diff(want, ExtractLinks(d)); diff != "" {
		t.Errorf("ExtractLinks mismatch (-want +got):\n%s", diff)
	}
}

// TestExtractLinks_ChildrenBeforeSelf 子节点的链接先于节点自身的链接
func TestExtractLinks_ChildrenBeforeSelf(t *testing.T) {
	p := paragraph(text("a", link("https://a.example")), text("b", link("https://b.example")))
	p.Marks = []Mark{link("https://self.example")}
	want := []string{"https://a.example", "https://b.example", "https://self.example"}
	if diff := cmp.Diff(want, ExtractLinks(doc(p))); diff != "" {
		t.Errorf("ExtractLinks mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractLinks_FirstLinkMarkOnly(t *testing.T) {
	n := text("x", Mark{Type: "bold"}, link("https://first.example"), link("https://second.example"))
	got := ExtractLinks(doc(paragraph(n)))
	if diff := cmp.Diff([]string{"https://first.example"}, got); diff != "" {
		t.Errorf("ExtractLinks mismatch (-want +got):\n%s", diff)
	}
}

func TestNode_JSON(t *testing.T) {
	raw := `{"type":"doc","content":[{"type":"paragraph","content":[` +
		`{"type":"mention","attrs":{"id":"alice"}},` +
		`{"type":"text","text":" see "},` +
		`{"type":"text","text":"site","marks":[{"type":"link","attrs":{"href":"https://example.com","target":"_blank"}}]}` +
		`]}]}`
	var d Node
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got := strings.TrimSpace(DocToText(&d)); got != "@alice see site" {
		t.Errorf("DocToText = %q", got)
	}
	if diff := cmp.Diff([]string{"https://example.com"}, ExtractLinks(&d)); diff != "" {
		t.Errorf("ExtractLinks mismatch (-want +got):\n%s", diff)
	}
	if err := Validate(&d); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
