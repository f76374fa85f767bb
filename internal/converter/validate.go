package converter

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/riverfjs/tiptapify-go/internal/types"
)

// ShapeError describes a single violation of the document tree shape.
type ShapeError struct {
	Path   string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Validate checks the tree against the doc > paragraph > inline shape and
// returns every violation found, or nil.
func Validate(root *types.Node) error {
	if root.IsEmpty() {
		return nil
	}
	var result *multierror.Error
	if root.Type != types.NodeDoc {
		result = multierror.Append(result, &ShapeError{Path: "$", Reason: fmt.Sprintf("root must be %q, got %q", types.NodeDoc, root.Type)})
	}
	validateNode(root, "$", "", &result)
	return result.ErrorOrNil()
}

func validateNode(n *types.Node, path string, parent string, result **multierror.Error) {
	fail := func(format string, args ...any) {
		*result = multierror.Append(*result, &ShapeError{Path: path, Reason: fmt.Sprintf(format, args...)})
	}

	if n == nil {
		fail("nil node")
		return
	}

	switch n.Type {
	case types.NodeDoc:
		if parent != "" {
			fail("%q is only allowed at the root", types.NodeDoc)
		}
	case types.NodeParagraph:
		if parent != "" && parent != types.NodeDoc {
			fail("%q inside %q", n.Type, parent)
		}
	case types.NodeText, types.NodeMention, types.NodeHardBreak:
		if parent != types.NodeParagraph {
			fail("inline node %q inside %q", n.Type, parent)
		}
		if len(n.Content) > 0 {
			fail("leaf node %q has %d children", n.Type, len(n.Content))
		}
		if n.Type == types.NodeText && n.Text == "" {
			fail("empty text node")
		}
	default:
		fail("unknown node type %q", n.Type)
	}

	for _, m := range n.Marks {
		if m.Type == types.MarkLink && m.Attr(types.AttrHref) == "" {
			fail("link mark without href")
		}
	}

	for i, child := range n.Content {
		validateNode(child, path+".content["+strconv.Itoa(i)+"]", n.Type, result)
	}
}
