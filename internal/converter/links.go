package converter

import "github.com/riverfjs/tiptapify-go/internal/types"

// ExtractLinks collects the href of every link mark in the tree.
//
// Children are visited first, in order, then the node's own first link mark.
// Duplicates are kept.
func ExtractLinks(node *types.Node) []string {
	if node == nil {
		return nil
	}
	var links []string
	for _, child := range node.Content {
		links = append(links, ExtractLinks(child)...)
	}
	if mark, ok := node.LinkMark(); ok {
		if href := mark.Attr(types.AttrHref); href != "" {
			links = append(links, href)
		}
	}
	return links
}
