package tiptapify

// LinkSet is an insertion-ordered set of link hrefs.
type LinkSet struct {
	order []string
	index map[string]struct{}
}

// NewLinkSet builds a set from links, keeping the first occurrence of each.
func NewLinkSet(links []string) LinkSet {
	s := LinkSet{index: make(map[string]struct{}, len(links))}
	for _, l := range links {
		if _, ok := s.index[l]; ok {
			continue
		}
		s.index[l] = struct{}{}
		s.order = append(s.order, l)
	}
	return s
}

// SuggestedLinks 返回文档中的链接集合，供调用方在每次编辑后比较
func SuggestedLinks(doc *Node) LinkSet {
	return NewLinkSet(ExtractLinks(doc))
}

// Has reports whether href is in the set.
func (s LinkSet) Has(href string) bool {
	_, ok := s.index[href]
	return ok
}

// Len returns the number of links.
func (s LinkSet) Len() int {
	return len(s.order)
}

// Slice returns the links in insertion order.
func (s LinkSet) Slice() []string {
	return append([]string(nil), s.order...)
}

// Equal reports whether both sets hold the same links, ignoring order.
func (s LinkSet) Equal(other LinkSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, l := range s.order {
		if !other.Has(l) {
			return false
		}
	}
	return true
}

// Diff returns the links present only in other (added) and only in s (removed).
func (s LinkSet) Diff(other LinkSet) (added, removed []string) {
	for _, l := range other.order {
		if !s.Has(l) {
			added = append(added, l)
		}
	}
	for _, l := range s.order {
		if !other.Has(l) {
			removed = append(removed, l)
		}
	}
	return added, removed
}
