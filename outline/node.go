package outline

// NoPage marks an outline node without a target page.
const NoPage = -1

// Node is one entry of a document's raw outline tree, as reported by the
// PDF engine.
type Node struct {
	// Title is the bookmark label
	Title string

	// Page is the 0-indexed destination page, or NoPage
	Page int

	// Children are the nested bookmarks in document order
	Children []Node
}

// HasDestination reports whether the node names a target page
func (n Node) HasDestination() bool {
	return n.Page >= 0
}
