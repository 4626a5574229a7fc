package answerhub

// Author identifies the user who created a node.
type Author struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Node is the universal item shape returned by the platform. Every content
// record (question, answer, comment, article) carries the same fields; the
// Type field names the endpoint family that produced it. IDs are unique
// within a type's namespace, not globally.
type Node struct {
	ID               int    `json:"id"`
	Type             string `json:"type"`
	CreationDate     int64  `json:"creationDate"` // epoch milliseconds
	Title            string `json:"title"`
	Body             string `json:"body"`
	BodyAsHTML       string `json:"bodyAsHTML"`
	Author           Author `json:"author"`
	ActiveRevisionID int    `json:"activeRevisionId"`
	ParentID         int    `json:"parentId"`
	OriginalParentID int    `json:"originalParentId"`
	Slug             string `json:"slug"`
}

// Question, Answer, Comment, and Article are structural specializations of
// Node with no added fields. They exist so call sites can express intent
// type-safely: a function taking an Answer cannot be handed a Comment.
type (
	Question Node
	Answer   Node
	Comment  Node
	Article  Node
)

// NodeList is a single page of nodes of one kind, as returned by a list
// endpoint. Order reflects the requested sort.
type NodeList[T any] struct {
	List []T `json:"list"`
}
