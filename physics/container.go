package physics

import (
	"fmt"
)

// Container is an ordered tree node of heterogeneous hit-test targets,
// mirroring a display-list container. Hit testing walks children in
// reverse index order, so a callback may remove the child currently being
// visited without corrupting the traversal.
type Container struct {
	children []Target
}

// NewContainer returns an empty container.
func NewContainer() *Container { return &Container{} }

// AddChild appends a child target.
func (c *Container) AddChild(t Target) { c.children = append(c.children, t) }

// RemoveChild removes the first occurrence of t and reports whether it was
// present.
func (c *Container) RemoveChild(t Target) bool {
	for i, child := range c.children {
		if child == t {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of children.
func (c *Container) Len() int { return len(c.children) }

// ChildAt returns the child at index i. An out-of-range index is a
// programming error and panics.
func (c *Container) ChildAt(i int) Target {
	if i < 0 || i >= len(c.children) {
		panic(fmt.Sprintf("physics: container index %d out of range [0,%d)", i, len(c.children)))
	}
	return c.children[i]
}
