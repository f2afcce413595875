package ast

// Inspect traverses the tree rooted at n in depth-first source order. It
// calls f(n) for every non-nil node; if f returns false the children of
// that node are skipped. Properties (tags, anchors and comments) are not
// visited, use InspectAll for that.
func Inspect(n Node, f func(Node) bool) {
	inspect(n, f, false)
}

// InspectAll is like Inspect but also visits the properties of each node
// before its children.
func InspectAll(n Node, f func(Node) bool) {
	inspect(n, f, true)
}

func inspect(n Node, f func(Node) bool, props bool) {
	if isNil(n) || !f(n) {
		return
	}
	if props {
		for _, p := range Properties(n) {
			f(p)
		}
	}
	if c, ok := n.(Container); ok {
		for _, child := range c.Children() {
			inspect(child, f, props)
		}
	}
}

// isNil reports whether n is nil or holds a nil pointer.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *MappingKey:
		return v == nil
	case *MappingValue:
		return v == nil
	case *DocumentHead:
		return v == nil
	case *DocumentBody:
		return v == nil
	case *Document:
		return v == nil
	case *Root:
		return v == nil
	}
	return false
}
