package ast

// Parents maps every node of a tree to the node that owns it. Tags, anchors
// and attached comments are owned by the node they are attached to; the
// remaining comments are owned by the Root.
//
// The table lives beside the tree instead of inside it so the tree stays
// acyclic. It is never serialized.
type Parents map[Node]Node

// DefineParents builds the parent table for the tree rooted at root. The root
// itself has no entry.
func DefineParents(root Node) Parents {
	parents := Parents{}
	var visit func(n Node)
	visit = func(n Node) {
		for _, p := range Properties(n) {
			parents[p] = n
		}
		c, ok := n.(Container)
		if !ok {
			return
		}
		for _, child := range c.Children() {
			if isNil(child) {
				continue
			}
			parents[child] = n
			visit(child)
		}
	}
	if !isNil(root) {
		visit(root)
	}
	// Comments no node claimed belong to the stream.
	if r, ok := root.(*Root); ok && r != nil {
		for _, c := range r.Comments {
			if _, ok := parents[c]; !ok {
				parents[c] = r
			}
		}
	}
	return parents
}

// Parent returns the owner of n, or nil for the root and for nodes outside
// the tree.
func (p Parents) Parent(n Node) Node {
	return p[n]
}

// Ancestors returns the owners of n from the closest to the root.
func (p Parents) Ancestors(n Node) []Node {
	var out []Node
	for cur := p[n]; cur != nil; cur = p[cur] {
		out = append(out, cur)
	}
	return out
}
