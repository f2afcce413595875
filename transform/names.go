package transform

// names deduplicates the short strings that repeat throughout a stream:
// anchor and alias names, tag handles and suffixes, directive names. Large
// documents with many aliases then share one string per name.
type names struct {
	pool map[string]string
}

func newNames() *names {
	return &names{pool: make(map[string]string, 64)}
}

// intern returns the canonical copy of s.
func (n *names) intern(s string) string {
	if canonical, ok := n.pool[s]; ok {
		return canonical
	}
	n.pool[s] = s
	return s
}
