package metadata

import "strings"

// TitleKey is the key substring searched for title candidates.
const TitleKey = "title"

// Search walks the tree depth-first and returns every string collected for
// keys containing key (case-sensitive). Once a matching key has a composite
// value, all non-empty string leaves below it are collected. The returned
// slice is never nil and is not shared between calls.
func Search(node *Node, key string) []string {
	return search(node, key, false, []string{})
}

// Title returns the first title candidate in the tree, or "" when none exists.
func Title(node *Node) string {
	matches := Search(node, TitleKey)
	if len(matches) == 0 {
		return ""
	}
	return matches[0]
}

func search(node *Node, key string, hunt bool, found []string) []string {
	if node == nil {
		return found
	}
	switch node.Kind {
	case Object:
		for _, m := range node.Members {
			if strings.Contains(m.Key, key) {
				if text, ok := scalarText(m.Value); ok {
					found = append(found, text)
					continue
				}
				found = search(m.Value, key, true, found)
				continue
			}
			found = visit(m.Value, key, hunt, found)
		}
	case Array:
		for _, item := range node.Items {
			found = visit(item, key, hunt, found)
		}
	}
	return found
}

// visit applies the hunt rule to a value that did not match by key.
func visit(node *Node, key string, hunt bool, found []string) []string {
	if hunt && node != nil && node.Kind == String {
		if text := strings.TrimSpace(node.Scalar); text != "" {
			return append(found, text)
		}
		return found
	}
	return search(node, key, hunt, found)
}

func scalarText(node *Node) (string, bool) {
	if !node.IsScalar() {
		return "", false
	}
	text := strings.TrimSpace(node.Scalar)
	return text, text != ""
}
