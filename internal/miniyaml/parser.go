package miniyaml

import (
	"bufio"
	"strings"
)

// indentUnit is the single indentation character MiniYAML uses: one tab
// per nesting level.
const indentUnit = '\t'

// commentMarker starts a whole-line comment once indentation is stripped.
const commentMarker = "#"

// Parse converts one MiniYAML document into a node tree. The returned
// root carries no value; its children are the document's top-level
// definitions in file order.
//
// Blank lines and comment lines are skipped and do not affect depth
// tracking. A line with no colon is a key with an empty value. Malformed
// indentation (a depth jump of more than one level) is accepted: a line's
// parent is simply the nearest preceding line with strictly smaller
// depth. Parse never fails.
func Parse(text string) *Node {
	root := NewNode("")

	type frame struct {
		depth int
		node  *Node
	}
	stack := []frame{{depth: -1, node: root}}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		stripped := strings.TrimLeft(line, string(indentUnit))
		if strings.TrimSpace(stripped) == "" || strings.HasPrefix(stripped, commentMarker) {
			continue
		}
		depth := len(line) - len(stripped)

		for stack[len(stack)-1].depth >= depth {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node

		key, value, found := strings.Cut(stripped, ":")
		key = strings.TrimSpace(key)
		if found {
			value = strings.TrimSpace(value)
		} else {
			value = ""
		}

		child := NewNode(value)
		parent.Set(key, child)
		stack = append(stack, frame{depth: depth, node: child})
	}

	return root
}

// ParseAll parses several documents in order into a single definition
// set. A top-level name that reappears in a later document replaces the
// earlier definition wholesale; there is no cross-document merge.
func ParseAll(docs ...string) *Node {
	root := NewNode("")
	for _, doc := range docs {
		parsed := Parse(doc)
		for _, name := range parsed.Keys() {
			def, _ := parsed.Get(name)
			root.Set(name, def)
		}
	}
	return root
}
