package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/tidwall/jsonc"
)

// wireNode is the interchange shape produced by the stylesheet parser:
// content is a string for leaves and an array for containers.
type wireNode struct {
	Type    Type            `json:"type"`
	Content json.RawMessage `json:"content"`
	Syntax  Syntax          `json:"syntax,omitempty"`
	Start   *Position       `json:"start,omitempty"`
	End     *Position       `json:"end,omitempty"`
}

// MarshalJSON encodes the node in the parser interchange format.
func (n *Node) MarshalJSON() ([]byte, error) {
	w := wireNode{Type: n.Type, Syntax: n.Syntax}
	if n.Start != (Position{}) {
		start := n.Start
		w.Start = &start
	}
	if n.End != (Position{}) {
		end := n.End
		w.End = &end
	}

	var err error
	if n.IsLeaf() {
		w.Content, err = json.Marshal(n.Content)
	} else {
		w.Content, err = json.Marshal(n.Children)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes a node from the parser interchange format.
func (n *Node) UnmarshalJSON(data []byte) error {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Type == "" {
		return fmt.Errorf("node without type")
	}

	*n = Node{Type: w.Type, Syntax: w.Syntax}
	if w.Start != nil {
		n.Start = *w.Start
	}
	if w.End != nil {
		n.End = *w.End
	}

	content := bytes.TrimSpace(w.Content)
	switch {
	case len(content) == 0 || bytes.Equal(content, []byte("null")):
		return nil
	case content[0] == '[':
		n.Children = []*Node{}
		if err := json.Unmarshal(content, &n.Children); err != nil {
			return fmt.Errorf("decoding %s children: %w", w.Type, err)
		}
		if slices.Contains(n.Children, nil) {
			return fmt.Errorf("decoding %s children: null node", w.Type)
		}
	default:
		if err := json.Unmarshal(content, &n.Content); err != nil {
			return fmt.Errorf("decoding %s content: %w", w.Type, err)
		}
	}
	return nil
}

// Decode reads a tree from r. Comments and trailing commas are tolerated.
// Nodes without a syntax inherit the root's.
func Decode(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading tree: %w", err)
	}

	var root Node
	if err := json.Unmarshal(jsonc.ToJSON(data), &root); err != nil {
		return nil, fmt.Errorf("parsing tree: %w", err)
	}
	if root.Syntax == "" {
		root.Syntax = SyntaxCSS
	}
	if root.Syntax, err = ParseSyntax(string(root.Syntax)); err != nil {
		return nil, fmt.Errorf("parsing tree: %w", err)
	}
	inheritSyntax(&root, root.Syntax)
	return &root, nil
}

func inheritSyntax(n *Node, s Syntax) {
	if n.Syntax == "" {
		n.Syntax = s
	}
	for _, c := range n.Children {
		inheritSyntax(c, n.Syntax)
	}
}

// Encode writes n to w as indented JSON.
func Encode(w io.Writer, n *Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(n)
}
