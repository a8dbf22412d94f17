// Package cards implements the in-memory card list and its editing
// operations. Cards are kept as yaml.Node mappings rather than plain
// structs so that comments, key order, and scalar styles in the backing
// file survive a load/save cycle untouched.
package cards

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrIndexOutOfRange is returned when an operation addresses a card
// position outside [0, len).
var ErrIndexOutOfRange = errors.New("card index out of range")

// List is an ordered sequence of cards backed by a YAML document node.
// The sequence order is the display order on the site.
type List struct {
	doc *yaml.Node
	seq *yaml.Node
}

// Card is a single homepage entry: a YAML mapping with optional logo,
// title, and display flags, and a content block holding raw HTML.
type Card struct {
	node *yaml.Node
}

// CardData is the plain representation of a card used by the JSON front
// ends. Optional fields follow the file convention: absent means empty
// or false.
type CardData struct {
	Logo      string   `json:"logo,omitempty"`
	Title     string   `json:"title,omitempty"`
	Content   []string `json:"content"`
	Center    bool     `json:"center,omitempty"`
	Partition bool     `json:"partition,omitempty"`
}

// NewList returns an empty card list with a fresh document node.
func NewList() *List {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{seq}}
	return &List{doc: doc, seq: seq}
}

// FromDocument wraps a parsed YAML document whose root is a sequence of
// card mappings.
func FromDocument(doc *yaml.Node) (*List, error) {
	if doc == nil || doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("card file: empty document")
	}
	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("card file: top-level node is not a sequence")
	}
	return &List{doc: doc, seq: seq}, nil
}

// Document returns the underlying document node for serialization.
func (l *List) Document() *yaml.Node {
	return l.doc
}

// Len returns the number of cards.
func (l *List) Len() int {
	return len(l.seq.Content)
}

// At returns the card at index i.
func (l *List) At(i int) (Card, error) {
	if err := l.check(i); err != nil {
		return Card{}, err
	}
	return Card{node: l.seq.Content[i]}, nil
}

// Cards returns all cards in display order.
func (l *List) Cards() []Card {
	out := make([]Card, 0, len(l.seq.Content))
	for _, n := range l.seq.Content {
		out = append(out, Card{node: n})
	}
	return out
}

// Data converts the whole list to its plain representation.
func (l *List) Data() []CardData {
	out := make([]CardData, 0, l.Len())
	for _, c := range l.Cards() {
		out = append(out, c.Data())
	}
	return out
}

func (l *List) check(i int) error {
	if i < 0 || i >= len(l.seq.Content) {
		return fmt.Errorf("%w: %d (valid range 0-%d)", ErrIndexOutOfRange, i, len(l.seq.Content)-1)
	}
	return nil
}

// Logo returns the card's logo path, or "" when absent.
func (c Card) Logo() string {
	return c.stringField("logo")
}

// Title returns the card's title, or "" when absent.
func (c Card) Title() string {
	return c.stringField("title")
}

// Center reports whether the card is centered.
func (c Card) Center() bool {
	return c.boolField("center")
}

// Partition reports whether the card is followed by a partition line.
func (c Card) Partition() bool {
	return c.boolField("partition")
}

// Content returns the card's content blocks. The file convention stores
// a single literal block, but any sequence of scalars is tolerated.
func (c Card) Content() []string {
	_, val := findKey(c.node, "content")
	if val == nil {
		return nil
	}
	switch val.Kind {
	case yaml.SequenceNode:
		blocks := make([]string, 0, len(val.Content))
		for _, item := range val.Content {
			blocks = append(blocks, item.Value)
		}
		return blocks
	case yaml.ScalarNode:
		return []string{val.Value}
	default:
		return nil
	}
}

// Data converts the card to its plain representation.
func (c Card) Data() CardData {
	content := c.Content()
	if content == nil {
		content = []string{}
	}
	return CardData{
		Logo:      c.Logo(),
		Title:     c.Title(),
		Content:   content,
		Center:    c.Center(),
		Partition: c.Partition(),
	}
}

func (c Card) stringField(key string) string {
	_, val := findKey(c.node, key)
	if val == nil || val.Kind != yaml.ScalarNode {
		return ""
	}
	return val.Value
}

func (c Card) boolField(key string) bool {
	_, val := findKey(c.node, key)
	if val == nil || val.Kind != yaml.ScalarNode {
		return false
	}
	return val.Value == "true"
}

// findKey locates key in a mapping node and returns the index of the key
// node within Content and the value node, or (-1, nil) when absent.
func findKey(mapping *yaml.Node, key string) (int, *yaml.Node) {
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return -1, nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return i, mapping.Content[i+1]
		}
	}
	return -1, nil
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func boolNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"}
}

// contentNode builds the one-element sequence of a literal block scalar
// that the file convention requires, even for empty content.
func contentNode(content string) *yaml.Node {
	block := &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: content,
		Style: yaml.LiteralStyle,
	}
	return &yaml.Node{
		Kind:    yaml.SequenceNode,
		Tag:     "!!seq",
		Content: []*yaml.Node{block},
	}
}
