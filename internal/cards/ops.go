package cards

import "gopkg.in/yaml.v3"

// Fields carries the optional updates for a card. A nil pointer leaves
// the field untouched; a provided empty string or false removes the key
// (absence is the file's encoding of empty/false).
type Fields struct {
	Logo      *string
	Title     *string
	Content   *string
	Center    *bool
	Partition *bool
}

// Add appends a new card built from the given values and returns it.
// Empty strings and false flags are omitted entirely; content is always
// present as a single literal block, even when empty.
func (l *List) Add(logo, title, content string, center, partition bool) Card {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if logo != "" {
		appendPair(node, "logo", scalarNode(logo))
	}
	if center {
		appendPair(node, "center", boolNode())
	}
	if partition {
		appendPair(node, "partition", boolNode())
	}
	if title != "" {
		appendPair(node, "title", scalarNode(title))
	}
	appendPair(node, "content", contentNode(content))

	l.seq.Content = append(l.seq.Content, node)
	return Card{node: node}
}

// Update applies the provided fields to the card at index i. Content,
// when provided, fully replaces the existing block.
func (l *List) Update(i int, f Fields) error {
	if err := l.check(i); err != nil {
		return err
	}
	card := l.seq.Content[i]

	if f.Logo != nil {
		setString(card, "logo", *f.Logo)
	}
	if f.Title != nil {
		setString(card, "title", *f.Title)
	}
	if f.Content != nil {
		setValue(card, "content", contentNode(*f.Content))
	}
	if f.Center != nil {
		setBool(card, "center", *f.Center)
	}
	if f.Partition != nil {
		setBool(card, "partition", *f.Partition)
	}
	return nil
}

// Remove deletes and returns the card at index i.
func (l *List) Remove(i int) (Card, error) {
	if err := l.check(i); err != nil {
		return Card{}, err
	}
	node := l.seq.Content[i]
	l.seq.Content = append(l.seq.Content[:i], l.seq.Content[i+1:]...)
	return Card{node: node}, nil
}

// Reorder moves the card at from to position to. Both indices are
// validated against the original length; the move itself is a pop
// followed by an insert, so to addresses the list with the source card
// already removed. Moving a card onto its own index is a no-op.
func (l *List) Reorder(from, to int) error {
	if err := l.check(from); err != nil {
		return err
	}
	if err := l.check(to); err != nil {
		return err
	}

	node := l.seq.Content[from]
	rest := append(l.seq.Content[:from], l.seq.Content[from+1:]...)
	if to >= len(rest) {
		l.seq.Content = append(rest, node)
		return nil
	}
	rest = append(rest, nil)
	copy(rest[to+1:], rest[to:])
	rest[to] = node
	l.seq.Content = rest
	return nil
}

func appendPair(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, scalarNode(key), value)
}

// setValue replaces the value for key, appending the pair when absent.
func setValue(mapping *yaml.Node, key string, value *yaml.Node) {
	if idx, _ := findKey(mapping, key); idx >= 0 {
		mapping.Content[idx+1] = value
		return
	}
	appendPair(mapping, key, value)
}

// setString sets key to value, or removes the key when value is empty.
func setString(mapping *yaml.Node, key, value string) {
	if value == "" {
		deleteKey(mapping, key)
		return
	}
	setValue(mapping, key, scalarNode(value))
}

// setBool sets key to true, or removes the key when value is false.
func setBool(mapping *yaml.Node, key string, value bool) {
	if !value {
		deleteKey(mapping, key)
		return
	}
	setValue(mapping, key, boolNode())
}

func deleteKey(mapping *yaml.Node, key string) {
	idx, _ := findKey(mapping, key)
	if idx < 0 {
		return
	}
	mapping.Content = append(mapping.Content[:idx], mapping.Content[idx+2:]...)
}
