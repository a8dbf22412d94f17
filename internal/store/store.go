// Package store persists the card list to the site's _data/cards.yml,
// round-tripping the file through yaml.Node so that comments, key order,
// quote styles, and the literal content blocks are preserved and the
// saved file stays hand-editable and diff-friendly.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cardctl/cardctl/internal/cards"
)

// ErrConfigNotFound is returned by Load when the card file is missing.
var ErrConfigNotFound = errors.New("card file not found")

// ParseError reports a malformed card file.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Store reads and writes the card file at a fixed path. Every front-end
// operation loads fresh and rewrites the whole file; nothing is cached
// across operations, but the store remembers the bytes it last loaded
// so an unmodified save can restore them verbatim.
type Store struct {
	Path string

	raw      []byte
	baseline string
}

// New returns a store for the card file at path.
func New(path string) *Store {
	return &Store{Path: path}
}

// Load parses the card file into a List.
func (s *Store) Load() (*cards.List, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, s.Path)
		}
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: s.Path, Err: err}
	}

	list, err := cards.FromDocument(&doc)
	if err != nil {
		return nil, &ParseError{Path: s.Path, Err: err}
	}

	// Remember the original bytes and what the untouched document
	// encodes to, so Save can tell an unmodified list apart from an
	// edited one.
	if baseline, err := encodeDocument(&doc); err == nil {
		s.raw = data
		s.baseline = baseline
	}

	return list, nil
}

// Save serializes the list back to the card file. When the list is
// unchanged since Load, the originally loaded bytes are written back
// verbatim, so a plain load/save cycle is byte-identical even where
// the emitter would normalize spacing. An edited list is re-emitted
// in the site convention.
func (s *Store) Save(list *cards.List) error {
	out, err := encodeDocument(list.Document())
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.Path, err)
	}

	if s.raw != nil && out == s.baseline {
		return os.WriteFile(s.Path, s.raw, 0o644)
	}
	return os.WriteFile(s.Path, []byte(out), 0o644)
}

// encodeDocument renders a document node in the site convention:
// 2-space indent, the top-level sequence at column 0, and empty
// content items in literal block form.
func encodeDocument(doc *yaml.Node) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return restoreEmptyBlocks(dedent(buf.String())), nil
}

var emptyBlockPattern = regexp.MustCompile(`(?m)^(\s*)- ""$`)

// restoreEmptyBlocks rewrites empty content items back to the literal
// block form the file convention requires. The emitter falls back to a
// quoted empty string when a literal scalar has no content.
func restoreEmptyBlocks(text string) string {
	return emptyBlockPattern.ReplaceAllString(text, "$1- |")
}

// dedent strips the longest common leading whitespace from every
// non-blank line. Literal block bodies are indented deeper than their
// keys, so removing a common margin shifts the whole document without
// changing relative layout.
func dedent(text string) string {
	lines := strings.Split(text, "\n")

	margin := ""
	first := true
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := line[:len(line)-len(trimmed)]
		if first {
			margin = indent
			first = false
			continue
		}
		margin = commonPrefix(margin, indent)
		if margin == "" {
			return text
		}
	}
	if margin == "" {
		return text
	}

	for i, line := range lines {
		if strings.TrimLeft(line, " \t") == "" {
			continue
		}
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	max := len(a)
	if len(b) < max {
		max = len(b)
	}
	for i := 0; i < max; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:max]
}
