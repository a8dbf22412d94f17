package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cardctl/cardctl/internal/cards"
)

const fixture = `# Homepage cards. Edit with cardctl or by hand.
- logo: /assets/img/flower.svg
  title: Garden
  content:
    - |
      <p>Hello</p>
- logo: /assets/img/tree.svg
  center: true
  content:
    - |
      <p>Second card</p>
      <p>With two lines</p>
`

// commentedFixture adds the harder formatting cases: a comment block
// separated from the previous card by a blank line, and a card with an
// empty literal content block.
const commentedFixture = `# Homepage cards. Edit with cardctl or by hand.
- logo: /assets/img/flower.svg
  title: Garden
  content:
    - |
      <p>Hello</p>

# partition below this card
- logo: /assets/img/tree.svg
  center: true
  partition: true
  content:
    - |
      <p>Second card</p>
- title: Placeholder
  content:
    - |
`

func writeFixture(t *testing.T, content string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return New(path)
}

func TestLoadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "cards.yml"))

	_, err := s.Load()
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("Load error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	s := writeFixture(t, "- logo: [unclosed\n")

	_, err := s.Load()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Load error = %v, want ParseError", err)
	}
	if parseErr.Path != s.Path {
		t.Errorf("ParseError.Path = %q, want %q", parseErr.Path, s.Path)
	}
}

func TestLoadNonSequenceFile(t *testing.T) {
	s := writeFixture(t, "title: not a sequence\n")

	_, err := s.Load()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Load error = %v, want ParseError", err)
	}
}

func TestRoundTripIsByteIdentical(t *testing.T) {
	cases := map[string]string{
		"plain":     fixture,
		"commented": commentedFixture,
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			s := writeFixture(t, input)

			list, err := s.Load()
			if err != nil {
				t.Fatal(err)
			}
			if err := s.Save(list); err != nil {
				t.Fatal(err)
			}

			got, err := os.ReadFile(s.Path)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != input {
				t.Errorf("round trip changed the file:\n--- original ---\n%s\n--- saved ---\n%s", input, got)
			}
		})
	}
}

func TestLoadedFieldsMatchFixture(t *testing.T) {
	s := writeFixture(t, fixture)

	list, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if list.Len() != 2 {
		t.Fatalf("expected 2 cards, got %d", list.Len())
	}

	first, _ := list.At(0)
	if first.Logo() != "/assets/img/flower.svg" || first.Title() != "Garden" {
		t.Errorf("unexpected first card: logo=%q title=%q", first.Logo(), first.Title())
	}

	second, _ := list.At(1)
	if !second.Center() {
		t.Error("expected second card centered")
	}
	content := second.Content()
	if len(content) != 1 || content[0] != "<p>Second card</p>\n<p>With two lines</p>\n" {
		t.Errorf("unexpected second card content: %q", content)
	}
}

func TestSaveNewCardFollowsConvention(t *testing.T) {
	s := writeFixture(t, fixture)

	list, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	list.Add("/assets/img/new.svg", "New", "<p>x</p>\n", true, false)
	if err := s.Save(list); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatal(err)
	}

	want := fixture + `- logo: /assets/img/new.svg
  center: true
  title: New
  content:
    - |
      <p>x</p>
`
	if string(got) != want {
		t.Errorf("appended card broke the file convention:\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}

func TestSaveEmptyContentStaysLiteral(t *testing.T) {
	s := writeFixture(t, fixture)

	list, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	list.Add("", "Draft", "", false, false)
	if err := s.Save(list); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatal(err)
	}

	want := fixture + "- title: Draft\n  content:\n    - |\n"
	if string(got) != want {
		t.Errorf("empty content lost its literal block:\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
	if strings.Contains(string(got), `""`) {
		t.Errorf("empty content serialized as a quoted string:\n%s", got)
	}
}

func TestSaveAfterEditKeepsCommentsAndEmptyBlocks(t *testing.T) {
	s := writeFixture(t, commentedFixture)

	list, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	title := "Orchard"
	if err := list.Update(0, cards.Fields{Title: &title}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(list); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(got), "title: Orchard\n") {
		t.Errorf("edit not persisted:\n%s", got)
	}
	if !strings.Contains(string(got), "# partition below this card\n") {
		t.Errorf("inter-card comment lost on edited save:\n%s", got)
	}
	if !strings.HasSuffix(string(got), "  content:\n    - |\n") {
		t.Errorf("empty literal block lost on edited save:\n%s", got)
	}
}

func TestRestoreEmptyBlocks(t *testing.T) {
	in := "- title: X\n  content:\n    - \"\"\n"
	want := "- title: X\n  content:\n    - |\n"
	if got := restoreEmptyBlocks(in); got != want {
		t.Errorf("restoreEmptyBlocks = %q, want %q", got, want)
	}

	// Non-empty quoted scalars are left alone.
	in = "- title: \"\"\n  content:\n    - |\n      x\n"
	if got := restoreEmptyBlocks(in); got != in {
		t.Errorf("restoreEmptyBlocks changed unrelated text: %q", got)
	}
}

func TestDedent(t *testing.T) {
	in := "  - logo: x\n    content:\n      - |\n        <p>y</p>\n"
	want := "- logo: x\n  content:\n    - |\n      <p>y</p>\n"
	if got := dedent(in); got != want {
		t.Errorf("dedent = %q, want %q", got, want)
	}
}

func TestDedentNoCommonMargin(t *testing.T) {
	in := "- logo: x\n  title: y\n"
	if got := dedent(in); got != in {
		t.Errorf("dedent changed unindented text: %q", got)
	}
}
