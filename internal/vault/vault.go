package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// Note is one markdown file loaded from a vault directory.
type Note struct {
	Path      string
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
}

// Loader walks a vault directory and loads its markdown notes.
type Loader struct {
	root    string
	ignored []string
}

// NewLoader constructs a loader rooted at the provided directory.
// Ignored folder names are skipped anywhere in the tree.
func NewLoader(root string, ignored []string) *Loader {
	return &Loader{root: filepath.Clean(root), ignored: ignored}
}

// Load reads every markdown note under the vault root, sorted by path so
// downstream ranking sees a deterministic corpus order.
func (l *Loader) Load() ([]Note, error) {
	var notes []Note
	err := filepath.Walk(l.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("walking %q: %w", path, err)
		}
		if info.IsDir() {
			if l.shouldIgnore(info.Name()) && path != l.root {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".md" {
			return nil
		}

		note, err := l.loadNote(path, info)
		if err != nil {
			return err
		}
		notes = append(notes, note)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Path < notes[j].Path
	})
	return notes, nil
}

func (l *Loader) shouldIgnore(name string) bool {
	for _, ignored := range l.ignored {
		if ignored != "" && strings.EqualFold(name, ignored) {
			return true
		}
	}
	return false
}

func (l *Loader) loadNote(path string, info os.FileInfo) (Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Note{}, fmt.Errorf("vault: reading %s: %w", path, err)
	}

	fm, body := splitFrontMatter(data)
	meta, err := parseFrontMatter(fm)
	if err != nil {
		return Note{}, fmt.Errorf("vault: front matter of %s: %w", path, err)
	}

	title := meta.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	createdAt := meta.Created
	if createdAt.IsZero() {
		createdAt = info.ModTime().UTC()
	}

	return Note{
		Path:      filepath.Clean(path),
		Title:     title,
		Content:   markdownText(body),
		Tags:      meta.Tags,
		CreatedAt: createdAt,
	}, nil
}

type frontMatter struct {
	Title   string
	Tags    []string
	Created time.Time
}

var frontMatterPattern = regexp.MustCompile(`(?ms)^---\s*\n(.*?)\n---\s*\n?`)

func splitFrontMatter(data []byte) ([]byte, []byte) {
	loc := frontMatterPattern.FindSubmatchIndex(data)
	if len(loc) < 4 {
		return nil, data
	}
	return data[loc[2]:loc[3]], data[loc[1]:]
}

func parseFrontMatter(fm []byte) (frontMatter, error) {
	var meta frontMatter
	if len(fm) == 0 {
		return meta, nil
	}

	var raw struct {
		Title   string    `yaml:"title"`
		Tags    []string  `yaml:"tags"`
		Created yaml.Node `yaml:"created"`
	}
	if err := yaml.Unmarshal(fm, &raw); err != nil {
		return meta, err
	}

	meta.Title = strings.TrimSpace(raw.Title)
	meta.Tags = raw.Tags
	if raw.Created.Kind == yaml.ScalarNode && raw.Created.Value != "" {
		if parsed, err := dateparse.ParseAny(raw.Created.Value); err == nil {
			meta.Created = parsed.UTC()
		}
	}
	return meta, nil
}

// markdownText renders a markdown body to plain text by walking the AST
// and collecting text segments, with block boundaries becoming newlines.
func markdownText(source []byte) string {
	parser := goldmark.DefaultParser()
	document := parser.Parse(text.NewReader(source))

	var b strings.Builder
	ast.Walk(document, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			switch n := n.(type) {
			case *ast.Text:
				b.Write(n.Segment.Value(source))
				if n.SoftLineBreak() || n.HardLineBreak() {
					b.WriteByte('\n')
				}
			case *ast.String:
				b.Write(n.Value)
			}
			return ast.WalkContinue, nil
		}
		if n.Type() == ast.TypeBlock {
			b.WriteByte('\n')
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}
