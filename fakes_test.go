package blogsite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ---------------------------------------------------------------------------
// Fake Implementations
// ---------------------------------------------------------------------------

// fakeStore serves files from memory. Entries are listed in insertion order.
type fakeStore struct {
	files   map[string]string
	order   []string
	dirs    []string
	listErr error
	copyErr error
	reads   []string
	copies  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{files: make(map[string]string)}
}

func (s *fakeStore) add(dir, name, content string) *fakeStore {
	path := filepath.Join(dir, name)
	if _, ok := s.files[path]; !ok {
		s.order = append(s.order, name)
	}
	s.files[path] = content
	return s
}

func (s *fakeStore) ListEntries(ctx context.Context, dir string) ([]Entry, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var entries []Entry
	for _, d := range s.dirs {
		entries = append(entries, Entry{Name: d, IsDir: true})
	}
	for _, name := range s.order {
		ext := filepath.Ext(name)
		entries = append(entries, Entry{Name: strings.TrimSuffix(name, ext), Extension: ext})
	}
	return entries, nil
}

func (s *fakeStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	s.reads = append(s.reads, path)
	content, ok := s.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return []byte(content), nil
}

func (s *fakeStore) CopyStaticAssets(ctx context.Context) error {
	s.copies++
	return s.copyErr
}

type fakeMarkdown struct {
	err error
}

func (m *fakeMarkdown) ToHTML(ctx context.Context, md string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return "<p>" + md + "</p>", nil
}

type renderCall struct {
	layout string
	output string
	data   any
}

// fakeRenderer records calls and fails on the output named failOn.
type fakeRenderer struct {
	calls  []renderCall
	failOn string
}

func (r *fakeRenderer) Generate(ctx context.Context, layout, output string, data any) error {
	if output == r.failOn {
		return fmt.Errorf("%w: boom", ErrRender)
	}
	r.calls = append(r.calls, renderCall{layout: layout, output: output, data: data})
	return nil
}

// fakeLoader serves layouts from memory and counts loads.
type fakeLoader struct {
	layouts map[string]string
	loads   int
}

var errFakeLayoutMissing = errors.New("layout not found")

func (l *fakeLoader) LoadLayout(name string) (string, error) {
	l.loads++
	src, ok := l.layouts[name]
	if !ok {
		return "", errFakeLayoutMissing
	}
	return src, nil
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

const testPostsDir = "posts"

func metadata(date string, extra ...string) string {
	lines := []string{
		`title = "T"`,
		`url = "u"`,
		fmt.Sprintf("time = %q", date),
		`image = "i.jpg"`,
		`image_contribution = "c"`,
		`intro = "x"`,
	}
	return strings.Join(append(lines, extra...), "\n") + "\n"
}
