// Package filer persists generated sources. A Filer hands out one writer
// per generated class; closing the writer commits the file.
package filer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Filer creates generated source files addressed by fully qualified class
// name. origin names the input the class was derived from and is only
// used for bookkeeping. A name can be created once per filer; later
// requests fail with ErrDuplicateSource.
type Filer interface {
	CreateSource(qualifiedName, origin string) (io.WriteCloser, error)
}

// ErrDuplicateSource is returned by CreateSource when a class name was
// already handed out by the same filer.
var ErrDuplicateSource = errors.New("source already created")

// claims records the class names a filer has handed out.
type claims struct {
	mu    sync.Mutex
	names map[string]struct{}
}

func (c *claims) claim(qualifiedName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.names[qualifiedName]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateSource, qualifiedName)
	}
	if c.names == nil {
		c.names = map[string]struct{}{}
	}
	c.names[qualifiedName] = struct{}{}
	return nil
}

// SourcePath returns the slash separated path of a class's source file
// relative to the output root: "com.example.Foo" -> "com/example/Foo.java".
func SourcePath(qualifiedName string) string {
	return strings.ReplaceAll(qualifiedName, ".", "/") + ".java"
}

// DirFiler writes sources below Root in package directories. Files are
// written to a temporary name and renamed on Close; a file whose content
// did not change is left untouched.
type DirFiler struct {
	Root   string
	Logger *slog.Logger

	claims claims
}

func NewDirFiler(root string, logger *slog.Logger) *DirFiler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DirFiler{Root: root, Logger: logger}
}

func (f *DirFiler) CreateSource(qualifiedName, origin string) (io.WriteCloser, error) {
	if err := f.claims.claim(qualifiedName); err != nil {
		return nil, err
	}
	path := filepath.Join(f.Root, filepath.FromSlash(SourcePath(qualifiedName)))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".beangen-*.java")
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &dirFile{filer: f, tmp: tmp, path: path, origin: origin}, nil
}

type dirFile struct {
	filer  *DirFiler
	tmp    *os.File
	path   string
	origin string
	buf    bytes.Buffer
	// err is the first write error; a failed file is never committed.
	err error
}

func (d *dirFile) Write(p []byte) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	n, err := d.tmp.Write(p)
	d.buf.Write(p[:n])
	if err != nil {
		d.err = err
	}
	return n, err
}

func (d *dirFile) Close() error {
	tmpName := d.tmp.Name()
	if d.err != nil {
		_ = d.tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", d.path, d.err)
	}
	if err := d.tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if old, err := os.ReadFile(d.path); err == nil && bytes.Equal(old, d.buf.Bytes()) {
		d.filer.Logger.Debug("Generated source unchanged", "path", d.path, "origin", d.origin)
		return os.Remove(tmpName)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, d.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", d.path, err)
	}
	d.filer.Logger.Debug("Generated source written", "path", d.path, "origin", d.origin)
	return nil
}

// Stale describes a generated file whose content on disk differs from what
// would be generated now.
type Stale struct {
	Path          string
	QualifiedName string
	Origin        string
	// Missing is set when there is no file on disk at all.
	Missing bool
	// Diff is a unified diff from the file on disk to the generated text.
	Diff string
}

// CheckFiler writes nothing. It compares generated text with the files
// below Root and records every difference.
type CheckFiler struct {
	Root string

	claims claims
	mu     sync.Mutex
	stale []Stale
	seen  int
}

func NewCheckFiler(root string) *CheckFiler {
	return &CheckFiler{Root: root}
}

func (f *CheckFiler) CreateSource(qualifiedName, origin string) (io.WriteCloser, error) {
	if err := f.claims.claim(qualifiedName); err != nil {
		return nil, err
	}
	return &checkFile{
		filer:  f,
		path:   filepath.Join(f.Root, filepath.FromSlash(SourcePath(qualifiedName))),
		name:   qualifiedName,
		origin: origin,
	}, nil
}

// Stale returns the out of date files sorted by path.
func (f *CheckFiler) Stale() []Stale {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Stale, len(f.stale))
	copy(out, f.stale)
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Checked returns the number of generated files compared.
func (f *CheckFiler) Checked() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen
}

type checkFile struct {
	filer  *CheckFiler
	path   string
	name   string
	origin string
	buf    bytes.Buffer
}

func (c *checkFile) Write(p []byte) (int, error) { return c.buf.Write(p) }

func (c *checkFile) Close() error {
	generated := c.buf.String()
	old, err := os.ReadFile(c.path)
	missing := false
	switch {
	case err == nil:
	case os.IsNotExist(err):
		missing = true
	default:
		return fmt.Errorf("read %s: %w", c.path, err)
	}

	var st *Stale
	if missing || string(old) != generated {
		d, err := UnifiedDiff(c.path, string(old), generated)
		if err != nil {
			return err
		}
		st = &Stale{Path: c.path, QualifiedName: c.name, Origin: c.origin, Missing: missing, Diff: d}
	}

	c.filer.mu.Lock()
	defer c.filer.mu.Unlock()
	c.filer.seen++
	if st != nil {
		c.filer.stale = append(c.filer.stale, *st)
	}
	return nil
}

// MemFiler keeps generated sources in memory.
type MemFiler struct {
	claims  claims
	mu      sync.Mutex
	sources map[string]string
	origins map[string]string
	names   []string
}

func NewMemFiler() *MemFiler {
	return &MemFiler{sources: map[string]string{}, origins: map[string]string{}}
}

func (f *MemFiler) CreateSource(qualifiedName, origin string) (io.WriteCloser, error) {
	if err := f.claims.claim(qualifiedName); err != nil {
		return nil, err
	}
	return &memFile{filer: f, name: qualifiedName, origin: origin}, nil
}

// Source returns the committed text for a class.
func (f *MemFiler) Source(qualifiedName string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sources[qualifiedName]
	return s, ok
}

// Origin returns the origin a class was created with.
func (f *MemFiler) Origin(qualifiedName string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.origins[qualifiedName]
}

// Names returns the committed class names in commit order.
func (f *MemFiler) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

type memFile struct {
	filer  *MemFiler
	name   string
	origin string
	buf    bytes.Buffer
}

func (m *memFile) Write(p []byte) (int, error) { return m.buf.Write(p) }

func (m *memFile) Close() error {
	m.filer.mu.Lock()
	defer m.filer.mu.Unlock()
	m.filer.names = append(m.filer.names, m.name)
	m.filer.sources[m.name] = m.buf.String()
	m.filer.origins[m.name] = m.origin
	return nil
}
