// Package source finds state declarations on disk. Java files are parsed
// by javasrc, descriptor documents by descfile.
package source

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Alia5/beangen/internal/beans"
	"github.com/Alia5/beangen/internal/diag"
	"github.com/Alia5/beangen/internal/source/descfile"
	"github.com/Alia5/beangen/internal/source/javasrc"
)

// DescriptorSuffix marks descriptor documents picked up when walking a
// directory, e.g. "person.beans.yaml". Descriptor files named explicitly
// only need a .yaml, .yml, .toml or .json extension.
const DescriptorSuffix = ".beans"

// Declaration is one state class and the file it came from.
type Declaration struct {
	Path  string
	Class *beans.StateClass
}

type Loader struct {
	Locale diag.Locale
	Logger *slog.Logger
}

func NewLoader(loc diag.Locale, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{Locale: loc, Logger: logger}
}

// Load reads every input under paths and returns the declarations in
// discovery order: arguments in the order given, directory entries in
// lexical order. Unreadable or unparsable files are reported to sink and
// skipped.
func (l *Loader) Load(paths []string, sink diag.Sink) []Declaration {
	var out []Declaration
	seen := map[string]bool{}
	for _, root := range paths {
		for _, file := range l.files(root, sink) {
			abs, err := filepath.Abs(file)
			if err != nil {
				abs = file
			}
			if seen[abs] {
				continue
			}
			seen[abs] = true
			out = append(out, l.loadFile(file, sink)...)
		}
	}
	return out
}

func (l *Loader) files(root string, sink diag.Sink) []string {
	info, err := os.Stat(root)
	if err != nil {
		l.report(sink, diag.SRC0000, root, diag.Position{File: root}, err)
		return nil
	}
	if !info.IsDir() {
		return []string{root}
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			l.report(sink, diag.SRC0000, path, diag.Position{File: path}, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if isInput(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		l.report(sink, diag.SRC0000, root, diag.Position{File: root}, err)
	}
	return files
}

func isInput(path string) bool {
	if strings.EqualFold(filepath.Ext(path), ".java") {
		return true
	}
	if _, ok := descfile.FormatOf(path); !ok {
		return false
	}
	stem := strings.TrimSuffix(path, filepath.Ext(path))
	return strings.EqualFold(filepath.Ext(stem), DescriptorSuffix)
}

func (l *Loader) loadFile(path string, sink diag.Sink) []Declaration {
	data, err := os.ReadFile(path)
	if err != nil {
		l.report(sink, diag.SRC0000, path, diag.Position{File: path}, err)
		return nil
	}

	var classes []*beans.StateClass
	if strings.EqualFold(filepath.Ext(path), ".java") {
		classes, err = javasrc.Parse(path, data)
	} else {
		classes, err = descfile.Load(path, data)
	}
	if err != nil {
		pos := diag.Position{File: path}
		var se *javasrc.SyntaxError
		if errors.As(err, &se) {
			pos = se.Pos
			err = errors.New(se.Msg)
		}
		l.report(sink, diag.SRC0001, path, pos, err)
		return nil
	}

	l.Logger.Debug("Loaded input", "path", path, "declarations", len(classes))
	out := make([]Declaration, len(classes))
	for i, c := range classes {
		out[i] = Declaration{Path: path, Class: c}
	}
	return out
}

func (l *Loader) report(sink diag.Sink, code diag.Code, path string, pos diag.Position, err error) {
	if sink == nil {
		return
	}
	sink.Report(diag.New(l.Locale, code, diag.Anchor{Element: "file " + path, Pos: pos}, path, err))
}
