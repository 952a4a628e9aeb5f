// Package export renders a compiled layout grid to files.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/javiermolinar/allot/internal/layout"
)

// BaseName is the file name every export uses, without extension.
const BaseName = "room_allotments"

// DefaultSheetName is used when no sheet name is configured.
const DefaultSheetName = "Room Allotments"

// ErrUnknownFormat is returned for an unsupported export format.
var ErrUnknownFormat = errors.New("unknown export format")

// Renderer writes a grid in one file format. Renderers never modify the grid.
type Renderer interface {
	Format() string
	Extension() string
	Render(w io.Writer, g *layout.Grid) error
}

// Options configures renderers.
type Options struct {
	SheetName string
}

// ByFormat returns the renderer for a format name.
func ByFormat(format string, opts Options) (Renderer, error) {
	switch strings.ToLower(format) {
	case "xlsx":
		return NewXLSX(opts.SheetName), nil
	case "html":
		return NewHTML(opts.SheetName), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FileName returns the export file name for a renderer.
func FileName(r Renderer) string {
	return BaseName + "." + r.Extension()
}

// WriteFile renders g into dir/room_allotments.<ext> and returns the path.
func WriteFile(dir string, r Renderer, g *layout.Grid) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, FileName(r))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}

	if err := r.Render(f, g); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("rendering %s: %w", r.Format(), err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing export file: %w", err)
	}

	return path, nil
}

// Save renders g in the named format into dir.
func Save(dir, format string, opts Options, g *layout.Grid) (string, error) {
	r, err := ByFormat(format, opts)
	if err != nil {
		return "", err
	}
	return WriteFile(dir, r, g)
}
