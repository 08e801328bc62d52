// Package export writes rendered patterns to image files.
package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/patternmaker/patternmaker/internal/engine"
	"github.com/patternmaker/patternmaker/internal/pattern"
	"github.com/patternmaker/patternmaker/internal/raster"
	"github.com/patternmaker/patternmaker/internal/typeid"
	"github.com/patternmaker/patternmaker/internal/vector"
)

// Exporter names and writes export artifacts into a directory.
type Exporter struct {
	dir string
	now func() time.Time
}

// NewExporter creates an exporter writing into dir. A nil clock means
// time.Now.
func NewExporter(dir string, now func() time.Time) *Exporter {
	if dir == "" {
		dir = "."
	}
	if now == nil {
		now = time.Now
	}
	return &Exporter{dir: dir, now: now}
}

// Filename returns "pattern-<family>-<unixMillis>.<ext>".
func Filename(family pattern.Family, t time.Time, ext string) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, string(family))
	return fmt.Sprintf("pattern-%s-%d.%s", name, t.UnixMilli(), ext)
}

// EncodePNG returns the artifact name and PNG bytes for the surface's
// current contents. ok is false, with no error, when the surface has not
// been painted yet.
func (e *Exporter) EncodePNG(surface *raster.Surface, family pattern.Family) (name string, data []byte, ok bool, err error) {
	if !surface.Painted() {
		slog.Debug("export skipped, surface not painted")
		return "", nil, false, nil
	}

	var buf bytes.Buffer
	if err := surface.EncodePNG(&buf); err != nil {
		return "", nil, false, err
	}
	return Filename(family, e.now(), "png"), buf.Bytes(), true, nil
}

// PNG writes the surface as a PNG file and returns its path. An unpainted
// surface is a no-op and returns "".
func (e *Exporter) PNG(surface *raster.Surface, family pattern.Family) (string, error) {
	name, data, ok, err := e.EncodePNG(surface, family)
	if err != nil || !ok {
		return "", err
	}
	return e.write(name, data)
}

// SVG renders cfg as a vector document and writes it next to the PNG
// exports.
func (e *Exporter) SVG(cfg pattern.Config, width, height int) (string, error) {
	var buf bytes.Buffer
	cmds := engine.Frame(cfg, float64(width), float64(height))
	if err := vector.Write(&buf, width, height, cmds); err != nil {
		return "", err
	}
	return e.write(Filename(cfg.Family, e.now(), "svg"), buf.Bytes())
}

func (e *Exporter) write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write export file: %w", err)
	}

	slog.Info("export complete", "id", typeid.NewExportID(), "path", path, "size", len(data))
	return path, nil
}
