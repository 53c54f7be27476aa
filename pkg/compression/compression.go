package compression

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/swcarpentry/swc-installer/pkg/logger"
)

// Options narrows down what Extract writes out.
type Options struct {
	// Strip drops that many leading path components from every
	// archive member; members that are too shallow are skipped.
	Strip int
	// Only keeps members equal to one of these slash-separated
	// paths (after stripping) or located under one of them.
	// Empty keeps everything.
	Only []string
}

type Extractor interface {
	// Extract unpacks the src archive under the dest directory and
	// returns the list of files it has written.
	Extract(src string, dest string, opt Options) ([]string, error)
}

const (
	zipExt   = ".zip"
	tgzExt   = ".tgz"
	tarGzExt = ".tar.gz"
)

// NewFromExt picks an extractor by the file extension of path,
// or nil when the format is not supported.
func NewFromExt(p string, log *logger.Logger) Extractor {
	switch {
	case strings.HasSuffix(p, tarGzExt) || filepath.Ext(p) == tgzExt:
		return NewTarGz(log)
	case filepath.Ext(p) == zipExt:
		return NewZip(log)
	default:
		return nil
	}
}

// keep returns the dest-relative slash path for an archive member,
// or false when the options rule the member out.
func (o Options) keep(name string) (string, bool) {
	name = strings.TrimPrefix(path.Clean(filepath.ToSlash(name)), "/")
	if name == "" || name == "." {
		return "", false
	}
	parts := strings.Split(name, "/")
	if len(parts) <= o.Strip {
		return "", false
	}
	rel := strings.Join(parts[o.Strip:], "/")
	if len(o.Only) == 0 {
		return rel, true
	}
	for _, only := range o.Only {
		if rel == only || strings.HasPrefix(rel, only+"/") {
			return rel, true
		}
	}
	return "", false
}
