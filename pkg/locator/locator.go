package locator

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/swcarpentry/swc-installer/pkg/config"
	"github.com/swcarpentry/swc-installer/pkg/logger"
	"github.com/swcarpentry/swc-installer/pkg/os"
)

// ErrNoShellRoot is returned when none of the candidate shell
// emulation layer directories exist on this machine.
var ErrNoShellRoot = errors.New("no shell emulation layer (msysGit) found")

type Locator struct {
	conf config.Locator
	log  *logger.Logger
}

func New(conf config.Locator, log *logger.Logger) Locator {
	return Locator{conf: conf, log: log}
}

// ShellRoot returns the first existing directory among the configured
// shell emulation layer roots.
func (l Locator) ShellRoot() (string, error) {
	for _, root := range l.conf.ShellRoots {
		if os.DirExists(root) {
			l.log.Debug().Msgf("found shell root at %v", root)
			return root, nil
		}
	}
	return "", fmt.Errorf("%w, checked: %v", ErrNoShellRoot, l.conf.ShellRoots)
}

var rVersionRe = regexp.MustCompile(`^R-(\d+)\.(\d+)\.(\d+)$`)

// RBinDir locates the bin directory of the newest installed R
// version. The install path recorded in the registry wins over the
// conventional install trees. ok is false when R is not installed.
func (l Locator) RBinDir() (bin string, ok bool) {
	if bin := registryRBin(l.log); bin != "" && os.DirExists(bin) {
		return bin, true
	}

	type version [3]int
	paths := map[version]string{}
	var versions []version
	for _, pf := range l.conf.ProgramFiles {
		matches, _ := filepath.Glob(filepath.Join(pf, "R", "R-*", "bin"))
		for _, bin := range matches {
			m := rVersionRe.FindStringSubmatch(filepath.Base(filepath.Dir(bin)))
			if m == nil {
				continue
			}
			v := version{atoi(m[1]), atoi(m[2]), atoi(m[3])}
			// the first hit wins for a given version
			if _, seen := paths[v]; !seen {
				paths[v] = bin
				versions = append(versions, v)
			}
		}
	}
	if len(versions) == 0 {
		return "", false
	}
	sort.Slice(versions, func(i, j int) bool {
		a, b := versions[i], versions[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	best := versions[len(versions)-1]
	l.log.Debug().Msgf("found R %v.%v.%v at %v", best[0], best[1], best[2], paths[best])
	return paths[best], true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
