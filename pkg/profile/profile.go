package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/swcarpentry/swc-installer/pkg/logger"
)

const (
	nanoRCName      = "nano.rc"
	bashProfileName = ".bash_profile"

	pathMarker    = "# Add paths for Software-Carpentry-installed scripts and executables"
	editorComment = "# Make nano the default editor"
)

var driveRe = regexp.MustCompile(`^[A-Za-z]:`)

// PosixPath converts a Windows path to the posix form understood by
// the shell emulation layer (C:\Users\me -> /c/Users/me).
func PosixPath(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	if drive := driveRe.FindString(p); drive != "" {
		p = "/" + strings.ToLower(drive[:1]) + p[2:]
	}
	return p
}

// Profile writes the per-user shell configuration files.
type Profile struct {
	home string
	log  *logger.Logger
}

func New(home string, log *logger.Logger) Profile {
	return Profile{home: home, log: log}
}

// WriteNanoRC points nano at the installed syntax highlighting
// definitions. An existing ~/nano.rc is kept as is.
func (p Profile) WriteNanoRC(syntaxDir string) error {
	rc := filepath.Join(p.home, nanoRCName)
	if _, err := os.Stat(rc); err == nil {
		p.log.Info().Msgf("keeping the existing %v", rc)
		return nil
	}
	entries, err := os.ReadDir(syntaxDir)
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".nanorc") {
			continue
		}
		include := PosixPath(filepath.Join(syntaxDir, e.Name()))
		// ~-relative only when the definitions live under the home directory,
		// nano does not resolve .. traversals behind the tilde
		if rel, err := filepath.Rel(p.home, filepath.Join(syntaxDir, e.Name())); err == nil && !strings.HasPrefix(rel, "..") {
			include = "~/" + PosixPath(rel)
		}
		// quoted, the prefix may contain spaces (C:\Program Files\Git)
		b.WriteString(fmt.Sprintf("include \"%v\"\n", include))
	}
	if err := os.WriteFile(rc, []byte(b.String()), 0644); err != nil {
		return err
	}
	p.log.Info().Msgf("wrote %v", rc)
	return nil
}

// UpdateBashProfile appends an export block to ~/.bash_profile adding
// the extra executable paths to PATH and making nano the default
// editor. Nothing is written when there are no paths to add or when
// the profile already carries the block.
func (p Profile) UpdateBashProfile(extraPaths []string) error {
	if len(extraPaths) == 0 {
		return nil
	}
	prof := filepath.Join(p.home, bashProfileName)
	data, err := os.ReadFile(prof)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if strings.Contains(string(data), pathMarker) {
		p.log.Info().Msgf("%v already mentions the installed paths", prof)
		return nil
	}

	posix := make([]string, 0, len(extraPaths))
	for _, path := range extraPaths {
		posix = append(posix, PosixPath(path))
	}
	lines := []string{
		"",
		pathMarker,
		fmt.Sprintf(`export PATH="$PATH:%v"`, strings.Join(posix, ":")),
		"",
		editorComment,
		"export EDITOR=nano",
		"",
	}

	f, err := os.OpenFile(prof, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, err = f.WriteString(strings.Join(lines, "\n"))
	if cErr := f.Close(); err == nil {
		err = cErr
	}
	if err == nil {
		p.log.Info().Msgf("added %v to PATH in %v", strings.Join(posix, ":"), prof)
	}
	return err
}
