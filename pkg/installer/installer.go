package installer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/swcarpentry/swc-installer/pkg/compression"
	"github.com/swcarpentry/swc-installer/pkg/config"
	"github.com/swcarpentry/swc-installer/pkg/downloader"
	"github.com/swcarpentry/swc-installer/pkg/locator"
	"github.com/swcarpentry/swc-installer/pkg/logger"
	"github.com/swcarpentry/swc-installer/pkg/os"
	"github.com/swcarpentry/swc-installer/pkg/profile"
)

// Manager drives the whole installation: locate the shell emulation
// layer, fetch the tool archives, place their files under the prefix
// and point the user profile at the result.
type Manager struct {
	conf  config.AppConfig
	home  string
	tools []Tool
	log   *logger.Logger
}

func New(conf config.AppConfig, log *logger.Logger) (Manager, error) {
	home, err := os.GetUserHome()
	if err != nil {
		return Manager{}, fmt.Errorf("couldn't get the user home directory: %w", err)
	}
	return Manager{conf: conf, home: home, tools: Tools, log: log}, nil
}

func (m Manager) Run(ctx context.Context) error {
	loc := locator.New(m.conf.Locator, m.log)
	// nothing is written before the layer is found
	root, err := loc.ShellRoot()
	if err != nil {
		return err
	}
	m.log.Info().Msgf("using the shell emulation layer at %v", root)

	prefix := strings.ReplaceAll(m.conf.Installer.Prefix, config.MsysTag, root)
	rbin, hasR := loc.RBinDir()
	if hasR {
		m.log.Info().Msgf("using R bin directory at %v", rbin)
	} else {
		m.log.Warn().Msg("no R installation found, skipping its PATH entry")
	}

	// other installer processes wait here
	lock, err := os.NewFileLock(m.conf.Installer.LockFile)
	if err != nil {
		return err
	}
	if err := lock.Lock(); err != nil {
		return err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			m.log.Warn().Err(err).Msg("couldn't release the file lock")
		}
	}()

	client, err := downloader.New(m.conf.Installer.DownloadDir, m.log)
	if err != nil {
		return err
	}
	defer client.Close()

	for _, tool := range m.tools {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := m.install(ctx, client, tool, prefix); err != nil {
			return err
		}
	}

	if err := m.writeEntryPoint(prefix); err != nil {
		return err
	}

	prof := profile.New(m.home, m.log)
	if err := prof.WriteNanoRC(filepath.Join(prefix, filepath.FromSlash(SyntaxDir))); err != nil {
		return err
	}

	var extra []string
	if prefix != root {
		extra = append(extra, filepath.Join(prefix, "bin"))
	}
	if hasR {
		extra = append(extra, rbin)
	}
	return prof.UpdateBashProfile(extra)
}

// install fetches one tool archive and unpacks the wanted pieces of
// it under the prefix. A tool whose probe file already exists is
// skipped.
func (m Manager) install(ctx context.Context, client *downloader.Client, tool Tool, prefix string) error {
	probe := filepath.Join(prefix, filepath.FromSlash(tool.Probe))
	if os.Exists(probe) {
		m.log.Info().Msgf("existing installation at %v", probe)
		return nil
	}

	file, err := client.Fetch(ctx, tool.Download)
	if err != nil {
		return err
	}
	defer client.Discard(file)

	ex := compression.NewFromExt(file, m.log)
	if ex == nil {
		return fmt.Errorf("unsupported archive format: %v", file)
	}
	dest := filepath.Join(prefix, filepath.FromSlash(tool.Dest))
	if err := os.CheckCreateDir(dest); err != nil {
		return err
	}
	m.log.Info().Msgf("installing %v into %v", tool.Download.URL, dest)
	files, err := ex.Extract(file, dest, tool.Opt)
	if err != nil {
		return err
	}
	m.log.Debug().Msgf("%v: extracted %v files", tool.Name, len(files))
	return nil
}

// writeEntryPoint drops a terminal-based nosetests launcher into the
// prefix bin directory, for shells where the Scripts wrapper of the
// Python distribution is not visible.
func (m Manager) writeEntryPoint(prefix string) error {
	bin := filepath.Join(prefix, "bin")
	if err := os.CheckCreateDir(bin); err != nil {
		return err
	}
	path := filepath.Join(bin, "nosetests")
	if os.Exists(path) {
		m.log.Info().Msgf("existing entrypoint at %v", path)
		return nil
	}
	m.log.Info().Msgf("create nosetests entrypoint %v", path)
	contents := strings.Join([]string{
		"#!/usr/bin/env python",
		"import sys",
		"import nose",
		"if __name__ == '__main__':",
		"    sys.exit(nose.core.main())",
		"",
	}, "\n")
	return os.WriteFile(path, []byte(contents), 0755)
}
