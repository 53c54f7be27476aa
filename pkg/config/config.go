package config

import (
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
)

type AppConfig struct {
	Installer Installer
	Locator   Locator
	Log       Log
}

// MsysTag in the install prefix stands for the located shell root.
// Unlike the other path tags it is expanded after the locate step,
// not at load time.
const MsysTag = "{msys}"

type Installer struct {
	// Prefix is the directory tools are installed under.
	// The special tag {msys} expands to the located shell root,
	// {user} to the home directory.
	Prefix string `fig:"prefix" default:"{msys}"`
	// DownloadDir keeps fetched archives; empty means a fresh
	// temporary directory removed after the run.
	DownloadDir string `fig:"downloaddir"`
	// LockFile guards against two installer instances; empty means
	// a well-known file in the system temp directory.
	LockFile string `fig:"lockfile"`
}

type Locator struct {
	// ShellRoots are probed in order for an existing shell emulation layer.
	ShellRoots []string `fig:"shellroots" default:"[{pf}/Git,{pf86}/Git,C:/msysgit,{localappdata}/Programs/Git]"`
	// ProgramFiles are the roots scanned for R installations.
	ProgramFiles []string `fig:"programfiles" default:"[{pf},{pf86}]"`
}

type Log struct {
	Level string `fig:"level" default:"info"`
}

var (
	// allows custom config path
	configPath string
	verbosity  string
)

// ParseFlags reads the command line over the loaded defaults.
// Call it once, before NewAppConfig.
func ParseFlags() {
	flag.StringVarP(&configPath, "conf", "c", configPath, "set custom configuration directory")
	flag.StringVarP(&verbosity, "verbose", "v", verbosity, "log level: debug, info, warn or error")
	flag.Parse()
}

func NewAppConfig() (conf AppConfig, err error) {
	if err = LoadConfig(&conf, configPath); err != nil {
		return
	}
	if verbosity != "" {
		conf.Log.Level = verbosity
	}
	err = conf.expandSpecialTags()
	return
}

// expandSpecialTags replaces the special path tags in the config.
// {msys} is left alone: it is known only after the locate step.
func (c *AppConfig) expandSpecialTags() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	repl := strings.NewReplacer(
		"{user}", home,
		"{pf}", programFiles(),
		"{pf86}", programFilesX86(),
		"{localappdata}", localAppData(home),
	)
	for _, dir := range []*string{&c.Installer.Prefix, &c.Installer.DownloadDir, &c.Installer.LockFile} {
		if *dir == "" {
			continue
		}
		*dir = filepath.FromSlash(repl.Replace(*dir))
	}
	for _, list := range [][]string{c.Locator.ShellRoots, c.Locator.ProgramFiles} {
		for i, dir := range list {
			list[i] = filepath.FromSlash(repl.Replace(dir))
		}
	}
	return nil
}

func programFiles() string {
	for _, name := range []string{"ProgramW6432", "ProgramFiles"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return `C:\Program Files`
}

func programFilesX86() string {
	if v := os.Getenv("ProgramFiles(x86)"); v != "" {
		return v
	}
	return `C:\Program Files (x86)`
}

func localAppData(home string) string {
	if v := os.Getenv("LOCALAPPDATA"); v != "" {
		return v
	}
	return filepath.Join(home, "AppData", "Local")
}
