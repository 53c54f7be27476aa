package installer

import (
	"github.com/swcarpentry/swc-installer/pkg/compression"
	"github.com/swcarpentry/swc-installer/pkg/downloader"
)

// SyntaxDir is where the nano syntax highlighting definitions land,
// relative to the install prefix.
const SyntaxDir = "share/nanorc/doc/syntax"

// Tool is one installable component: an archive to fetch and the
// pieces of it to place under the install prefix.
type Tool struct {
	Name     string
	Download downloader.Download
	// Dest is the prefix-relative directory the archive is
	// unpacked into.
	Dest string
	Opt  compression.Options
	// Probe is a prefix-relative path whose existence marks the
	// tool as already installed.
	Probe string
}

// Tools lists everything placed under the install prefix, in install
// order.
var Tools = []Tool{
	{
		Name: "make",
		Download: downloader.Download{
			URL:    "http://downloads.sourceforge.net/project/gnuwin32/make/3.81/make-3.81-bin.zip",
			SHA1:   "7c1e23a93e6cb78975f36efd22d598241b1f0e8b",
			SHA512: "7b67c9a32c727e3929900272ef05f5c52035b5731ab3d46abe9e641c2f28c049d094e497e5097f431ee680ace342542854d541a09ebece7730af25e69d033447",
		},
		Dest:  "bin",
		Opt:   compression.Options{Strip: 1, Only: []string{"make.exe"}},
		Probe: "bin/make.exe",
	},
	{
		Name: "make-deps",
		Download: downloader.Download{
			URL:    "http://downloads.sourceforge.net/project/gnuwin32/make/3.81/make-3.81-dep.zip",
			SHA1:   "ee90e45c1bacc24a0c3852a95fc6dcfbcabe802b",
			SHA512: "bd4467c0d708c1deec3604754cea9428e4aa5f6e7d9ec24f62bc4d68308f12dec4661b900c1787b50327bc7eb9a482a0ae6ee863c21937c1faea414e5ccb5c04",
		},
		Dest:  "bin",
		Opt:   compression.Options{Strip: 1, Only: []string{"libiconv2.dll", "libintl3.dll"}},
		Probe: "bin/libiconv2.dll",
	},
	{
		Name: "nano",
		Download: downloader.Download{
			URL:    "http://www.nano-editor.org/dist/v2.2/NT/nano-2.2.6.zip",
			SHA1:   "f5348208158157060de0a4df339401f36250fe5b",
			SHA512: "83a4cdf56232c5c2f14f42275804d1af120a2346f03004ce6be384af68f73e39cbd0b9faf62f494253907d4f6606ee91b8c3c1abf6b949f27593bf41e0e3b00f",
		},
		Dest: "bin",
		Opt: compression.Options{Only: []string{
			"nano.exe", "cygwin1.dll", "cygintl-8.dll", "cygiconv-2.dll", "cyggcc_s-1.dll",
		}},
		Probe: "bin/nano.exe",
	},
	{
		Name: "nano-syntax",
		Download: downloader.Download{
			URL:    "http://www.nano-editor.org/dist/v2.2/nano-2.2.6.tar.gz",
			SHA1:   "f2a628394f8dda1b9f28c7e7b89ccb9a6dbd302a",
			SHA512: "e1ee5d63725055290a5117b73352a8557cc3105c737643e341a95ebbb0cecb06c46f86a2363de8455e9de3940e3f920c47af92e19ef9c53862de8a605da08d8d",
		},
		Dest:  "share/nanorc",
		Opt:   compression.Options{Strip: 1, Only: []string{"doc/syntax"}},
		Probe: SyntaxDir,
	},
	{
		Name: "sqlite",
		Download: downloader.Download{
			URL:    "http://sqlite.org/2015/sqlite-shell-win32-x86-3090200.zip",
			SHA1:   "25d78bbba37d2a0d9b9f86ed897e454ccc94d7b2",
			SHA512: "e4eb51f674262cf65e0fe6e6d64c4ddb30301adcb295874fb1c5a6c522642f402b326ad8f46cd79d5b8db7bcac552d0cb79e114d93291c910b08eeee0a949848",
		},
		Dest:  "bin",
		Opt:   compression.Options{Only: []string{"sqlite3.exe"}},
		Probe: "bin/sqlite3.exe",
	},
}
