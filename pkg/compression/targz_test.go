package compression

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/swcarpentry/swc-installer/pkg/logger"
)

func TestTarGzExtract(t *testing.T) {
	members := map[string]string{
		"nano-2.2.6/doc/syntax/sh.nanorc":  "syntax \"sh\"",
		"nano-2.2.6/doc/syntax/pov.nanorc": "syntax \"pov\"",
		"nano-2.2.6/doc/faq.html":          "<html>",
		"nano-2.2.6/src/nano.c":            "int main",
	}
	dir := t.TempDir()
	src := writeTestTarGz(t, dir, members)
	dest := filepath.Join(dir, "out")
	if err := os.Mkdir(dest, 0755); err != nil {
		t.Fatal(err)
	}

	log := logger.New(logger.ErrorLevel)
	written, err := NewTarGz(log).Extract(src, dest, Options{Strip: 1, Only: []string{"doc/syntax"}})
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	var rel []string
	for _, f := range written {
		r, err := filepath.Rel(dest, f)
		if err != nil {
			t.Fatal(err)
		}
		rel = append(rel, filepath.ToSlash(r))
	}
	sort.Strings(rel)
	expected := []string{"doc/syntax/pov.nanorc", "doc/syntax/sh.nanorc"}
	if !reflect.DeepEqual(rel, expected) {
		t.Errorf("wrong files: %v, expected %v", rel, expected)
	}

	data, err := os.ReadFile(filepath.Join(dest, "doc", "syntax", "sh.nanorc"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != members["nano-2.2.6/doc/syntax/sh.nanorc"] {
		t.Errorf("wrong contents: %q", data)
	}
}

func TestNewFromExt(t *testing.T) {
	log := logger.New(logger.ErrorLevel)
	tests := []struct {
		path string
		want Extractor
	}{
		{path: "make-3.81-bin.zip", want: Zip{log: log}},
		{path: "nano-2.2.6.tar.gz", want: TarGz{log: log}},
		{path: "nano.tgz", want: TarGz{log: log}},
		{path: "make.exe", want: nil},
	}
	for _, test := range tests {
		if got := NewFromExt(test.path, log); got != test.want {
			t.Errorf("NewFromExt(%v) = %T, expected %T", test.path, got, test.want)
		}
	}
}

func writeTestTarGz(t *testing.T, dir string, members map[string]string) string {
	t.Helper()
	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}
	sort.Strings(names)

	buf := new(bytes.Buffer)
	gz := gzip.NewWriter(buf)
	tw := tar.NewWriter(gz)
	for _, name := range names {
		body := members[name]
		hdr := &tar.Header{Name: name, Mode: 0644, Size: int64(len(body)), Typeflag: tar.TypeReg}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(dir, "test.tar.gz")
	if err := os.WriteFile(src, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return src
}
