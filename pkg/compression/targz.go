package compression

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/swcarpentry/swc-installer/pkg/logger"
)

type TarGz struct {
	log *logger.Logger
}

func NewTarGz(log *logger.Logger) TarGz { return TarGz{log: log} }

func (t TarGz) Extract(src string, dest string, opt Options) (files []string, err error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return files, err
		}
		rel, ok := opt.keep(hdr.Name)
		if !ok {
			continue
		}
		fp := filepath.Join(dest, filepath.FromSlash(rel))
		if !strings.HasPrefix(fp, filepath.Clean(dest)+string(os.PathSeparator)) {
			t.log.Warn().Msgf("%v is an illegal path, skipping", fp)
			continue
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err = os.MkdirAll(fp, os.ModePerm); err != nil {
				return files, err
			}
		case tar.TypeReg:
			if err = os.MkdirAll(filepath.Dir(fp), os.ModePerm); err != nil {
				return files, err
			}
			if err = writeTarFile(fp, hdr, tr); err != nil {
				return files, err
			}
			files = append(files, fp)
		default:
			t.log.Debug().Msgf("skipping %v (type %v)", hdr.Name, hdr.Typeflag)
		}
	}
	return files, nil
}

func writeTarFile(dst string, hdr *tar.Header, r io.Reader) error {
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, hdr.FileInfo().Mode())
	if err != nil {
		return err
	}
	_, err = io.Copy(out, r)
	if cErr := out.Close(); err == nil {
		err = cErr
	}
	return err
}
