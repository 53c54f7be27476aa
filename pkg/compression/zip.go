package compression

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/swcarpentry/swc-installer/pkg/logger"
)

type Zip struct {
	log *logger.Logger
}

func NewZip(log *logger.Logger) Zip { return Zip{log: log} }

func (z Zip) Extract(src string, dest string, opt Options) (files []string, err error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		rel, ok := opt.keep(f.Name)
		if !ok {
			continue
		}
		fp := filepath.Join(dest, filepath.FromSlash(rel))

		// negate ZipSlip (http://bit.ly/2MsjAWE)
		if !strings.HasPrefix(fp, filepath.Clean(dest)+string(os.PathSeparator)) {
			z.log.Warn().Msgf("%v is an illegal path, skipping", fp)
			continue
		}

		if f.FileInfo().IsDir() {
			if err = os.MkdirAll(fp, os.ModePerm); err != nil {
				return files, err
			}
			continue
		}
		if err = os.MkdirAll(filepath.Dir(fp), os.ModePerm); err != nil {
			return files, err
		}
		if err = writeZipFile(fp, f); err != nil {
			return files, err
		}
		files = append(files, fp)
	}
	return files, nil
}

func writeZipFile(dst string, f *zip.File) error {
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
	if err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		_ = out.Close()
		return err
	}
	_, err = io.Copy(out, rc)
	_ = rc.Close()
	if cErr := out.Close(); err == nil {
		err = cErr
	}
	return err
}
