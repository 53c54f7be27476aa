package downloader

import (
	"bytes"
	"context"
	"crypto/sha1"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"time"

	"github.com/cavaliercoder/grab"
	"github.com/swcarpentry/swc-installer/pkg/logger"
)

// Download is a single remote file with its expected checksums
// (hex-encoded). SHA512 is the transfer checksum, SHA1 is kept for
// cross-checking against upstream release announcements.
type Download struct {
	URL    string
	SHA1   string
	SHA512 string
}

// Client downloads files into a scratch directory.
type Client struct {
	client *grab.Client
	dir    string
	temp   bool
	log    *logger.Logger
}

// New returns a client that saves downloads under dir.
// An empty dir means a temporary directory removed on Close.
func New(dir string, log *logger.Logger) (*Client, error) {
	temp := dir == ""
	if temp {
		d, err := os.MkdirTemp("", "swc-downloads-")
		if err != nil {
			return nil, err
		}
		dir = d
	} else if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Client{client: grab.NewClient(), dir: dir, temp: temp, log: log}, nil
}

func (c *Client) Dir() string { return c.dir }

// Fetch downloads d into the scratch directory, verifies its
// checksums and returns the path of the saved file.
func (c *Client) Fetch(ctx context.Context, d Download) (string, error) {
	req, err := grab.NewRequest(c.dir, d.URL)
	if err != nil {
		return "", fmt.Errorf("bad request URL %v: %w", d.URL, err)
	}
	req = req.WithContext(ctx)
	if d.SHA512 != "" {
		sum, err := hex.DecodeString(d.SHA512)
		if err != nil {
			return "", fmt.Errorf("bad sha512 for %v: %w", d.URL, err)
		}
		req.SetChecksum(sha512.New(), sum, true)
	}

	c.log.Info().Msgf("Downloading %v...", req.URL())
	resp := c.client.Do(req)

	t := time.NewTicker(500 * time.Millisecond)
	defer t.Stop()

Loop:
	for {
		select {
		case <-t.C:
			c.log.Debug().Msgf("  transferred %v / %v bytes (%.2f%%)",
				resp.BytesComplete(), resp.Size(), 100*resp.Progress())
		case <-resp.Done:
			break Loop
		}
	}

	if err := resp.Err(); err != nil {
		return "", fmt.Errorf("download of %v failed: %w", d.URL, err)
	}
	if d.SHA1 != "" {
		if err := verify(resp.Filename, sha1.New(), d.SHA1); err != nil {
			_ = os.Remove(resp.Filename)
			return "", err
		}
	}

	c.log.Info().Msgf("Downloaded [%v] %v", resp.HTTPResponse.Status, resp.Filename)
	return resp.Filename, nil
}

// Discard removes a no longer needed download.
func (c *Client) Discard(path string) {
	if err := os.Remove(path); err != nil {
		c.log.Warn().Err(err).Msgf("couldn't remove %v", path)
	}
}

// Close removes the scratch directory if it was temporary.
func (c *Client) Close() {
	if !c.temp {
		return
	}
	if err := os.RemoveAll(c.dir); err != nil {
		c.log.Warn().Err(err).Msgf("couldn't remove %v", c.dir)
	}
}

// verify recomputes the file digest with h and compares it to the
// hex-encoded sum.
func verify(path string, h hash.Hash, sum string) error {
	want, err := hex.DecodeString(sum)
	if err != nil {
		return fmt.Errorf("bad checksum for %v: %w", path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	if _, err := io.Copy(h, f); err != nil {
		return err
	}
	if got := h.Sum(nil); !bytes.Equal(got, want) {
		return fmt.Errorf("checksum mismatch for %v: %x, expected %x", path, got, want)
	}
	return nil
}
