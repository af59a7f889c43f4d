package render

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// OpenOutput returns the destination for a report. An empty path or "-" means
// stdout, which is never closed. Paths ending in .gz or .zst are compressed.
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zw, err := gzip.NewWriterLevel(f, gzip.DefaultCompression)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return &layered{w: zw, closers: []io.Closer{zw, f}}, nil
	case ".zst":
		zw, err := zstd.NewWriter(f)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return &layered{w: zw, closers: []io.Closer{zw, f}}, nil
	default:
		return f, nil
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// layered closes a compressor before the file underneath it.
type layered struct {
	w       io.Writer
	closers []io.Closer
}

func (l *layered) Write(p []byte) (int, error) {
	return l.w.Write(p)
}

func (l *layered) Close() error {
	var firstErr error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
