package ioutils

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
)

// OpenReader opens path for reading, with "-" meaning stdin. Input that
// ends in .gz or starts with the gzip magic is transparently
// decompressed.
func OpenReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(maybeGunzip(bufio.NewReader(os.Stdin))), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(f)
	if filepath.Ext(path) == ".gz" || sniffGzip(br) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return &readCloser{Reader: zr, close: func() error {
			_ = zr.Close()
			return f.Close()
		}}, nil
	}
	return &readCloser{Reader: br, close: f.Close}, nil
}

// CreateWriter creates path for writing, with "-" meaning stdout. A .gz
// path gets gzip compression. Close flushes.
func CreateWriter(path string) (io.WriteCloser, error) {
	if path == "-" {
		bw := bufio.NewWriter(os.Stdout)
		return &writeCloser{Writer: bw, close: bw.Flush}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".gz" {
		zw := gzip.NewWriter(f)
		return &writeCloser{Writer: zw, close: func() error {
			if err := zw.Close(); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		}}, nil
	}
	bw := bufio.NewWriter(f)
	return &writeCloser{Writer: bw, close: func() error {
		if err := bw.Flush(); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}}, nil
}

func sniffGzip(br *bufio.Reader) bool {
	b, err := br.Peek(2)
	return err == nil && b[0] == 0x1f && b[1] == 0x8b
}

func maybeGunzip(br *bufio.Reader) io.Reader {
	if sniffGzip(br) {
		if zr, err := gzip.NewReader(br); err == nil {
			return zr
		}
	}
	return br
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r *readCloser) Close() error { return r.close() }

type writeCloser struct {
	io.Writer
	close func() error
}

func (w *writeCloser) Close() error { return w.close() }
