// Package atomicfile replaces files through a temporary sibling and rename,
// so readers never observe a partially written artifact.
package atomicfile

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
)

const bufSize = 64 * 1024

// Write copies r into path atomically. Parent directories are created with
// mode 0755. The reader is checked for cancellation of ctx before every
// read. It returns the number of bytes written.
func Write(ctx context.Context, path string, r io.Reader, perm os.FileMode) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return 0, err
	}
	tmpPath := tmp.Name()
	fail := func(err error) (int64, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return 0, err
	}

	bw := bufio.NewWriterSize(tmp, bufSize)
	n, err := io.Copy(bw, &ctxReader{ctx: ctx, r: r})
	if err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return 0, err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return 0, err
	}
	_ = syncDir(dir)
	return n, nil
}

// WriteBytes is Write for in-memory content.
func WriteBytes(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	_, err := Write(ctx, path, bytes.NewReader(data), perm)
	return err
}

// Remove deletes path, treating a missing file as success.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *ctxReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
