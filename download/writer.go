package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/petal-labs/aidraw/core"
)

// Progress is called after each image is written.
type Progress func(index int, path string, size int)

// Writer downloads image URLs one at a time and writes each to disk.
type Writer struct {
	client   *http.Client
	progress Progress
	dirMode  os.FileMode
	fileMode os.FileMode
}

// Option configures a Writer.
type Option func(*Writer)

// WithHTTPClient sets the client used for downloads.
func WithHTTPClient(client *http.Client) Option {
	return func(w *Writer) {
		if client != nil {
			w.client = client
		}
	}
}

// WithProgress installs a callback invoked after each saved image.
func WithProgress(fn Progress) Option {
	return func(w *Writer) {
		w.progress = fn
	}
}

// NewWriter creates a Writer. Downloads use http.DefaultClient unless
// WithHTTPClient is given.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{
		client:   http.DefaultClient,
		dirMode:  0o755,
		fileMode: 0o644,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// SaveAll downloads urls in order and writes image i (1-based) to
// RenderPath(template, sentence, i). It stops at the first failure; files
// already written stay on disk and their paths are returned with the error.
func (w *Writer) SaveAll(ctx context.Context, urls []string, template, sentence string) ([]string, error) {
	written := make([]string, 0, len(urls))
	for i, url := range urls {
		num := i + 1
		path, err := w.Save(ctx, num, url, RenderPath(template, sentence, num))
		if err != nil {
			var dlErr *Error
			if errors.As(err, &dlErr) {
				dlErr.Saved = written
			}
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// Save downloads url and writes the body to path, creating missing parent
// directories. An existing file is truncated.
func (w *Writer) Save(ctx context.Context, index int, url, path string) (string, error) {
	data, err := w.fetch(ctx, index, url)
	if err != nil {
		return "", err
	}

	if err := w.write(path, data); err != nil {
		return "", &Error{Index: index, URL: url, Path: path, Err: core.ErrFilesystem, Cause: err}
	}

	if w.progress != nil {
		w.progress(index, path, len(data))
	}
	return path, nil
}

// fetch reads the whole body before anything touches the filesystem, so a
// failed download never leaves a truncated file behind.
func (w *Writer) fetch(ctx context.Context, index int, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Index: index, URL: url, Err: core.ErrDownload, Cause: err}
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, &Error{Index: index, URL: url, Err: core.ErrNetwork, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Index: index, URL: url, Status: resp.StatusCode, Err: core.ErrDownload}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Index: index, URL: url, Err: core.ErrNetwork, Cause: fmt.Errorf("read body: %w", err)}
	}
	return data, nil
}

func (w *Writer) write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, w.dirMode); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, w.fileMode)
}
