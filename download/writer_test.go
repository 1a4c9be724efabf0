package download

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/petal-labs/aidraw/core"
)

func newImageServer(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) error = %v", path, err)
	}
	return string(data)
}

func TestSaveAll(t *testing.T) {
	server := newImageServer(t, map[string]string{"/1.jpg": "first", "/2.jpg": "second"})
	dir := t.TempDir()
	template := filepath.Join(dir, DefaultTemplate)

	var progress []int
	w := NewWriter(WithHTTPClient(server.Client()), WithProgress(func(index int, path string, size int) {
		progress = append(progress, index)
	}))

	written, err := w.SaveAll(context.Background(), []string{server.URL + "/1.jpg", server.URL + "/2.jpg"}, template, "a red fox")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		filepath.Join(dir, "images", "a red fox", "aidraw-1.jpg"),
		filepath.Join(dir, "images", "a red fox", "aidraw-2.jpg"),
	}
	if len(written) != 2 || written[0] != want[0] || written[1] != want[1] {
		t.Fatalf("written = %v, want %v", written, want)
	}
	if got := readFile(t, want[0]); got != "first" {
		t.Errorf("image 1 = %q, want first", got)
	}
	if got := readFile(t, want[1]); got != "second" {
		t.Errorf("image 2 = %q, want second", got)
	}
	if len(progress) != 2 || progress[0] != 1 || progress[1] != 2 {
		t.Errorf("progress = %v, want [1 2]", progress)
	}
}

func TestSaveOverwrites(t *testing.T) {
	server := newImageServer(t, map[string]string{"/img": "short"})
	path := filepath.Join(t.TempDir(), "out.jpg")
	if err := os.WriteFile(path, []byte("a much longer previous body"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := NewWriter(WithHTTPClient(server.Client()))
	for i := 0; i < 2; i++ {
		if _, err := w.Save(context.Background(), 1, server.URL+"/img", path); err != nil {
			t.Fatal(err)
		}
		if got := readFile(t, path); got != "short" {
			t.Errorf("run %d: content = %q, want short", i+1, got)
		}
	}
}

func TestSaveExistingDirectory(t *testing.T) {
	server := newImageServer(t, map[string]string{"/img": "data"})
	dir := filepath.Join(t.TempDir(), "already", "here")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	w := NewWriter(WithHTTPClient(server.Client()))
	if _, err := w.Save(context.Background(), 1, server.URL+"/img", filepath.Join(dir, "x.jpg")); err != nil {
		t.Errorf("Save() into existing dir error = %v", err)
	}
}

func TestSaveBareFilename(t *testing.T) {
	server := newImageServer(t, map[string]string{"/img": "data"})
	t.Chdir(t.TempDir())

	w := NewWriter(WithHTTPClient(server.Client()))
	if _, err := w.Save(context.Background(), 1, server.URL+"/img", "aidraw-1.jpg"); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, "aidraw-1.jpg"); got != "data" {
		t.Errorf("content = %q, want data", got)
	}
}

func TestSaveAllStopsAtFirstFailure(t *testing.T) {
	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.Path)
		if r.URL.Path == "/2.jpg" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.Write([]byte("ok " + r.URL.Path))
	}))
	defer server.Close()

	dir := t.TempDir()
	urls := []string{server.URL + "/1.jpg", server.URL + "/2.jpg", server.URL + "/3.jpg"}
	w := NewWriter(WithHTTPClient(server.Client()))

	written, err := w.SaveAll(context.Background(), urls, filepath.Join(dir, "img-{num}.jpg"), "x")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var dlErr *Error
	if !errors.As(err, &dlErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if dlErr.Index != 2 || dlErr.Status != http.StatusForbidden {
		t.Errorf("Index = %d, Status = %d, want 2 and 403", dlErr.Index, dlErr.Status)
	}
	if !errors.Is(err, core.ErrDownload) {
		t.Error("errors.Is(err, ErrDownload) = false")
	}

	if len(requests) != 2 {
		t.Errorf("requests = %v, want only the first two", requests)
	}
	if len(written) != 1 {
		t.Errorf("written = %v, want one file", written)
	}
	if len(dlErr.Saved) != 1 || dlErr.Saved[0] != filepath.Join(dir, "img-1.jpg") {
		t.Errorf("Saved = %v, want the first path", dlErr.Saved)
	}
	if got := readFile(t, filepath.Join(dir, "img-1.jpg")); got != "ok /1.jpg" {
		t.Errorf("image 1 = %q, partial output should stay on disk", got)
	}
	for _, name := range []string{"img-2.jpg", "img-3.jpg"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("%s should not exist, stat err = %v", name, err)
		}
	}
}

func TestSaveNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	w := NewWriter()
	_, err := w.Save(context.Background(), 1, url+"/img", filepath.Join(t.TempDir(), "x.jpg"))
	if !errors.Is(err, core.ErrNetwork) {
		t.Errorf("errors.Is(err, ErrNetwork) = false, err = %v", err)
	}
}

func TestSaveFilesystemError(t *testing.T) {
	server := newImageServer(t, map[string]string{"/img": "data"})
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := NewWriter(WithHTTPClient(server.Client()))
	_, err := w.Save(context.Background(), 1, server.URL+"/img", filepath.Join(blocker, "sub", "x.jpg"))
	if !errors.Is(err, core.ErrFilesystem) {
		t.Errorf("errors.Is(err, ErrFilesystem) = false, err = %v", err)
	}

	var dlErr *Error
	if !errors.As(err, &dlErr) || dlErr.Path == "" {
		t.Errorf("expected *Error with Path set, got %v", err)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"status", &Error{Index: 2, URL: "https://x/2", Status: 404, Err: core.ErrDownload}, "image 2: GET https://x/2: unexpected status 404"},
		{"write", &Error{Index: 1, URL: "https://x/1", Path: "a/b.jpg", Err: core.ErrFilesystem, Cause: errors.New("denied")}, "image 1: write a/b.jpg: denied"},
		{"network", &Error{Index: 3, URL: "https://x/3", Err: core.ErrNetwork, Cause: errors.New("refused")}, "image 3: GET https://x/3: refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
