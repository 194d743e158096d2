package uploads

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/almashriq-motors/dealership-backend/pkg/config"
	pkgerrors "github.com/almashriq-motors/dealership-backend/pkg/errors"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func testMediaConfig(t *testing.T) config.MediaConfig {
	t.Helper()
	return config.MediaConfig{
		Dir:            t.TempDir(),
		PublicBasePath: "/uploads",
		MaxUploadBytes: 5 * 1024 * 1024,
		MaxFiles:       10,
	}
}

// multipartFiles builds real multipart.FileHeader values the way the HTTP
// layer would, by writing and re-parsing a multipart body.
func multipartFiles(t *testing.T, contents ...[]byte) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for i, content := range contents {
		part, err := writer.CreateFormFile("images", "upload.bin")
		if err != nil {
			t.Fatalf("creating form file %d: %v", i, err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("writing form file %d: %v", i, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	reader := multipart.NewReader(&body, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("parsing multipart body: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["images"]
}

func TestStoreWritesImageUnderFreshName(t *testing.T) {
	cfg := testMediaConfig(t)
	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	paths, err := svc.Store(context.Background(), multipartFiles(t, pngBytes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected 1 stored path, got %d", len(paths))
	}
	if !strings.HasPrefix(paths[0], "/uploads/") {
		t.Fatalf("expected a public path, got %q", paths[0])
	}
	if !strings.HasSuffix(paths[0], ".png") {
		t.Fatalf("expected a sniffed .png extension, got %q", paths[0])
	}
	if strings.Contains(paths[0], "upload.bin") {
		t.Fatal("client file name must not leak into the stored name")
	}

	onDisk := filepath.Join(cfg.Dir, filepath.Base(paths[0]))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if !bytes.Equal(data, pngBytes) {
		t.Fatal("stored bytes differ from the upload")
	}
}

func TestStoreUniqueNamesForIdenticalUploads(t *testing.T) {
	svc, err := NewService(testMediaConfig(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	paths, err := svc.Store(context.Background(), multipartFiles(t, pngBytes, pngBytes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 stored paths, got %d", len(paths))
	}
	if paths[0] == paths[1] {
		t.Fatalf("identical uploads must still get distinct names, both %q", paths[0])
	}
}

func TestStoreRejectsNonImage(t *testing.T) {
	cfg := testMediaConfig(t)
	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Store(context.Background(), multipartFiles(t, []byte("plain text, not an image")))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnsupportedMedia {
		t.Fatalf("expected unsupported-media error, got %v", err)
	}
}

func TestStoreRejectsOversizedFile(t *testing.T) {
	cfg := testMediaConfig(t)
	cfg.MaxUploadBytes = 8
	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Store(context.Background(), multipartFiles(t, pngBytes))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnsupportedMedia {
		t.Fatalf("expected unsupported-media error, got %v", err)
	}
}

func TestStoreRejectsTooManyFiles(t *testing.T) {
	cfg := testMediaConfig(t)
	cfg.MaxFiles = 1
	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Store(context.Background(), multipartFiles(t, pngBytes, pngBytes))
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestStoreCleansUpOnPartialFailure(t *testing.T) {
	cfg := testMediaConfig(t)
	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Store(context.Background(), multipartFiles(t, pngBytes, []byte("not an image")))
	if err == nil {
		t.Fatal("expected the batch to fail")
	}

	entries, err := os.ReadDir(cfg.Dir)
	if err != nil {
		t.Fatalf("reading media dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected the failed batch to be cleaned up, found %d files", len(entries))
	}
}

func TestStoreNoFilesIsNoop(t *testing.T) {
	svc, err := NewService(testMediaConfig(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	paths, err := svc.Store(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("expected no stored paths, got %d", len(paths))
	}
}
