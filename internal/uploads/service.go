package uploads

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/almashriq-motors/dealership-backend/pkg/config"
	pkgerrors "github.com/almashriq-motors/dealership-backend/pkg/errors"
)

const (
	msgOnlyImages   = "يُسمح برفع ملفات الصور فقط"
	msgFileTooLarge = "حجم الملف يتجاوز الحد المسموح"
	msgTooManyFiles = "عدد الصور يتجاوز الحد المسموح"
)

// Service stores request attachments on local disk and hands back the
// public paths they are served under.
type Service interface {
	Store(ctx context.Context, files []*multipart.FileHeader) ([]string, error)
}

type service struct {
	dir      string
	basePath string
	maxBytes int64
	maxFiles int
}

// NewService prepares the upload directory and returns a disk-backed store.
func NewService(cfg config.MediaConfig) (Service, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("media dir required")
	}
	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("max upload bytes must be positive")
	}
	if cfg.MaxFiles <= 0 {
		return nil, fmt.Errorf("max files must be positive")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating media dir: %w", err)
	}
	return &service{
		dir:      cfg.Dir,
		basePath: strings.TrimSuffix(cfg.PublicBasePath, "/"),
		maxBytes: cfg.MaxUploadBytes,
		maxFiles: cfg.MaxFiles,
	}, nil
}

// Store writes every attachment under a fresh unique name. The content type
// is sniffed from the bytes, never trusted from the client headers. On any
// failure the files already written by this call are removed.
func (s *service) Store(_ context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if len(files) > s.maxFiles {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, msgTooManyFiles).
			WithDetails(map[string]any{"max_files": s.maxFiles})
	}

	written := make([]string, 0, len(files))
	paths := make([]string, 0, len(files))
	for _, fh := range files {
		name, err := s.storeOne(fh)
		if err != nil {
			for _, stale := range written {
				os.Remove(stale)
			}
			return nil, err
		}
		written = append(written, filepath.Join(s.dir, name))
		paths = append(paths, path.Join(s.basePath, name))
	}
	return paths, nil
}

func (s *service) storeOne(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxBytes {
		return "", pkgerrors.New(pkgerrors.CodeUnsupportedMedia, msgFileTooLarge).
			WithDetails(map[string]any{"max_bytes": s.maxBytes, "file": fh.Filename})
	}

	src, err := fh.Open()
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "opening attachment")
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "sniffing attachment type")
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", pkgerrors.New(pkgerrors.CodeUnsupportedMedia, msgOnlyImages).
			WithDetails(map[string]any{"detected": mtype.String(), "file": fh.Filename})
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rewinding attachment")
	}

	name := uuid.NewString() + mtype.Extension()
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating attachment file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "writing attachment file")
	}
	return name, nil
}
