package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-videotube/internal/logger"
)

// ErrNoFile is returned when Upload is called without a file.
var ErrNoFile = errors.New("no file to upload")

// Uploader stages multipart files on local disk and transfers them to the
// remote store. The staged copy never outlives the call.
type Uploader struct {
	store   ObjectStore
	tempDir string
}

func NewUploader(store ObjectStore, tempDir string) (*Uploader, error) {
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Uploader{store: store, tempDir: tempDir}, nil
}

// Upload stores fh under folder and returns the resulting asset.
func (u *Uploader) Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (*Asset, error) {
	if fh == nil {
		return nil, ErrNoFile
	}
	log := logger.FromContext(ctx)

	staged, size, err := u.stage(fh, folder)
	if err != nil {
		return nil, err
	}
	defer u.discard(ctx, staged)

	f, err := os.Open(staged)
	if err != nil {
		return nil, fmt.Errorf("open staged file: %w", err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := path.Join(folder, uuid.NewString()+ext)
	contentType := fh.Header.Get("Content-Type")

	url, err := u.store.Save(ctx, key, f, size, contentType)
	if err != nil {
		log.Errorw("upload failed",
			"folder", folder,
			"file", fh.Filename,
			"error", err,
		)
		return nil, err
	}

	log.Infow("file uploaded",
		"key", key,
		"size", size,
	)
	return &Asset{URL: url, Key: key}, nil
}

// Delete removes a previously uploaded asset. Empty keys are ignored.
func (u *Uploader) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return u.store.Delete(ctx, key)
}

func (u *Uploader) stage(fh *multipart.FileHeader, folder string) (string, int64, error) {
	src, err := fh.Open()
	if err != nil {
		return "", 0, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%s-%d-%s%s",
		path.Base(folder),
		time.Now().UnixNano(),
		uuid.NewString()[:8],
		strings.ToLower(filepath.Ext(fh.Filename)),
	)
	dst, err := os.Create(filepath.Join(u.tempDir, name))
	if err != nil {
		return "", 0, fmt.Errorf("stage upload: %w", err)
	}

	n, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(dst.Name())
		return "", 0, fmt.Errorf("stage upload: %w", err)
	}
	return dst.Name(), n, nil
}

func (u *Uploader) discard(ctx context.Context, staged string) {
	if err := os.Remove(staged); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.FromContext(ctx).Warnw("failed to remove staged file",
			"path", staged,
			"error", err,
		)
	}
}
