package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/omran/construction-projects/internal/model"
	"github.com/omran/construction-projects/internal/repository"
)

// Store keeps uploaded binaries on local disk under a uuid-derived name and
// records them in the file_uploads table.
type Store struct {
	dir     string
	baseURL string
	files   *repository.FileRepository
}

func NewStore(dir, baseURL string, files *repository.FileRepository) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Store{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), files: files}, nil
}

func (s *Store) Dir() string { return s.dir }

// Save writes the uploaded file to disk and records it. The stored name is
// a fresh uuid with the original extension, so names never collide.
func (s *Store) Save(ctx context.Context, header *multipart.FileHeader) (*model.FileUpload, error) {
	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	storedName := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	path := filepath.Join(s.dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return nil, err
	}

	file := &model.FileUpload{
		OriginalName: filepath.Base(header.Filename),
		StoredName:   storedName,
		Size:         size,
		ContentType:  header.Header.Get("Content-Type"),
	}
	if err := s.files.Create(ctx, file); err != nil {
		os.Remove(path)
		return nil, err
	}
	return file, nil
}

// URLFor resolves a stored file ID to its public URL. Unknown files resolve
// to nil; callers treat a missing file as an absent value, not an error.
func (s *Store) URLFor(ctx context.Context, fileID uint) *string {
	file, err := s.files.Get(ctx, fileID)
	if err != nil {
		return nil
	}
	url := s.baseURL + "/" + file.StoredName
	return &url
}
