package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ResumeStore retains uploaded resume files under a single directory.
// Records reference files by bare filename only; the store rejects any
// reference that would escape its directory.
type ResumeStore struct {
	dir    string
	logger *zap.Logger
}

func NewResumeStore(dir string, logger *zap.Logger) (*ResumeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create resume dir: %w", err)
	}

	return &ResumeStore{dir: dir, logger: logger}, nil
}

// Save writes the uploaded content to a new file and returns its reference.
// Filenames embed the job id and upload time plus a random disambiguator,
// so two uploads for the same job in the same millisecond cannot collide.
func (s *ResumeStore) Save(jobID int, ext string, r io.Reader) (string, error) {
	if ext == "" || !strings.HasPrefix(ext, ".") {
		ext = ".pdf"
	}

	name := fmt.Sprintf("resume-job%d-%d-%s%s",
		jobID,
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		ext,
	)

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create resume file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())

		return "", fmt.Errorf("write resume file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())

		return "", fmt.Errorf("close resume file: %w", err)
	}

	s.logger.Info("resume stored", zap.String("file", name), zap.Int("job_id", jobID))

	return name, nil
}

// Path resolves a stored reference to its filesystem path, failing with
// ErrResumeNotFound when the reference is invalid or the file is gone.
func (s *ResumeStore) Path(ref string) (string, error) {
	if ref == "" || ref != filepath.Base(ref) {
		return "", ErrResumeNotFound
	}

	path := filepath.Join(s.dir, ref)
	if _, err := os.Stat(path); err != nil {
		return "", ErrResumeNotFound
	}

	return path, nil
}

// Delete removes a stored resume. Deleting an empty or already-removed
// reference is not an error, so rejection cleanup stays idempotent.
func (s *ResumeStore) Delete(ref string) error {
	if ref == "" {
		return nil
	}
	if ref != filepath.Base(ref) {
		return ErrResumeNotFound
	}

	if err := os.Remove(filepath.Join(s.dir, ref)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("remove resume file: %w", err)
	}

	s.logger.Info("resume deleted", zap.String("file", ref))

	return nil
}
