package artifacts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/yusuf/campushub/internal/app/models"
	"github.com/yusuf/campushub/internal/pkg/apperrors"
	"github.com/yusuf/campushub/internal/pkg/logger"
)

// Content types served per artifact extension
const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Store keeps generated report documents on the local filesystem for a fixed
// retention window. Every artifact is deleted after that window, whether or
// not it was ever downloaded: a per-artifact timer handles the in-process
// case and a cron sweep removes files orphaned by restarts.
type Store struct {
	basePath  string
	retention time.Duration
	cron      *cron.Cron
	logger    zerolog.Logger
}

// Artifact is an opened report document ready to be streamed.
type Artifact struct {
	io.ReadCloser
	Name        string
	ContentType string
	Size        int64
}

// NewStore creates the storage directory if needed and starts the orphan
// sweep.
func NewStore(basePath string, retention, sweepInterval time.Duration) (*Store, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	s := &Store{
		basePath:  basePath,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.WithComponent("artifact_store"),
	}

	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", sweepInterval), s.sweep); err != nil {
		return nil, fmt.Errorf("failed to schedule retention sweep: %w", err)
	}
	s.cron.Start()

	s.logger.Info().Str("path", basePath).Dur("retention", retention).Msg("Artifact store ready")
	return s, nil
}

// Persist writes a generated document and schedules its deletion. The
// returned filename is `<kind>-report-<unixMillis>.<ext>`; a same-millisecond
// collision bumps the timestamp until the create succeeds.
func (s *Store) Persist(data []byte, kind models.ReportKind, format models.ReportFormat) (string, error) {
	ext := "pdf"
	if format == models.ReportFormatExcel {
		ext = "xlsx"
	}

	timestamp := time.Now().UnixMilli()
	var filename string
	var file *os.File

	for {
		filename = fmt.Sprintf("%s-report-%d.%s", kind, timestamp, ext)

		var err error
		file, err = os.OpenFile(filepath.Join(s.basePath, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return "", fmt.Errorf("failed to create artifact file: %w", err)
		}
		timestamp++
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(filepath.Join(s.basePath, filename))
		return "", fmt.Errorf("failed to write artifact file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close artifact file: %w", err)
	}

	time.AfterFunc(s.retention, func() { s.remove(filename) })

	s.logger.Info().Str("filename", filename).Int("bytes", len(data)).Msg("Artifact persisted")
	return filename, nil
}

// Open validates the filename and opens the artifact for streaming. An open
// handle stays readable even if the retention deletion fires mid-download.
func (s *Store) Open(filename string) (*Artifact, error) {
	if err := ValidateFilename(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.basePath, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("failed to open artifact: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat artifact: %w", err)
	}

	return &Artifact{
		ReadCloser:  file,
		Name:        filename,
		ContentType: contentTypeFor(filename),
		Size:        info.Size(),
	}, nil
}

// ValidateFilename rejects traversal sequences and separators before any
// filesystem access.
func ValidateFilename(filename string) error {
	if filename == "" ||
		strings.Contains(filename, "..") ||
		strings.ContainsAny(filename, `/\`) {
		return apperrors.ErrInvalidFilename
	}
	return nil
}

// Close stops the retention sweep.
func (s *Store) Close() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// sweep deletes any stored file older than the retention window. Per-artifact
// timers already cover normal operation; the sweep catches files whose timer
// was lost to a process restart.
func (s *Store) sweep() {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Retention sweep failed to read storage directory")
		return
	}

	cutoff := time.Now().Add(-s.retention)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			s.remove(entry.Name())
		}
	}
}

// remove deletes an artifact. Failures are logged, never escalated.
func (s *Store) remove(filename string) {
	err := os.Remove(filepath.Join(s.basePath, filename))
	switch {
	case err == nil:
		s.logger.Info().Str("filename", filename).Msg("Artifact deleted")
	case os.IsNotExist(err):
		// already gone, idempotent
	default:
		s.logger.Warn().Err(err).Str("filename", filename).Msg("Failed to delete artifact")
	}
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfContentType
	case ".xlsx":
		return xlsxContentType
	default:
		return "application/octet-stream"
	}
}
