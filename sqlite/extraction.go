package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docxtext"
	"github.com/google/uuid"
)

// timeFormat keeps a fixed width so extracted_at sorts lexically.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Compile-time interface verification.
var _ docxtext.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements docxtext.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// hashText computes xxHash of text and returns it as a hex string.
// Matches the hash extract.Service stamps on new extractions.
func hashText(text string) string {
	return hex.EncodeToString(binary.BigEndian.AppendUint64(nil, xxhash.Sum64String(text)))
}

// CreateExtraction saves an extraction with a generated ID.
// ExtractedAt and ContentHash are filled in when empty.
func (s *ExtractionService) CreateExtraction(ctx context.Context, e *docxtext.Extraction) error {
	if err := e.Validate(); err != nil {
		return err
	}

	e.ID = uuid.New().String()
	if e.ExtractedAt.IsZero() {
		e.ExtractedAt = time.Now()
	}
	e.ExtractedAt = e.ExtractedAt.UTC()
	if e.ContentHash == "" {
		e.ContentHash = hashText(e.Text)
	}
	if e.Mode == "" {
		e.Mode = docxtext.ModeApproximate
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO extractions (id, path, entry, mode, text, total_length, content_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Path, e.Entry, string(e.Mode), e.Text, e.TotalLength, e.ContentHash,
		e.ExtractedAt.Format(timeFormat))

	return err
}

// FindExtractionByID retrieves an extraction by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*docxtext.Extraction, error) {
	e, err := scanExtraction(s.db.QueryRowContext(ctx, `
		SELECT id, path, entry, mode, text, total_length, content_hash, extracted_at
		FROM extractions
		WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docxtext.Errorf(docxtext.ENOTFOUND, "extraction %q not found", id)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// FindExtractions retrieves extractions matching the filter, newest first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter docxtext.ExtractionFilter) ([]*docxtext.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, path, entry, mode, text, total_length, content_hash, extracted_at FROM extractions WHERE 1=1")

	if filter.Path != nil {
		query.WriteString(" AND path = ?")
		args = append(args, *filter.Path)
	}

	query.WriteString(" ORDER BY extracted_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	extractions := []*docxtext.Extraction{}
	for rows.Next() {
		e, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		extractions = append(extractions, e)
	}

	return extractions, rows.Err()
}

// DeleteExtraction permanently removes an extraction.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docxtext.Errorf(docxtext.ENOTFOUND, "extraction %q not found", id)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExtraction(row scanner) (*docxtext.Extraction, error) {
	var e docxtext.Extraction
	var mode, extractedAt string

	if err := row.Scan(&e.ID, &e.Path, &e.Entry, &mode, &e.Text, &e.TotalLength,
		&e.ContentHash, &extractedAt); err != nil {
		return nil, err
	}
	e.Mode = docxtext.Mode(mode)

	var err error
	e.ExtractedAt, err = parseTime(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}
	return &e, nil
}
