package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/autohext"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ autohext.TemplateService = (*TemplateService)(nil)

// TemplateService implements autohext.TemplateService using SQLite.
type TemplateService struct {
	db *DB
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(db *DB) *TemplateService {
	return &TemplateService{db: db}
}

// Fingerprint returns the xxHash of a Hext template as a hex string.
// Identical templates built from different records share a fingerprint.
func Fingerprint(hext string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(hext))
	return hex.EncodeToString(b)
}

// CreateTemplate stores a new template.
func (s *TemplateService) CreateTemplate(ctx context.Context, tmpl *autohext.Template) error {
	if err := tmpl.Validate(); err != nil {
		return err
	}

	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM templates WHERE name = ?", tmpl.Name).Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return autohext.Errorf(autohext.ECONFLICT, "template %q already exists", tmpl.Name)
	}

	tmpl.ID = uuid.New().String()
	tmpl.Columns = autohext.CountColumns(tmpl.Hext)
	tmpl.Fingerprint = Fingerprint(tmpl.Hext)
	tmpl.CreatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO templates (id, name, source, hext, columns, fingerprint, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, tmpl.ID, tmpl.Name, tmpl.Source, tmpl.Hext, tmpl.Columns, tmpl.Fingerprint,
		tmpl.CreatedAt.Format(time.RFC3339))

	return err
}

// FindTemplateByID retrieves a template by ID.
func (s *TemplateService) FindTemplateByID(ctx context.Context, id string) (*autohext.Template, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, source, hext, columns, fingerprint, created_at
		FROM templates
		WHERE id = ?
	`, id)

	tmpl, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return nil, autohext.Errorf(autohext.ENOTFOUND, "template not found")
	}
	if err != nil {
		return nil, err
	}
	return tmpl, nil
}

// FindTemplates retrieves templates matching the filter, newest first.
func (s *TemplateService) FindTemplates(ctx context.Context, filter autohext.TemplateFilter) ([]*autohext.Template, error) {
	var cond conditions
	cond.eq("id", filter.ID)
	cond.eq("name", filter.Name)
	cond.eq("fingerprint", filter.Fingerprint)

	query := "SELECT id, name, source, hext, columns, fingerprint, created_at FROM templates" +
		cond.where() +
		" ORDER BY created_at DESC, name ASC" +
		page(filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, cond.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*autohext.Template
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}

	return templates, rows.Err()
}

// DeleteTemplate permanently removes a template.
func (s *TemplateService) DeleteTemplate(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM templates WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return autohext.Errorf(autohext.ENOTFOUND, "template not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row scanner) (*autohext.Template, error) {
	var tmpl autohext.Template
	var createdAt string

	if err := row.Scan(&tmpl.ID, &tmpl.Name, &tmpl.Source, &tmpl.Hext, &tmpl.Columns,
		&tmpl.Fingerprint, &createdAt); err != nil {
		return nil, err
	}

	var err error
	tmpl.CreatedAt, err = parseTimestamp(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &tmpl, nil
}
