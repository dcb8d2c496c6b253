package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/maildraft/pkg/document"
	"github.com/dmitrymomot/maildraft/pkg/store"
)

// Templates implements store.Store on a pgx connection pool.
type Templates struct {
	pool *pgxpool.Pool
}

// New creates a Templates store backed by pool.
func New(pool *pgxpool.Pool) *Templates {
	return &Templates{pool: pool}
}

func (t *Templates) Create(ctx context.Context, tmpl *document.Template) error {
	structured, vars, err := encodePayload(tmpl)
	if err != nil {
		return err
	}

	const q = `INSERT INTO email_templates
		(template_key, name, subject, description, markdown_source, structured_data, variables)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = t.pool.Exec(ctx, q,
		tmpl.Key, tmpl.Name, tmpl.Subject, tmpl.Description, tmpl.MarkdownSource, structured, vars)
	if isUniqueViolation(err) {
		return store.ErrDuplicateKey
	}
	return err
}

func (t *Templates) Update(ctx context.Context, key string, tmpl *document.Template) error {
	if tmpl.Key != key {
		return store.ErrKeyMismatch
	}
	structured, vars, err := encodePayload(tmpl)
	if err != nil {
		return err
	}

	const q = `UPDATE email_templates SET
		name = $2, subject = $3, description = $4, markdown_source = $5,
		structured_data = $6, variables = $7, updated_at = now()
		WHERE template_key = $1`
	tag, err := t.pool.Exec(ctx, q,
		key, tmpl.Name, tmpl.Subject, tmpl.Description, tmpl.MarkdownSource, structured, vars)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (t *Templates) Get(ctx context.Context, key string) (*document.Template, error) {
	const q = `SELECT template_key, name, subject, description, markdown_source, structured_data, variables
		FROM email_templates WHERE template_key = $1`
	tmpl, err := scanTemplate(t.pool.QueryRow(ctx, q, key))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	return tmpl, err
}

func (t *Templates) Delete(ctx context.Context, key string) error {
	tag, err := t.pool.Exec(ctx, `DELETE FROM email_templates WHERE template_key = $1`, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (t *Templates) List(ctx context.Context) ([]*document.Template, error) {
	const q = `SELECT template_key, name, subject, description, markdown_source, structured_data, variables
		FROM email_templates ORDER BY template_key`
	rows, err := t.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*document.Template
	for rows.Next() {
		tmpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tmpl)
	}
	return out, rows.Err()
}

func encodePayload(tmpl *document.Template) (structured, vars []byte, err error) {
	structured, err = json.Marshal(tmpl.Structured)
	if err != nil {
		return nil, nil, errors.Join(ErrFailedToEncodePayload, err)
	}
	vars, err = json.Marshal(tmpl.Variables)
	if err != nil {
		return nil, nil, errors.Join(ErrFailedToEncodePayload, err)
	}
	return structured, vars, nil
}

func scanTemplate(row pgx.Row) (*document.Template, error) {
	var (
		tmpl       document.Template
		structured []byte
		vars       []byte
	)
	if err := row.Scan(&tmpl.Key, &tmpl.Name, &tmpl.Subject, &tmpl.Description,
		&tmpl.MarkdownSource, &structured, &vars); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(structured, &tmpl.Structured); err != nil {
		return nil, errors.Join(ErrFailedToDecodePayload, err)
	}
	if err := json.Unmarshal(vars, &tmpl.Variables); err != nil {
		return nil, errors.Join(ErrFailedToDecodePayload, err)
	}
	return &tmpl, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
