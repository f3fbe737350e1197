package session

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/stockdesk/internal/dbx"
)

const (
	keyUserID      = "user_id"
	keyDisplayName = "display_name"
	keyEmail       = "email"
	keyToken       = "token"
	keySavedAt     = "saved_at"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, rec Record) error {
	values := map[string]string{
		keyUserID:      rec.UserID,
		keyDisplayName: rec.DisplayName,
		keyEmail:       rec.Email,
		keyToken:       rec.Token,
		keySavedAt:     rec.SavedAt.UTC().Format(time.RFC3339),
	}
	for k, v := range values {
		if err := r.set(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRepository) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, []byte(value))
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (Record, bool, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM session`)
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to load session: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var (
			key   string
			value []byte
		)
		if err := rows.Scan(&key, &value); err != nil {
			return Record{}, false, fmt.Errorf("failed to scan session row: %w", err)
		}
		values[key] = string(value)
	}
	if err := rows.Err(); err != nil {
		return Record{}, false, fmt.Errorf("failed to iterate session rows: %w", err)
	}

	if values[keyUserID] == "" {
		return Record{}, false, nil
	}

	rec := Record{
		UserID:      values[keyUserID],
		DisplayName: values[keyDisplayName],
		Email:       values[keyEmail],
		Token:       values[keyToken],
	}
	if s := values[keySavedAt]; s != "" {
		if rec.SavedAt, err = time.Parse(time.RFC3339, s); err != nil {
			return Record{}, false, fmt.Errorf("corrupt session timestamp %q: %w", s, err)
		}
	}
	return rec, true, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
