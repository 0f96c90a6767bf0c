// ABOUTME: SQLite-backed review queue for translations that need a human decision
// ABOUTME: Persists items across restarts; resolution happens in a transaction

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"poi-translation-api/core/domain"
	coreerrors "poi-translation-api/core/errors"
)

// ReviewQueue implements interfaces.ReviewQueue on SQLite
type ReviewQueue struct {
	db       *sql.DB
	filePath string
}

// NewReviewQueue opens (or creates) the review database at filePath
func NewReviewQueue(filePath string) (*ReviewQueue, error) {
	if filePath == "" {
		filePath = "review_queue.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// one writer; also keeps a ":memory:" database alive across calls
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	q := &ReviewQueue{db: db, filePath: filePath}
	if err := q.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return q, nil
}

// initSchema creates the review table if it doesn't exist
func (q *ReviewQueue) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS review_items (
			id TEXT PRIMARY KEY,
			poi_name TEXT NOT NULL,
			language TEXT NOT NULL,
			country TEXT NOT NULL DEFAULT '',
			provisional_text TEXT NOT NULL DEFAULT '',
			reason TEXT NOT NULL DEFAULT '',
			sources TEXT NOT NULL DEFAULT '{}',
			status TEXT NOT NULL,
			resolved_text TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL,
			resolved_at INTEGER
		);
		CREATE INDEX IF NOT EXISTS idx_review_status_created ON review_items(status, created_at);
	`
	_, err := q.db.Exec(query)
	return err
}

// Enqueue stores a new pending item
func (q *ReviewQueue) Enqueue(ctx context.Context, item *domain.ReviewItem) error {
	if item == nil || item.ID == "" {
		return errors.New("review item must have an ID")
	}

	sources, err := json.Marshal(item.Sources)
	if err != nil {
		return fmt.Errorf("failed to encode sources: %w", err)
	}

	status := item.Status
	if status == "" {
		status = domain.ReviewPending
	}
	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO review_items (id, poi_name, language, country, provisional_text, reason, sources, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = q.db.ExecContext(ctx, query,
		item.ID, item.POIName, item.LanguageCode, item.CountryCode,
		item.ProvisionalText, item.Reason, string(sources), string(status), createdAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert review item: %w", err)
	}
	return nil
}

const selectColumns = `id, poi_name, language, country, provisional_text, reason, sources, status, resolved_text, created_at, resolved_at`

// Get retrieves an item by ID
func (q *ReviewQueue) Get(ctx context.Context, id string) (*domain.ReviewItem, error) {
	row := q.db.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM review_items WHERE id = ?", id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &coreerrors.NotFoundError{Resource: "review item", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review item: %w", err)
	}
	return item, nil
}

// List returns items with the given status, newest first. An empty status lists all.
func (q *ReviewQueue) List(ctx context.Context, status domain.ReviewStatus, limit int) ([]*domain.ReviewItem, error) {
	var (
		where []string
		args  []interface{}
	)
	if status != "" {
		where = append(where, "status = ?")
		args = append(args, string(status))
	}

	query := "SELECT " + selectColumns + " FROM review_items"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list review items: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.ReviewItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Resolve marks a pending item as resolved with the reviewer's text
func (q *ReviewQueue) Resolve(ctx context.Context, id, text string) (*domain.ReviewItem, error) {
	tx, err := q.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM review_items WHERE id = ?", id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &coreerrors.NotFoundError{Resource: "review item", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load review item: %w", err)
	}

	if err := item.Resolve(text); err != nil {
		return nil, &coreerrors.ValidationError{Field: "status", Message: err.Error()}
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE review_items SET status = ?, resolved_text = ?, resolved_at = ? WHERE id = ?",
		string(item.Status), item.ResolvedText, item.ResolvedAt.UnixNano(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve review item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit resolution: %w", err)
	}
	return item, nil
}

// Stats returns item counts per status
func (q *ReviewQueue) Stats(ctx context.Context) (map[string]int, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT status, COUNT(*) FROM review_items GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := map[string]int{
		string(domain.ReviewPending):  0,
		string(domain.ReviewResolved): 0,
	}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats[status] = count
	}
	return stats, rows.Err()
}

// Ping checks the database connection
func (q *ReviewQueue) Ping(ctx context.Context) error {
	return q.db.PingContext(ctx)
}

// Close closes the database connection
func (q *ReviewQueue) Close() error {
	return q.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(s scanner) (*domain.ReviewItem, error) {
	var (
		item       domain.ReviewItem
		sources    string
		status     string
		createdAt  int64
		resolvedAt sql.NullInt64
	)
	err := s.Scan(&item.ID, &item.POIName, &item.LanguageCode, &item.CountryCode,
		&item.ProvisionalText, &item.Reason, &sources, &status, &item.ResolvedText,
		&createdAt, &resolvedAt)
	if err != nil {
		return nil, err
	}

	if sources != "" {
		if err := json.Unmarshal([]byte(sources), &item.Sources); err != nil {
			return nil, fmt.Errorf("failed to decode sources: %w", err)
		}
	}
	item.Status = domain.ReviewStatus(status)
	item.CreatedAt = time.Unix(0, createdAt)
	if resolvedAt.Valid {
		t := time.Unix(0, resolvedAt.Int64)
		item.ResolvedAt = &t
	}
	return &item, nil
}
