package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/airline-seat-reservation/internal/model"
)

// NewsRepo provides CRUD for operator-published news articles.
type NewsRepo struct {
	db *sql.DB
}

// NewNewsRepo constructs a NewsRepo with the given DB handle.
func NewNewsRepo(db *sql.DB) *NewsRepo {
	return &NewsRepo{db: db}
}

// Create inserts an article. On success the ID is populated.
func (r *NewsRepo) Create(ctx context.Context, n *model.News) error {
	const q = `INSERT INTO news (title, content, category, created_at, updated_at)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, n.Title, n.Content, n.Category, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	n.ID = uint64(id)
	return nil
}

// Update rewrites title, content and category of an article.
func (r *NewsRepo) Update(ctx context.Context, id uint64, title, content, category string, at time.Time) error {
	const q = `UPDATE news SET title = ?, content = ?, category = ?, updated_at = ? WHERE news_id = ?`
	res, err := r.db.ExecContext(ctx, q, title, content, category, at, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNewsNotFound
	}
	return nil
}

// Delete removes an article.
func (r *NewsRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM news WHERE news_id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNewsNotFound
	}
	return nil
}

// ListAll returns every article, newest first.
func (r *NewsRepo) ListAll(ctx context.Context) ([]model.News, error) {
	const q = `SELECT news_id, title, content, category, created_at, updated_at
	           FROM news ORDER BY created_at DESC, news_id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.News
	for rows.Next() {
		var n model.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Category, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
