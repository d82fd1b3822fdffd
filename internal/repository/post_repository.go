package repository

import (
	"context"

	"github.com/cycy2xxx/vulnerable-app/internal/database"
	"github.com/cycy2xxx/vulnerable-app/internal/model"
)

// PostRepo reads the posts table.
type PostRepo struct{ Store *database.Store }

func NewPostRepo(s *database.Store) *PostRepo { return &PostRepo{Store: s} }

// ListAll returns every post, newest id last. Post content is rendered
// as-is by the admin view; one seed post carries a cleartext database
// credential in its body.
func (r *PostRepo) ListAll(ctx context.Context) ([]model.Post, error) {
	db, err := r.Store.Open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		"SELECT id, user_id, title, content, created_at FROM posts ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Post
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Content, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
