package db

import (
	"context"
	"database/sql"
)

// Queries is the post journal: one row per status change that was
// successfully published, so there is an audit trail of what the bot
// said and when.
type Queries struct {
	db *sql.DB
}

func New(database *sql.DB) *Queries {
	return &Queries{db: database}
}

type CreatePostParams struct {
	Time   int64
	Player string
	Status string
	Uri    string
	Cid    string
}

func (q *Queries) CreatePost(ctx context.Context, params CreatePostParams) error {
	_, err := q.db.ExecContext(
		ctx,
		`INSERT INTO post_journal (time, player, status, uri, cid) VALUES (?, ?, ?, ?, ?)`,
		params.Time, params.Player, params.Status, params.Uri, params.Cid,
	)
	return err
}

type Post struct {
	Id     int64
	Time   int64
	Player string
	Status string
	Uri    string
	Cid    string
}

func (q *Queries) GetPosts(ctx context.Context, limit int64) ([]Post, error) {
	rows, err := q.db.QueryContext(
		ctx,
		`SELECT id, time, player, status, uri, cid FROM post_journal ORDER BY time DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		err := rows.Scan(&p.Id, &p.Time, &p.Player, &p.Status, &p.Uri, &p.Cid)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
