package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/socialfeed-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

const postSelect = `
	SELECT p.id, p.user_id, p.content, p.created_at, p.updated_at, u.id, u.username, u.email
	FROM posts p
	JOIN users u ON u.id = p.user_id`

// Create inserts the post and its media in one transaction and returns it with
// the author summary attached.
func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	const insertPost = `
		INSERT INTO posts (id, user_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	const insertMedia = `
		INSERT INTO post_media (id, post_id, media_url, created_at)
		VALUES ($1, $2, $3, $4)`

	err := pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertPost, post.ID, post.AuthorID, post.Content, post.CreatedAt, post.UpdatedAt); err != nil {
			return err
		}
		for _, m := range post.Media {
			if _, err := tx.Exec(ctx, insertMedia, m.ID, post.ID, m.URL, m.CreatedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.Post{}, model.ErrReferenceMissing
		}
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	saved, err := r.GetByID(ctx, post.ID)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to load created post: %w", err)
	}
	return saved, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	query := postSelect + ` WHERE p.id = $1`

	var p model.Post
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.AuthorID, &p.Content, &p.CreatedAt, &p.UpdatedAt,
		&p.Author.ID, &p.Author.Username, &p.Author.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	posts := []model.Post{p}
	if err := r.attachMedia(ctx, posts); err != nil {
		return model.Post{}, err
	}
	return posts[0], nil
}

// ListByAuthors sends the page query and the count query in a single batch.
func (r *PostRepository) ListByAuthors(ctx context.Context, authorIDs []uuid.UUID, limit, offset int) ([]model.Post, int, error) {
	if len(authorIDs) == 0 {
		return []model.Post{}, 0, nil
	}

	ids := uuidStrings(authorIDs)

	batch := &pgx.Batch{}
	batch.Queue(postSelect+`
		WHERE p.user_id = ANY($1::text[]::uuid[])
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2 OFFSET $3`, ids, limit, offset)
	batch.Queue(`SELECT COUNT(*) FROM posts WHERE user_id = ANY($1::text[]::uuid[])`, ids)

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	rows, err := br.Query()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	posts, err := scanPosts(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan posts: %w", err)
	}

	var total int
	if err := br.QueryRow().Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	if err := br.Close(); err != nil {
		return nil, 0, fmt.Errorf("failed to close batch: %w", err)
	}

	if err := r.attachMedia(ctx, posts); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func scanPosts(rows pgx.Rows) ([]model.Post, error) {
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		var p model.Post
		err := rows.Scan(
			&p.ID, &p.AuthorID, &p.Content, &p.CreatedAt, &p.UpdatedAt,
			&p.Author.ID, &p.Author.Username, &p.Author.Email,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

// attachMedia batch-loads media for posts and fills their Media slices in place.
func (r *PostRepository) attachMedia(ctx context.Context, posts []model.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(posts))
	index := make(map[uuid.UUID]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
		index[p.ID] = i
		posts[i].Media = []model.Media{}
	}

	const query = `
		SELECT id, post_id, media_url, created_at
		FROM post_media
		WHERE post_id = ANY($1::text[]::uuid[])
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, uuidStrings(ids))
	if err != nil {
		return fmt.Errorf("failed to list post media: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m model.Media
		if err := rows.Scan(&m.ID, &m.PostID, &m.URL, &m.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan post media: %w", err)
		}
		if i, ok := index[m.PostID]; ok {
			posts[i].Media = append(posts[i].Media, m)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to list post media: %w", err)
	}
	return nil
}
