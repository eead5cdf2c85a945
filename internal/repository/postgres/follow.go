package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/socialfeed-server/internal/model"
)

var _ model.FollowStore = (*FollowRepository)(nil)

// FollowRepository stores the directed follow graph. Uniqueness of an edge is
// enforced by the (follower_id, following_id) primary key, so concurrent
// duplicate inserts resolve to exactly one row.
type FollowRepository struct {
	db *Connection
}

func NewFollowRepository(db *Connection) *FollowRepository {
	return &FollowRepository{
		db: db,
	}
}

func (r *FollowRepository) Create(ctx context.Context, followerID, followingID uuid.UUID) (model.Follow, error) {
	const query = `
		INSERT INTO follows (follower_id, following_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING follower_id, following_id, created_at`

	var f model.Follow
	err := r.db.QueryRow(ctx, query, followerID, followingID).Scan(&f.FollowerID, &f.FollowingID, &f.CreatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return model.Follow{}, model.ErrAlreadyExists
		case isForeignKeyViolation(err):
			return model.Follow{}, model.ErrReferenceMissing
		}
		return model.Follow{}, fmt.Errorf("failed to create follow: %w", err)
	}

	return f, nil
}

func (r *FollowRepository) Delete(ctx context.Context, followerID, followingID uuid.UUID) error {
	const query = `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`

	cmd, err := r.db.Exec(ctx, query, followerID, followingID)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *FollowRepository) Get(ctx context.Context, followerID, followingID uuid.UUID) (model.Follow, error) {
	const query = `
		SELECT follower_id, following_id, created_at
		FROM follows WHERE follower_id = $1 AND following_id = $2`

	var f model.Follow
	err := r.db.QueryRow(ctx, query, followerID, followingID).Scan(&f.FollowerID, &f.FollowingID, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Follow{}, model.ErrNotFound
		}
		return model.Follow{}, fmt.Errorf("failed to get follow: %w", err)
	}
	return f, nil
}

func (r *FollowRepository) ListFollowers(ctx context.Context, userID uuid.UUID) ([]model.Profile, error) {
	const query = `
		SELECT u.id, u.email, u.username, u.created_at, u.updated_at
		FROM follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.following_id = $1
		ORDER BY f.created_at DESC, f.follower_id`

	profiles, err := r.listProfiles(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	return profiles, nil
}

func (r *FollowRepository) ListFollowing(ctx context.Context, userID uuid.UUID) ([]model.Profile, error) {
	const query = `
		SELECT u.id, u.email, u.username, u.created_at, u.updated_at
		FROM follows f
		JOIN users u ON u.id = f.following_id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC, f.following_id`

	profiles, err := r.listProfiles(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}
	return profiles, nil
}

func (r *FollowRepository) ListFollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const query = `SELECT following_id FROM follows WHERE follower_id = $1`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list following ids: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("failed to scan following ids: %w", err)
	}
	return ids, nil
}

func (r *FollowRepository) listProfiles(ctx context.Context, query string, userID uuid.UUID) ([]model.Profile, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []model.Profile{}
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.Username, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}
