package repository

import (
	"context"
	"errors"
	"fmt"

	"cinetrack/internal/data/entity"
	"cinetrack/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByMedia(ctx context.Context, tmdbID int, itemType entity.MediaType, limit, offset int) ([]*entity.ReviewWithAuthor, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	GetMediaStats(ctx context.Context, tmdbID int, itemType entity.MediaType) (float64, int64, error) // rating, count
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, tmdb_id, item_type, rating, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.TmdbID,
		review.ItemType,
		review.Rating,
		review.Body,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.Int("tmdb_id", review.TmdbID),
		)
		return fmt.Errorf("create review for %d/%s by user %s: %w",
			review.TmdbID, review.ItemType, review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, user_id, tmdb_id, item_type, rating, body, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.UserID,
		&review.TmdbID,
		&review.ItemType,
		&review.Rating,
		&review.Body,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return &review, nil
}

// FindByMedia returns reviews of one title joined with the author's public fields.
func (r *reviewRepository) FindByMedia(ctx context.Context, tmdbID int, itemType entity.MediaType, limit, offset int) ([]*entity.ReviewWithAuthor, error) {
	query := `
		SELECT r.id, r.user_id, r.tmdb_id, r.item_type, r.rating, r.body, r.created_at, r.updated_at,
		       u.name, u.photo_url
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.tmdb_id = $1 AND r.item_type = $2
		ORDER BY r.created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, tmdbID, itemType, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by media",
			zap.Error(err),
			zap.Int("tmdb_id", tmdbID),
			zap.String("item_type", string(itemType)),
		)
		return nil, fmt.Errorf("find reviews for %d/%s: %w", tmdbID, itemType, err)
	}
	defer rows.Close()

	reviews := make([]*entity.ReviewWithAuthor, 0)
	for rows.Next() {
		var review entity.ReviewWithAuthor
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.TmdbID,
			&review.ItemType,
			&review.Rating,
			&review.Body,
			&review.CreatedAt,
			&review.UpdatedAt,
			&review.AuthorName,
			&review.AuthorPhotoURL,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, tmdb_id, item_type, rating, body, created_at, updated_at
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find reviews by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	reviews := make([]*entity.Review, 0)
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.TmdbID,
			&review.ItemType,
			&review.Rating,
			&review.Body,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count reviews by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, body = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.Body,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update review %s: %w", review.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete review %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}

func (r *reviewRepository) GetMediaStats(ctx context.Context, tmdbID int, itemType entity.MediaType) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0)::float8 AS avg_rating,
			COUNT(*) AS review_count
		FROM reviews
		WHERE tmdb_id = $1 AND item_type = $2
	`

	var avgRating float64
	var reviewCount int64
	err := r.db.QueryRow(ctx, query, tmdbID, itemType).Scan(&avgRating, &reviewCount)
	if err != nil {
		r.log.Error("Failed to get media review stats",
			zap.Error(err),
			zap.Int("tmdb_id", tmdbID),
			zap.String("item_type", string(itemType)),
		)
		return 0, 0, fmt.Errorf("get review stats for %d/%s: %w", tmdbID, itemType, err)
	}

	return avgRating, reviewCount, nil
}
