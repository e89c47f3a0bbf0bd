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

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entity.Favorite) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Favorite, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
	FindByUserAndMedia(ctx context.Context, userID uuid.UUID, tmdbID int, itemType entity.MediaType) (*entity.Favorite, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type favoriteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFavoriteRepository(db database.PgxIface, log *zap.Logger) FavoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: log.With(zap.String("repository", "favorite")),
	}
}

// Create inserts the favorite; ErrDuplicate when the user already has it.
func (r *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, tmdb_id, item_type, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		favorite.ID,
		favorite.UserID,
		favorite.TmdbID,
		favorite.ItemType,
		favorite.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		r.log.Error("Failed to create favorite",
			zap.Error(err),
			zap.String("user_id", favorite.UserID.String()),
			zap.Int("tmdb_id", favorite.TmdbID),
		)
		return fmt.Errorf("create favorite %d/%s for user %s: %w",
			favorite.TmdbID, favorite.ItemType, favorite.UserID.String(), err)
	}

	return nil
}

func (r *favoriteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Favorite, error) {
	query := `
		SELECT id, user_id, tmdb_id, item_type, created_at
		FROM favorites
		WHERE id = $1
	`

	var fav entity.Favorite
	err := r.db.QueryRow(ctx, query, id).Scan(
		&fav.ID,
		&fav.UserID,
		&fav.TmdbID,
		&fav.ItemType,
		&fav.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find favorite by ID",
			zap.Error(err),
			zap.String("favorite_id", id.String()),
		)
		return nil, fmt.Errorf("find favorite by ID %s: %w", id.String(), err)
	}

	return &fav, nil
}

func (r *favoriteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	query := `
		SELECT id, user_id, tmdb_id, item_type, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find favorites by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find favorites by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	favorites := make([]*entity.Favorite, 0)
	for rows.Next() {
		var fav entity.Favorite
		err := rows.Scan(
			&fav.ID,
			&fav.UserID,
			&fav.TmdbID,
			&fav.ItemType,
			&fav.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan favorite row", zap.Error(err))
			return nil, fmt.Errorf("scan favorite row: %w", err)
		}
		favorites = append(favorites, &fav)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favorite rows: %w", err)
	}

	return favorites, nil
}

func (r *favoriteRepository) FindByUserAndMedia(ctx context.Context, userID uuid.UUID, tmdbID int, itemType entity.MediaType) (*entity.Favorite, error) {
	query := `
		SELECT id, user_id, tmdb_id, item_type, created_at
		FROM favorites
		WHERE user_id = $1 AND tmdb_id = $2 AND item_type = $3
	`

	var fav entity.Favorite
	err := r.db.QueryRow(ctx, query, userID, tmdbID, itemType).Scan(
		&fav.ID,
		&fav.UserID,
		&fav.TmdbID,
		&fav.ItemType,
		&fav.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find favorite by user and media",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("tmdb_id", tmdbID),
		)
		return nil, fmt.Errorf("find favorite %d/%s for user %s: %w", tmdbID, itemType, userID.String(), err)
	}

	return &fav, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM favorites WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete favorite",
			zap.Error(err),
			zap.String("favorite_id", id.String()),
		)
		return fmt.Errorf("delete favorite %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete favorite %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
