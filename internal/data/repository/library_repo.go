package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinetrack/internal/data/entity"
	"cinetrack/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type LibraryRepository interface {
	Create(ctx context.Context, item *entity.LibraryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LibraryItem, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, status *entity.LibraryStatus) ([]*entity.LibraryItem, error)
	FindByUserAndMedia(ctx context.Context, userID uuid.UUID, tmdbID int, itemType entity.MediaType) (*entity.LibraryItem, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LibraryStatus, updatedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type libraryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLibraryRepository(db database.PgxIface, log *zap.Logger) LibraryRepository {
	return &libraryRepository{
		db:  db,
		log: log.With(zap.String("repository", "library")),
	}
}

const libraryColumns = `id, user_id, tmdb_id, item_type, status, created_at, updated_at`

func scanLibraryItem(row pgx.Row) (*entity.LibraryItem, error) {
	var item entity.LibraryItem
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.TmdbID,
		&item.ItemType,
		&item.Status,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *libraryRepository) Create(ctx context.Context, item *entity.LibraryItem) error {
	query := `
		INSERT INTO library_items (id, user_id, tmdb_id, item_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.TmdbID,
		item.ItemType,
		item.Status,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		r.log.Error("Failed to create library item",
			zap.Error(err),
			zap.String("user_id", item.UserID.String()),
			zap.Int("tmdb_id", item.TmdbID),
		)
		return fmt.Errorf("create library item %d/%s for user %s: %w",
			item.TmdbID, item.ItemType, item.UserID.String(), err)
	}

	return nil
}

func (r *libraryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LibraryItem, error) {
	query := `SELECT ` + libraryColumns + ` FROM library_items WHERE id = $1`

	item, err := scanLibraryItem(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find library item by ID",
			zap.Error(err),
			zap.String("library_item_id", id.String()),
		)
		return nil, fmt.Errorf("find library item by ID %s: %w", id.String(), err)
	}

	return item, nil
}

// FindByUserID lists a user's library, most recently touched first, optionally
// narrowed to one status.
func (r *libraryRepository) FindByUserID(ctx context.Context, userID uuid.UUID, status *entity.LibraryStatus) ([]*entity.LibraryItem, error) {
	query := `SELECT ` + libraryColumns + ` FROM library_items WHERE user_id = $1`
	args := []any{userID}

	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find library items by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find library items by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	items := make([]*entity.LibraryItem, 0)
	for rows.Next() {
		item, err := scanLibraryItem(rows)
		if err != nil {
			r.log.Error("Failed to scan library row", zap.Error(err))
			return nil, fmt.Errorf("scan library row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate library rows: %w", err)
	}

	return items, nil
}

func (r *libraryRepository) FindByUserAndMedia(ctx context.Context, userID uuid.UUID, tmdbID int, itemType entity.MediaType) (*entity.LibraryItem, error) {
	query := `SELECT ` + libraryColumns + ` FROM library_items
		WHERE user_id = $1 AND tmdb_id = $2 AND item_type = $3`

	item, err := scanLibraryItem(r.db.QueryRow(ctx, query, userID, tmdbID, itemType))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find library item by user and media",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("tmdb_id", tmdbID),
		)
		return nil, fmt.Errorf("find library item %d/%s for user %s: %w", tmdbID, itemType, userID.String(), err)
	}

	return item, nil
}

func (r *libraryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LibraryStatus, updatedAt time.Time) error {
	query := `
		UPDATE library_items
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, status, updatedAt)
	if err != nil {
		r.log.Error("Failed to update library status",
			zap.Error(err),
			zap.String("library_item_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update library item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update library item %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

func (r *libraryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM library_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete library item",
			zap.Error(err),
			zap.String("library_item_id", id.String()),
		)
		return fmt.Errorf("delete library item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete library item %s: %w", id.String(), ErrNotFound)
	}

	return nil
}
