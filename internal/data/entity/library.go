package entity

import "github.com/google/uuid"

type LibraryStatus string

const (
	StatusPlanToWatch LibraryStatus = "PLAN_TO_WATCH"
	StatusWatching    LibraryStatus = "WATCHING"
	StatusCompleted   LibraryStatus = "COMPLETED"
	StatusOnHold      LibraryStatus = "ON_HOLD"
	StatusDropped     LibraryStatus = "DROPPED"
)

var LibraryStatuses = []LibraryStatus{
	StatusPlanToWatch,
	StatusWatching,
	StatusCompleted,
	StatusOnHold,
	StatusDropped,
}

func (s LibraryStatus) Valid() bool {
	for _, status := range LibraryStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// LibraryItem identity is (user_id, tmdb_id, item_type); status is not part of it.
type LibraryItem struct {
	BaseNoDelete
	UserID   uuid.UUID     `db:"user_id"`
	TmdbID   int           `db:"tmdb_id"`
	ItemType MediaType     `db:"item_type"`
	Status   LibraryStatus `db:"status"`
}
