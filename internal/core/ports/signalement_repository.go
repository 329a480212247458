package ports

import (
	"context"

	"github.com/marwa1454/formulaire/internal/core/domain"
)

// ListFilter carries the filter conjunction shared by List and Count.
// Zero values mean "no filter". Dates are inclusive ISO strings
// (YYYY-MM-DD) compared against date_signalement.
type ListFilter struct {
	TypeEvenement     string
	Gravite           string
	NomAgent          string // case-insensitive substring match
	SourceInformation string
	DateDebut         string
	DateFin           string
	Skip              int
	Limit             int
}

// StatsWindows holds the cutoff dates for the rolling temporal buckets,
// computed by the service relative to "today" at call time.
type StatsWindows struct {
	Today      string
	Yesterday  string
	WeekStart  string // today - 7 days
	MonthStart string // today - 30 days
}

// StatsResult aggregates report counts. The temporal buckets are
// independent rolling windows over date_signalement, not a partition of
// the total; this-week overlaps today and yesterday by design.
type StatsResult struct {
	Total        int64
	ParGravite   map[string]int64
	ParType      map[string]int64
	Aujourdhui   int64
	Hier         int64
	CetteSemaine int64
	CeMois       int64
}

// SignalementRepository defines persistence operations for reports.
// All listing methods order by created_at descending (id descending as
// tiebreak) so new rows sort to the front and page boundaries stay stable.
type SignalementRepository interface {
	Create(ctx context.Context, s *domain.Signalement) error
	FindByID(ctx context.Context, id uint) (*domain.Signalement, error)
	List(ctx context.Context, f ListFilter) ([]domain.Signalement, error)
	// Count applies the exact filter logic of List and returns the cardinality.
	Count(ctx context.Context, f ListFilter) (int64, error)
	// Search matches term case-insensitively as a substring of lieu,
	// commentaire_complementaire, nom_agent or id_agent.
	Search(ctx context.Context, term string, limit int) ([]domain.Signalement, error)
	// FindSince returns reports with date_signalement >= minDate.
	FindSince(ctx context.Context, minDate string, limit int) ([]domain.Signalement, error)
	FindByAgent(ctx context.Context, idAgent string, limit int) ([]domain.Signalement, error)
	Save(ctx context.Context, s *domain.Signalement) error
	// Delete hard-deletes by id and reports whether a row existed.
	Delete(ctx context.Context, id uint) (bool, error)
	Stats(ctx context.Context, w StatsWindows) (*StatsResult, error)
}
