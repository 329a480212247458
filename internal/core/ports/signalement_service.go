package ports

import (
	"context"

	"github.com/marwa1454/formulaire/internal/core/domain"
)

// CreateSignalementInput carries all data needed to record a new report.
// DateSignalement and HeureSignalement default to the current date/time
// when empty.
type CreateSignalementInput struct {
	DateSignalement           string
	HeureSignalement          string
	NomAgent                  string
	IDAgent                   string
	TypeEvenement             domain.EventType
	Gravite                   domain.Severity
	Lieu                      string
	SourceInformation         domain.InfoSource
	SourceAutre               string
	ActionEntreprise          domain.ActionTaken
	ActionAutre               string
	CommentaireComplementaire string
}

// UpdateSignalementInput is a partial payload: nil fields are left
// unchanged. The merged result is re-validated before persistence.
type UpdateSignalementInput struct {
	DateSignalement           *string
	HeureSignalement          *string
	NomAgent                  *string
	IDAgent                   *string
	TypeEvenement             *domain.EventType
	Gravite                   *domain.Severity
	Lieu                      *string
	SourceInformation         *domain.InfoSource
	SourceAutre               *string
	ActionEntreprise          *domain.ActionTaken
	ActionAutre               *string
	CommentaireComplementaire *string
}

// ListSignalementsInput carries pagination and the optional filters.
type ListSignalementsInput struct {
	Skip              int
	Limit             int
	TypeEvenement     string
	Gravite           string
	NomAgent          string
	SourceInformation string
	DateDebut         string
	DateFin           string
}

// ListSignalementsResult is a page of reports plus the total matching the
// same filters, for pagination.
type ListSignalementsResult struct {
	Items []domain.Signalement
	Total int64
	Skip  int
	Limit int
}

// SignalementService defines the use-case operations over reports.
type SignalementService interface {
	Create(ctx context.Context, input CreateSignalementInput) (*domain.Signalement, error)
	GetByID(ctx context.Context, id uint) (*domain.Signalement, error)
	List(ctx context.Context, input ListSignalementsInput) (*ListSignalementsResult, error)
	Search(ctx context.Context, term string, limit int) ([]domain.Signalement, error)
	Recent(ctx context.Context, days, limit int) ([]domain.Signalement, error)
	ByAgent(ctx context.Context, idAgent string, limit int) ([]domain.Signalement, error)
	Update(ctx context.Context, id uint, input UpdateSignalementInput) (*domain.Signalement, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*StatsResult, error)
}
