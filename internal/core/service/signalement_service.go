package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/marwa1454/formulaire/internal/core/domain"
	"github.com/marwa1454/formulaire/internal/core/ports"
)

const (
	defaultListLimit   = 100
	maxListLimit       = 500
	defaultSearchLimit = 50
	maxSearchLimit     = 200
	defaultRecentDays  = 7
	maxRecentDays      = 90
	defaultRecentLimit = 20
	maxRecentLimit     = 100
	defaultAgentLimit  = 100
	maxAgentLimit      = 500
	minSearchTermLen   = 2
)

// SignalementService implements the report use cases over a repository.
type SignalementService struct {
	repo   ports.SignalementRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewSignalementService(repo ports.SignalementRepository, logger zerolog.Logger) *SignalementService {
	return &SignalementService{repo: repo, logger: logger, now: time.Now}
}

// Create validates the report, stamps timestamps and defaults, persists it
// and returns the stored record.
func (s *SignalementService) Create(ctx context.Context, input ports.CreateSignalementInput) (*domain.Signalement, error) {
	now := s.now()

	sig := &domain.Signalement{
		DateSignalement:           input.DateSignalement,
		HeureSignalement:          input.HeureSignalement,
		NomAgent:                  input.NomAgent,
		IDAgent:                   input.IDAgent,
		TypeEvenement:             input.TypeEvenement,
		Gravite:                   input.Gravite,
		Lieu:                      input.Lieu,
		SourceInformation:         input.SourceInformation,
		SourceAutre:               input.SourceAutre,
		ActionEntreprise:          input.ActionEntreprise,
		ActionAutre:               input.ActionAutre,
		CommentaireComplementaire: input.CommentaireComplementaire,
		CreatedAt:                 now,
		UpdatedAt:                 now,
	}
	if sig.DateSignalement == "" {
		sig.DateSignalement = now.Format(domain.DateFormat)
	}
	if sig.HeureSignalement == "" {
		sig.HeureSignalement = now.Format(domain.TimeFormat)
	}

	if err := sig.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, sig); err != nil {
		s.logger.Error().Err(err).Msg("failed to create signalement")
		return nil, err
	}

	s.logger.Info().
		Uint("id", sig.ID).
		Str("gravite", string(sig.Gravite)).
		Str("id_agent", sig.IDAgent).
		Msg("signalement created")

	return sig, nil
}

func (s *SignalementService) GetByID(ctx context.Context, id uint) (*domain.Signalement, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns a filtered, ordered page of reports and the total count
// matching the same filters.
func (s *SignalementService) List(ctx context.Context, input ports.ListSignalementsInput) (*ports.ListSignalementsResult, error) {
	filter := ports.ListFilter{
		TypeEvenement:     input.TypeEvenement,
		Gravite:           input.Gravite,
		NomAgent:          input.NomAgent,
		SourceInformation: input.SourceInformation,
		DateDebut:         input.DateDebut,
		DateFin:           input.DateFin,
		Skip:              clampSkip(input.Skip),
		Limit:             clampLimit(input.Limit, defaultListLimit, maxListLimit),
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ListSignalementsResult{
		Items: items,
		Total: total,
		Skip:  filter.Skip,
		Limit: filter.Limit,
	}, nil
}

// Search matches term case-insensitively in lieu, commentaire, nom_agent
// and id_agent. Terms shorter than 2 characters are rejected.
func (s *SignalementService) Search(ctx context.Context, term string, limit int) ([]domain.Signalement, error) {
	if len(term) < minSearchTermLen {
		return nil, domain.ErrSearchTermTooShort
	}
	return s.repo.Search(ctx, term, clampLimit(limit, defaultSearchLimit, maxSearchLimit))
}

// Recent returns reports whose report date falls within the last N days.
func (s *SignalementService) Recent(ctx context.Context, days, limit int) ([]domain.Signalement, error) {
	if days <= 0 {
		days = defaultRecentDays
	}
	if days > maxRecentDays {
		days = maxRecentDays
	}
	minDate := s.now().AddDate(0, 0, -days).Format(domain.DateFormat)
	return s.repo.FindSince(ctx, minDate, clampLimit(limit, defaultRecentLimit, maxRecentLimit))
}

func (s *SignalementService) ByAgent(ctx context.Context, idAgent string, limit int) ([]domain.Signalement, error) {
	if idAgent == "" {
		return nil, fmt.Errorf("%w: id_agent is required", domain.ErrValidation)
	}
	return s.repo.FindByAgent(ctx, idAgent, clampLimit(limit, defaultAgentLimit, maxAgentLimit))
}

// Update applies only the supplied fields, re-validates the merged result
// and refreshes updated_at. An empty payload still refreshes updated_at.
func (s *SignalementService) Update(ctx context.Context, id uint, input ports.UpdateSignalementInput) (*domain.Signalement, error) {
	sig, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&sig.DateSignalement, input.DateSignalement)
	applyString(&sig.HeureSignalement, input.HeureSignalement)
	applyString(&sig.NomAgent, input.NomAgent)
	applyString(&sig.IDAgent, input.IDAgent)
	if input.TypeEvenement != nil {
		sig.TypeEvenement = *input.TypeEvenement
	}
	if input.Gravite != nil {
		sig.Gravite = *input.Gravite
	}
	applyString(&sig.Lieu, input.Lieu)
	if input.SourceInformation != nil {
		sig.SourceInformation = *input.SourceInformation
	}
	applyString(&sig.SourceAutre, input.SourceAutre)
	if input.ActionEntreprise != nil {
		sig.ActionEntreprise = *input.ActionEntreprise
	}
	applyString(&sig.ActionAutre, input.ActionAutre)
	applyString(&sig.CommentaireComplementaire, input.CommentaireComplementaire)

	if err := sig.Validate(); err != nil {
		return nil, err
	}

	sig.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, sig); err != nil {
		s.logger.Error().Err(err).Uint("id", id).Msg("failed to update signalement")
		return nil, err
	}

	s.logger.Info().Uint("id", id).Msg("signalement updated")
	return sig, nil
}

// Delete hard-deletes by id. Deleting an absent id returns
// domain.ErrSignalementNotFound, never a server error.
func (s *SignalementService) Delete(ctx context.Context, id uint) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrSignalementNotFound
	}
	s.logger.Info().Uint("id", id).Msg("signalement deleted")
	return nil
}

// Stats aggregates totals, per-severity and per-type counts, and four
// rolling temporal windows computed from the report date relative to
// "today" at call time. The windows overlap: a report from today also
// counts in the week and month buckets.
func (s *SignalementService) Stats(ctx context.Context) (*ports.StatsResult, error) {
	today := s.now()
	windows := ports.StatsWindows{
		Today:      today.Format(domain.DateFormat),
		Yesterday:  today.AddDate(0, 0, -1).Format(domain.DateFormat),
		WeekStart:  today.AddDate(0, 0, -7).Format(domain.DateFormat),
		MonthStart: today.AddDate(0, 0, -30).Format(domain.DateFormat),
	}
	return s.repo.Stats(ctx, windows)
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func clampSkip(skip int) int {
	if skip < 0 {
		return 0
	}
	return skip
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
