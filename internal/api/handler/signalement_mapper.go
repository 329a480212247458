package handler

import (
	"github.com/marwa1454/formulaire/internal/core/domain"
	"github.com/marwa1454/formulaire/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createSignalementRequest) ports.CreateSignalementInput {
	return ports.CreateSignalementInput{
		DateSignalement:           req.DateSignalement,
		HeureSignalement:          req.HeureSignalement,
		NomAgent:                  req.NomAgent,
		IDAgent:                   req.IDAgent,
		TypeEvenement:             domain.EventType(req.TypeEvenement),
		Gravite:                   domain.Severity(req.Gravite),
		Lieu:                      req.Lieu,
		SourceInformation:         domain.InfoSource(req.SourceInformation),
		SourceAutre:               req.SourceAutre,
		ActionEntreprise:          domain.ActionTaken(req.ActionEntreprise),
		ActionAutre:               req.ActionAutre,
		CommentaireComplementaire: req.CommentaireComplementaire,
	}
}

func toUpdateInput(req updateSignalementRequest) ports.UpdateSignalementInput {
	return ports.UpdateSignalementInput{
		DateSignalement:           req.DateSignalement,
		HeureSignalement:          req.HeureSignalement,
		NomAgent:                  req.NomAgent,
		IDAgent:                   req.IDAgent,
		TypeEvenement:             enumPtr[domain.EventType](req.TypeEvenement),
		Gravite:                   enumPtr[domain.Severity](req.Gravite),
		Lieu:                      req.Lieu,
		SourceInformation:         enumPtr[domain.InfoSource](req.SourceInformation),
		SourceAutre:               req.SourceAutre,
		ActionEntreprise:          enumPtr[domain.ActionTaken](req.ActionEntreprise),
		ActionAutre:               req.ActionAutre,
		CommentaireComplementaire: req.CommentaireComplementaire,
	}
}

func enumPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}

// --- Service result → HTTP response ---

func toStatsResponse(r *ports.StatsResult) statsResponse {
	return statsResponse{
		Total:        r.Total,
		ParGravite:   r.ParGravite,
		ParType:      r.ParType,
		Aujourdhui:   r.Aujourdhui,
		Hier:         r.Hier,
		CetteSemaine: r.CetteSemaine,
		CeMois:       r.CeMois,
	}
}
