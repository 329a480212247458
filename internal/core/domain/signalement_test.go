package domain

import (
	"errors"
	"testing"
)

func validSignalement() Signalement {
	return Signalement{
		DateSignalement:   "2026-08-30",
		HeureSignalement:  "14:30:00",
		NomAgent:          "Ali Hassan",
		IDAgent:           "AGT-042",
		TypeEvenement:     EventPublicGathering,
		Gravite:           SeverityHigh,
		Lieu:              "Quartier 4",
		SourceInformation: SourceDirectObservation,
		ActionEntreprise:  ActionObservation,
	}
}

func TestSignalement_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Signalement)
		wantErr error
	}{
		{"valid", func(*Signalement) {}, nil},
		{"unknown event type", func(s *Signalement) { s.TypeEvenement = "riot" }, ErrValidation},
		{"unknown gravite", func(s *Signalement) { s.Gravite = "extreme" }, ErrValidation},
		{"unknown source", func(s *Signalement) { s.SourceInformation = "rumor" }, ErrValidation},
		{"unknown action", func(s *Signalement) { s.ActionEntreprise = "arrest" }, ErrValidation},
		{"source other without detail", func(s *Signalement) {
			s.SourceInformation = SourceOther
		}, ErrSourceDetailRequired},
		{"source other with detail", func(s *Signalement) {
			s.SourceInformation = SourceOther
			s.SourceAutre = "tip-off"
		}, nil},
		{"action other without detail", func(s *Signalement) {
			s.ActionEntreprise = ActionOther
		}, ErrActionDetailRequired},
		{"action other with detail", func(s *Signalement) {
			s.ActionEntreprise = ActionOther
			s.ActionAutre = "escalated"
		}, nil},
		{"detail allowed without other", func(s *Signalement) {
			s.SourceAutre = "extra context"
		}, nil},
		{"bad date", func(s *Signalement) { s.DateSignalement = "30/08/2026" }, ErrValidation},
		{"bad time", func(s *Signalement) { s.HeureSignalement = "2pm" }, ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSignalement()
			tc.mutate(&s)

			err := s.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestEnumValidity(t *testing.T) {
	if EventType("").Valid() || Severity("").Valid() || InfoSource("").Valid() || ActionTaken("").Valid() {
		t.Errorf("empty enum values must be invalid")
	}
	if !EventOther.Valid() || !SeverityMedium.Valid() || !SourceSocialMedia.Valid() || !ActionIntervention.Valid() {
		t.Errorf("known enum values must be valid")
	}
}
