package domain

import (
	"errors"
	"fmt"
	"time"
)

// EventType classifies how the reported event surfaced.
type EventType string

const (
	EventNeighborhoodMeeting EventType = "neighborhood-meeting"
	EventSocialMediaPost     EventType = "social-media-post"
	EventPublicGathering     EventType = "public-gathering"
	EventOther               EventType = "other"
)

// Severity is the low/medium/high classification of a report.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// InfoSource records how the information in a report was obtained.
type InfoSource string

const (
	SourceDirectObservation InfoSource = "direct-observation"
	SourceInformant         InfoSource = "informant"
	SourceSocialMedia       InfoSource = "social-media"
	SourceOther             InfoSource = "other"
)

// ActionTaken is the response action recorded against a report.
type ActionTaken string

const (
	ActionObservation    ActionTaken = "observation"
	ActionAlertForwarded ActionTaken = "alert-forwarded"
	ActionIntervention   ActionTaken = "intervention"
	ActionOther          ActionTaken = "other"
)

func (t EventType) Valid() bool {
	switch t {
	case EventNeighborhoodMeeting, EventSocialMediaPost, EventPublicGathering, EventOther:
		return true
	}
	return false
}

func (g Severity) Valid() bool {
	switch g {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

func (s InfoSource) Valid() bool {
	switch s {
	case SourceDirectObservation, SourceInformant, SourceSocialMedia, SourceOther:
		return true
	}
	return false
}

func (a ActionTaken) Valid() bool {
	switch a {
	case ActionObservation, ActionAlertForwarded, ActionIntervention, ActionOther:
		return true
	}
	return false
}

// ErrValidation is the base error for every field or invariant violation.
// Specific validation errors wrap it so callers can match the whole class
// with errors.Is.
var ErrValidation = errors.New("validation failed")

var (
	ErrSignalementNotFound = errors.New("signalement not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid or expired token")

	ErrSourceDetailRequired = fmt.Errorf("%w: source_autre is required when source_information is %q", ErrValidation, SourceOther)
	ErrActionDetailRequired = fmt.Errorf("%w: action_autre is required when action_entreprise is %q", ErrValidation, ActionOther)
	ErrSearchTermTooShort   = fmt.Errorf("%w: search term must be at least 2 characters", ErrValidation)
)

// DateFormat and TimeFormat are the wire and storage layouts for the report
// date and time. ISO date strings compare lexicographically in date order,
// which the range filters and rolling stats windows rely on.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04:05"
)

// Signalement is a single logged incident report.
type Signalement struct {
	ID                        uint        `json:"id" gorm:"primaryKey"`
	DateSignalement           string      `json:"date_signalement" gorm:"size:10;not null;index"`
	HeureSignalement          string      `json:"heure_signalement" gorm:"size:8;not null"`
	NomAgent                  string      `json:"nom_agent" gorm:"size:100;not null"`
	IDAgent                   string      `json:"id_agent" gorm:"size:50;not null;index"`
	TypeEvenement             EventType   `json:"type_evenement" gorm:"size:32;not null"`
	Gravite                   Severity    `json:"gravite" gorm:"size:16;not null"`
	Lieu                      string      `json:"lieu" gorm:"size:200;not null"`
	SourceInformation         InfoSource  `json:"source_information" gorm:"size:32;not null"`
	SourceAutre               string      `json:"source_autre,omitempty" gorm:"size:200"`
	ActionEntreprise          ActionTaken `json:"action_entreprise" gorm:"size:32;not null"`
	ActionAutre               string      `json:"action_autre,omitempty" gorm:"size:200"`
	CommentaireComplementaire string      `json:"commentaire_complementaire,omitempty" gorm:"type:text"`
	CreatedAt                 time.Time   `json:"created_at" gorm:"index"`
	UpdatedAt                 time.Time   `json:"updated_at"`
}

// Validate checks the enum fields and the source/action detail rule:
// the free-text elaboration is required exactly when the enum is "other".
func (s *Signalement) Validate() error {
	if !s.TypeEvenement.Valid() {
		return fmt.Errorf("%w: unknown type_evenement %q", ErrValidation, s.TypeEvenement)
	}
	if !s.Gravite.Valid() {
		return fmt.Errorf("%w: unknown gravite %q", ErrValidation, s.Gravite)
	}
	if !s.SourceInformation.Valid() {
		return fmt.Errorf("%w: unknown source_information %q", ErrValidation, s.SourceInformation)
	}
	if !s.ActionEntreprise.Valid() {
		return fmt.Errorf("%w: unknown action_entreprise %q", ErrValidation, s.ActionEntreprise)
	}
	if s.SourceInformation == SourceOther && s.SourceAutre == "" {
		return ErrSourceDetailRequired
	}
	if s.ActionEntreprise == ActionOther && s.ActionAutre == "" {
		return ErrActionDetailRequired
	}
	if _, err := time.Parse(DateFormat, s.DateSignalement); err != nil {
		return fmt.Errorf("%w: date_signalement must be YYYY-MM-DD", ErrValidation)
	}
	if _, err := time.Parse(TimeFormat, s.HeureSignalement); err != nil {
		return fmt.Errorf("%w: heure_signalement must be HH:MM:SS", ErrValidation)
	}
	return nil
}
