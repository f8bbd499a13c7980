package model

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/leerbron/leerbron-api/internal/errors"
)

const (
	maxGebruikersnaamLen = 100
	maxReactieTekstLen   = 1000
)

// Reactie is a comment on a learning resource. Comments from internal
// employees are approved at creation; all others await moderation.
type Reactie struct {
	ID             string    `json:"id"             db:"id"`
	LeermiddelID   string    `json:"leermiddelId"   db:"leermiddel_id"`
	GebruikerID    string    `json:"gebruikerId"    db:"gebruiker_id"`
	Gebruikersnaam string    `json:"gebruikersnaam" db:"gebruikersnaam"`
	Tekst          string    `json:"tekst"          db:"tekst"`
	IsGoedgekeurd  bool      `json:"isGoedgekeurd"  db:"is_goedgekeurd"`
	AangemaaktOp   time.Time `json:"aangemaaktOp"   db:"aangemaakt_op"`
}

// CreateReactieRequest carries parameters to add a comment.
// GebruikerID is filled in by the service from the caller's identity and is
// empty for anonymous commenters.
type CreateReactieRequest struct {
	Gebruikersnaam string `json:"gebruikersnaam"`
	Tekst          string `json:"tekst"`
}

// Validate checks the comment fields.
func (r *CreateReactieRequest) Validate() error {
	naam := strings.TrimSpace(r.Gebruikersnaam)
	if naam == "" {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "Gebruikersnaam is verplicht",
			Field:   "gebruikersnaam",
		}
	}
	if utf8.RuneCountInString(naam) > maxGebruikersnaamLen {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "Gebruikersnaam mag maximaal 100 tekens zijn",
			Field:   "gebruikersnaam",
		}
	}
	tekst := strings.TrimSpace(r.Tekst)
	if tekst == "" {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "Tekst is verplicht",
			Field:   "tekst",
		}
	}
	if utf8.RuneCountInString(tekst) > maxReactieTekstLen {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "Tekst moet tussen 1 en 1000 tekens zijn",
			Field:   "tekst",
		}
	}
	return nil
}

// FilterReacties reduces a comment list to what the caller may see.
// Employees see everything. Everyone else sees approved comments plus the
// ones they authored themselves; anonymous callers (empty callerID) see only
// approved comments. Pure function, order-preserving.
func FilterReacties(reacties []Reactie, callerID string, isInterneMedewerker bool) []Reactie {
	if isInterneMedewerker {
		return reacties
	}

	filtered := make([]Reactie, 0, len(reacties))
	for _, r := range reacties {
		if r.IsGoedgekeurd || (callerID != "" && r.GebruikerID == callerID) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
