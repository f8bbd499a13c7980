//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/leerbron/leerbron-api/internal/errors"
)

const (
	maxTitelLen        = 200
	maxBeschrijvingLen = 2000
	maxLinkLen         = 500
)

// Leermiddel is a community-curated learning resource.
type Leermiddel struct {
	ID           string    `json:"id"           db:"id"`
	Titel        string    `json:"titel"        db:"titel"`
	Beschrijving string    `json:"beschrijving" db:"beschrijving"`
	Link         string    `json:"link"         db:"link"`
	AangemaaktOp time.Time `json:"aangemaaktOp" db:"aangemaakt_op"`
	UpdatedAt    time.Time `json:"-"            db:"updated_at"`

	// Reacties is populated by the service layer, after visibility filtering.
	Reacties []Reactie `json:"reacties" db:"-"`
}

// CreateLeermiddelRequest carries parameters to create a learning resource.
type CreateLeermiddelRequest struct {
	Titel        string `json:"titel"`
	Beschrijving string `json:"beschrijving"`
	Link         string `json:"link"`
}

// Validate checks the create request fields.
func (r *CreateLeermiddelRequest) Validate() error {
	return validateLeermiddelFields(r.Titel, r.Beschrijving, r.Link)
}

// UpdateLeermiddelRequest carries parameters to update a learning resource.
// The ID in the body must match the path ID; handlers enforce that.
type UpdateLeermiddelRequest struct {
	ID           string `json:"id"`
	Titel        string `json:"titel"`
	Beschrijving string `json:"beschrijving"`
	Link         string `json:"link"`
}

// Validate checks the update request fields.
func (r *UpdateLeermiddelRequest) Validate() error {
	return validateLeermiddelFields(r.Titel, r.Beschrijving, r.Link)
}

func validateLeermiddelFields(titel, beschrijving, link string) error {
	titel = strings.TrimSpace(titel)
	if titel == "" {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "Titel is verplicht",
			Field:   "titel",
		}
	}
	if utf8.RuneCountInString(titel) > maxTitelLen {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "Titel is te lang",
			Field:   "titel",
		}
	}
	if utf8.RuneCountInString(beschrijving) > maxBeschrijvingLen {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "Beschrijving is te lang",
			Field:   "beschrijving",
		}
	}
	link = strings.TrimSpace(link)
	if link == "" {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "Link is verplicht",
			Field:   "link",
		}
	}
	if utf8.RuneCountInString(link) > maxLinkLen {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "Link is te lang",
			Field:   "link",
		}
	}
	if u, err := url.Parse(link); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return &apperrors.AppError{
			Code:    apperrors.ErrCodeValidation,
			Message: "Link moet een geldige http(s) URL zijn",
			Field:   "link",
		}
	}
	return nil
}
