package entities

import (
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
)

// Limites de tamanho das colunas de Professional
const (
	NameSocialMaxLength = 255
	ProfessionMaxLength = 150
	ContactMaxLength    = 100
)

// Professional representa um profissional de saúde
type Professional struct {
	ID         string
	NameSocial string
	Profession string
	Address    string
	Contact    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Normalize remove espaços nas bordas dos campos de texto curto
func (p *Professional) Normalize() {
	p.NameSocial = strings.TrimSpace(p.NameSocial)
	p.Profession = strings.TrimSpace(p.Profession)
	p.Contact = strings.TrimSpace(p.Contact)
}

// Validate valida regras de negócio da entidade Professional.
// Deve ser chamado após Normalize.
func (p *Professional) Validate() error {
	verr := domainerrors.NewValidationError()

	if p.NameSocial == "" {
		verr.Add("name_social", domainerrors.MsgNameSocialRequired)
	} else {
		checkMaxLength(verr, "name_social", p.NameSocial, NameSocialMaxLength)
	}

	if p.Profession == "" {
		verr.Add("profession", domainerrors.MsgProfessionRequired)
	} else {
		checkMaxLength(verr, "profession", p.Profession, ProfessionMaxLength)
	}

	checkMaxLength(verr, "contact", p.Contact, ContactMaxLength)

	return verr.OrNil()
}

func checkMaxLength(verr *domainerrors.ValidationError, field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		verr.AddWithParams(field, domainerrors.MsgFieldTooLong, map[string]interface{}{"Max": max})
	}
}
