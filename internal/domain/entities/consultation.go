package entities

import (
	"time"

	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
	"github.com/rafabene/agendasaude-backend/internal/domain/valueobjects"
)

// Consultation representa uma consulta agendada com um profissional
type Consultation struct {
	ID             string
	ScheduledAt    time.Time
	ProfessionalID string
	Notes          string
	Status         valueobjects.ConsultationStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NormalizeSlot normaliza o horário para UTC com precisão de microssegundos,
// a mesma precisão do timestamp do PostgreSQL
func NormalizeSlot(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// ValidateSchedule verifica que o horário está estritamente no futuro em relação a now
func ValidateSchedule(scheduledAt, now time.Time) *domainerrors.ValidationError {
	if !scheduledAt.After(now) {
		return domainerrors.FieldError("datetime", domainerrors.MsgDatetimeInPast)
	}
	return nil
}

// SameSlot indica se duas consultas ocupam o mesmo horário do mesmo profissional
func (c *Consultation) SameSlot(other *Consultation) bool {
	return c.ProfessionalID == other.ProfessionalID &&
		NormalizeSlot(c.ScheduledAt).Equal(NormalizeSlot(other.ScheduledAt))
}

// IsCancelled verifica se a consulta foi cancelada
func (c *Consultation) IsCancelled() bool {
	return c.Status == valueobjects.StatusCancelled
}
