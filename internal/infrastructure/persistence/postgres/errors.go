package postgres

import (
	"errors"

	"gorm.io/gorm"

	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
)

// translateConsultationError converte violações de constraint da tabela de
// consultas nos erros de validação do domínio
func translateConsultationError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domainerrors.DuplicateConsultationError()
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domainerrors.FieldError("professional", domainerrors.MsgProfessionalNotFound)
	default:
		return err
	}
}
