package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrProfessionalNotFound = errors.New("error.professional_not_found")
	ErrConsultationNotFound = errors.New("error.consultation_not_found")
	ErrInvalidCredentials   = errors.New("error.invalid_credentials")
	ErrUnauthorized         = errors.New("error.unauthorized")
	ErrInvalidToken         = errors.New("error.invalid_token")
	ErrTokenRevoked         = errors.New("error.token_revoked")
	ErrUserNotFound         = errors.New("error.user_not_found")
)

// Validation message IDs
// Usados como valores em ValidationError (campo -> mensagens)
const (
	MsgNameSocialRequired    = "validation.name_social.required"
	MsgProfessionRequired    = "validation.profession.required"
	MsgDatetimeInPast        = "validation.datetime.past"
	MsgProfessionalNotFound  = "validation.professional.not_found"
	MsgConsultationDuplicate = "validation.consultation.duplicate"
	MsgStatusInvalid         = "validation.status.invalid"
	MsgFieldRequired         = "validation.field.required"
	MsgFieldTooLong          = "validation.field.max"
	MsgFieldInvalidUUID      = "validation.field.uuid"
	MsgFieldInvalid          = "validation.field.invalid"
	MsgMalformedBody         = "validation.body.malformed"
)

// NonFieldErrorsKey é a chave usada para erros que não pertencem a um campo
const NonFieldErrorsKey = "non_field_errors"

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// Message é uma mensagem de validação ainda não traduzida
type Message struct {
	ID     string
	Params map[string]interface{}
}

// ValidationError agrega erros de validação por campo.
// As mensagens são traduzidas na camada HTTP.
type ValidationError struct {
	Fields map[string][]Message
}

// NewValidationError cria um ValidationError vazio
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]Message)}
}

// Add registra uma mensagem para o campo
func (e *ValidationError) Add(field, messageID string) {
	e.AddWithParams(field, messageID, nil)
}

// AddWithParams registra uma mensagem com parâmetros de interpolação
func (e *ValidationError) AddWithParams(field, messageID string, params map[string]interface{}) {
	e.Fields[field] = append(e.Fields[field], Message{ID: messageID, Params: params})
}

// Merge copia as mensagens de outro ValidationError
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	for field, msgs := range other.Fields {
		e.Fields[field] = append(e.Fields[field], msgs...)
	}
}

// AddNonField registra uma mensagem que não pertence a nenhum campo
func (e *ValidationError) AddNonField(messageID string) {
	e.Add(NonFieldErrorsKey, messageID)
}

// HasErrors indica se algum erro foi registrado
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil retorna nil quando não há erros, para uso direto como error
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// FieldError cria um ValidationError com uma única mensagem
func FieldError(field, messageID string) *ValidationError {
	e := NewValidationError()
	e.Add(field, messageID)
	return e
}

// DuplicateConsultationError é o erro de agenda duplicada para o mesmo profissional
func DuplicateConsultationError() *ValidationError {
	e := NewValidationError()
	e.AddNonField(MsgConsultationDuplicate)
	return e
}

// AsValidationError extrai um ValidationError da cadeia de erros
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
