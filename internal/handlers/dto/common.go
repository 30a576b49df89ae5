package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs).
// Errors agrupa as mensagens por campo; erros gerais ficam em non_field_errors.
type ErrorResponse struct {
	*problems.Problem
	Errors map[string][]string `json:"errors,omitempty"`
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	// Pegar base URL da configuração
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	problem := problems.NewDetailedProblem(status, T(c, detailKey, params...))
	problem.Type = baseURL + problemType
	problem.Title = T(c, titleKey, params...)
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{Problem: problem}
}

// WriteProblem escreve a resposta com o media type application/problem+json
func WriteProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

// ValidationErrorResponseI18n cria uma resposta 400 traduzindo as mensagens de validação
func ValidationErrorResponseI18n(c *gin.Context, verr *domainerrors.ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusBadRequest,
	)

	response.Errors = make(map[string][]string, len(verr.Fields))
	for field, messages := range verr.Fields {
		response.Errors[field] = TranslateMessages(c, messages)
	}
	return response
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, resourceKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		"error.not_found.detail",
		http.StatusNotFound,
		map[string]interface{}{"Resource": T(c, resourceKey)},
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401.
// detailKey vazio usa a mensagem genérica.
func UnauthorizedErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	if detailKey == "" {
		detailKey = "error.unauthorized.detail"
	}
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		detailKey,
		http.StatusUnauthorized,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
}

// RegisterJSONTagNames faz o validator reportar os campos pelo nome JSON (ou form)
func RegisterJSONTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})
}

// BindingError converte um erro de ShouldBind* em ValidationError por campo
func BindingError(err error) *domainerrors.ValidationError {
	verr := domainerrors.NewValidationError()

	var validationErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &validationErrs):
		for _, fe := range validationErrs {
			addFieldError(verr, fe)
		}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		verr.Add(typeErr.Field, domainerrors.MsgFieldInvalid)
	default:
		verr.AddNonField(domainerrors.MsgMalformedBody)
	}

	return verr
}

func addFieldError(verr *domainerrors.ValidationError, fe validator.FieldError) {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		verr.Add(field, domainerrors.MsgFieldRequired)
	case "max":
		verr.AddWithParams(field, domainerrors.MsgFieldTooLong, map[string]interface{}{"Max": fe.Param()})
	case "uuid", "uuid4":
		verr.Add(field, domainerrors.MsgFieldInvalidUUID)
	default:
		verr.Add(field, domainerrors.MsgFieldInvalid)
	}
}
