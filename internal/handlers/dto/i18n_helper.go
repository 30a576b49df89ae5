package dto

import (
	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
	"github.com/rafabene/agendasaude-backend/internal/handlers/middleware"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/i18n"
)

const fallbackLanguage = "en"

// T traduz key no idioma da requisição.
// Sem i18n.Service no contexto a própria key é devolvida.
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	value, _ := c.Get(middleware.I18nServiceContextKey)
	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}
	return service.T(GetLanguage(c), key, params...)
}

// TranslateMessages traduz as mensagens de validação de um campo
func TranslateMessages(c *gin.Context, messages []domainerrors.Message) []string {
	translated := make([]string, 0, len(messages))
	for _, msg := range messages {
		if msg.Params == nil {
			translated = append(translated, T(c, msg.ID))
			continue
		}
		translated = append(translated, T(c, msg.ID, msg.Params))
	}
	return translated
}

// GetLanguage retorna o idioma escolhido pelo I18nMiddleware
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(middleware.LanguageContextKey); lang != "" {
		return lang
	}
	return fallbackLanguage
}
