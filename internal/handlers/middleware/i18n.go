package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/rafabene/agendasaude-backend/internal/infrastructure/i18n"
)

// Chaves do contexto do Gin preenchidas pelo I18nMiddleware
const (
	LanguageContextKey    = "language"
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware escolhe o idioma das mensagens de erro da API
// entre os locales carregados pelo i18n.Service.
type I18nMiddleware struct {
	i18nService *i18n.Service
	languages   []string // languages[0] é o idioma padrão
	matcher     language.Matcher
}

// NewI18nMiddleware cria o middleware a partir dos locales do serviço
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	defaultLang := i18nService.GetDefaultLanguage()

	languages := []string{defaultLang}
	tags := []language.Tag{language.Make(defaultLang)}
	for _, lang := range i18nService.GetSupportedLanguages() {
		if lang == defaultLang {
			continue
		}
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		languages = append(languages, lang)
		tags = append(tags, tag)
	}

	return &I18nMiddleware{
		i18nService: i18nService,
		languages:   languages,
		matcher:     language.NewMatcher(tags),
	}
}

// DetectLanguage resolve o idioma da requisição.
// Prioridade: ?lang=, depois Accept-Language (respeitando q), depois o padrão.
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.match(c.Query("lang"))
		if lang == "" {
			lang = m.match(c.GetHeader("Accept-Language"))
		}
		if lang == "" {
			lang = m.languages[0]
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

// match devolve o locale suportado mais próximo do valor (formato Accept-Language).
// "pt" casa com "pt-BR"; sem correspondência retorna "".
func (m *I18nMiddleware) match(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	tags, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(tags) == 0 {
		return ""
	}

	_, idx, confidence := m.matcher.Match(tags...)
	if confidence == language.No {
		return ""
	}
	return m.languages[idx]
}
