package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=pt-BR (override explícito)
// 2. Accept-Language header
// 3. Idioma padrão
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if queryLang := c.Query("lang"); queryLang != "" {
			lang = m.match(queryLang)
		}

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)

		c.Next()
	}
}

// parseAcceptLanguage analisa o header Accept-Language e retorna o primeiro idioma suportado
// Exemplo: "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	for _, lang := range strings.Split(acceptLang, ",") {
		lang = strings.TrimSpace(lang)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}

		if matched := m.match(lang); matched != "" {
			return matched
		}
	}

	return ""
}

// match aceita o idioma exato, a variação sem região (en-US -> en) ou uma
// variação regional suportada com a mesma base (pt -> pt-BR)
func (m *I18nMiddleware) match(lang string) string {
	if lang == "" {
		return ""
	}
	if m.i18nService.IsLanguageSupported(lang) {
		return lang
	}

	base := lang
	if idx := strings.Index(lang, "-"); idx != -1 {
		base = lang[:idx]
		if m.i18nService.IsLanguageSupported(base) {
			return base
		}
	}

	for _, supported := range m.i18nService.GetSupportedLanguages() {
		if strings.HasPrefix(strings.ToLower(supported), strings.ToLower(base)+"-") {
			return supported
		}
	}

	return ""
}

// GetLanguage devolve o idioma detectado para a requisição
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(LanguageContextKey); lang != "" {
		return lang
	}
	if svc := getService(c); svc != nil {
		return svc.GetDefaultLanguage()
	}
	return ""
}

// Translate traduz uma chave no idioma da requisição. Sem serviço no
// contexto a própria chave é devolvida.
func Translate(c *gin.Context, key string, params ...map[string]any) string {
	svc := getService(c)
	if svc == nil {
		return key
	}
	return svc.T(GetLanguage(c), key, params...)
}

func getService(c *gin.Context) *i18n.Service {
	value, ok := c.Get(I18nServiceContextKey)
	if !ok {
		return nil
	}
	svc, _ := value.(*i18n.Service)
	return svc
}
