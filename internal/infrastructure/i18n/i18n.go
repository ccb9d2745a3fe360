package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"text/template"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Service traduz message IDs para mensagens no idioma da requisição.
// O catálogo é carregado uma vez e só lido depois.
type Service struct {
	translations    map[string]map[string]string // [language][key]message
	defaultLanguage string
}

// NewService carrega os catálogos. Com localesDir vazio usa os arquivos
// embutidos no binário.
func NewService(localesDir, defaultLang string) (*Service, error) {
	if localesDir == "" {
		sub, err := fs.Sub(embeddedLocales, "locales")
		if err != nil {
			return nil, err
		}
		return NewServiceFS(sub, defaultLang)
	}

	if _, err := os.Stat(localesDir); err != nil {
		return nil, fmt.Errorf("locales dir %s: %w", localesDir, err)
	}
	return NewServiceFS(os.DirFS(localesDir), defaultLang)
}

// NewServiceFS carrega todos os arquivos <idioma>.json da raiz de fsys
func NewServiceFS(fsys fs.FS, defaultLang string) (*Service, error) {
	s := &Service{
		translations:    make(map[string]map[string]string),
		defaultLanguage: defaultLang,
	}

	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
		}

		s.translations[lang] = translations
	}

	if _, ok := s.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

// T traduz uma chave para o idioma especificado, caindo para o idioma padrão
// e, por fim, para a própria chave. Parâmetros usam templates Go ({{.Name}}).
func (s *Service) T(lang, key string, params ...map[string]any) string {
	message := s.lookup(lang, key)
	if message == "" {
		message = s.lookup(s.defaultLanguage, key)
	}
	if message == "" {
		return key
	}

	if len(params) == 0 {
		return message
	}

	tmpl, err := template.New("msg").Parse(message)
	if err != nil {
		return message
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params[0]); err != nil {
		return message
	}

	return buf.String()
}

// Has verifica se a chave existe no idioma informado
func (s *Service) Has(lang, key string) bool {
	_, ok := s.translations[lang][key]
	return ok
}

func (s *Service) lookup(lang, key string) string {
	if langMap, ok := s.translations[lang]; ok {
		return langMap[key]
	}
	return ""
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados, em ordem alfabética
func (s *Service) GetSupportedLanguages() []string {
	langs := make([]string, 0, len(s.translations))
	for lang := range s.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// IsLanguageSupported verifica se um idioma é suportado
func (s *Service) IsLanguageSupported(lang string) bool {
	_, ok := s.translations[lang]
	return ok
}
