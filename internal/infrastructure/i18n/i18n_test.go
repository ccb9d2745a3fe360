package i18n

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"

	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
)

func testLocales() fstest.MapFS {
	return fstest.MapFS{
		"en.json": {Data: []byte(`{
  "welcome": "Welcome, {{.Name}}!",
  "transaction_created": "Transaction created",
  "error.user_not_found": "User not found"
}`)},
		"pt-BR.json": {Data: []byte(`{
  "welcome": "Bem-vindo, {{.Name}}!",
  "transaction_created": "Transação criada",
  "error.user_not_found": "Usuário não encontrado"
}`)},
	}
}

func TestNewServiceFS(t *testing.T) {
	t.Run("carrega traduções com sucesso", func(t *testing.T) {
		service, err := NewServiceFS(testLocales(), "pt-BR")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if service.GetDefaultLanguage() != "pt-BR" {
			t.Errorf("esperava idioma padrão 'pt-BR', obteve '%s'", service.GetDefaultLanguage())
		}

		langs := service.GetSupportedLanguages()
		if len(langs) != 2 || langs[0] != "en" || langs[1] != "pt-BR" {
			t.Errorf("idiomas inesperados: %v", langs)
		}
	})

	t.Run("erro quando não há arquivos", func(t *testing.T) {
		if _, err := NewServiceFS(fstest.MapFS{}, "pt-BR"); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando idioma padrão não existe", func(t *testing.T) {
		if _, err := NewServiceFS(testLocales(), "fr"); err == nil {
			t.Error("esperava erro para idioma padrão inexistente, obteve sucesso")
		}
	})

	t.Run("erro com JSON inválido", func(t *testing.T) {
		fsys := fstest.MapFS{"pt-BR.json": {Data: []byte(`{invalido`)}}
		if _, err := NewServiceFS(fsys, "pt-BR"); err == nil {
			t.Error("esperava erro de parse, obteve sucesso")
		}
	})
}

func TestNewService(t *testing.T) {
	t.Run("usa catálogos embutidos sem diretório", func(t *testing.T) {
		service, err := NewService("", "pt-BR")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if !service.IsLanguageSupported("en") {
			t.Error("esperava inglês entre os idiomas embutidos")
		}
	})

	t.Run("lê diretório externo", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "pt-BR.json"), []byte(`{"ola": "Olá"}`), 0644); err != nil { //nolint:gosec
			t.Fatalf("failed to create pt-BR.json: %v", err)
		}

		service, err := NewService(dir, "pt-BR")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if got := service.T("pt-BR", "ola"); got != "Olá" {
			t.Errorf("esperava 'Olá', obteve '%s'", got)
		}
	})

	t.Run("erro quando diretório não existe", func(t *testing.T) {
		if _, err := NewService("/diretorio/inexistente", "pt-BR"); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})
}

func TestService_T(t *testing.T) {
	service, err := NewServiceFS(testLocales(), "pt-BR")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	tests := []struct {
		name     string
		lang     string
		key      string
		params   []map[string]any
		expected string
	}{
		{"mensagem simples em inglês", "en", "transaction_created", nil, "Transaction created"},
		{"mensagem simples em português", "pt-BR", "transaction_created", nil, "Transação criada"},
		{"mensagem com parâmetros", "en", "welcome", []map[string]any{{"Name": "John"}}, "Welcome, John!"},
		{"parâmetros em português", "pt-BR", "welcome", []map[string]any{{"Name": "João"}}, "Bem-vindo, João!"},
		{"fallback para idioma padrão", "fr", "transaction_created", nil, "Transação criada"},
		{"chave inexistente retorna a chave", "en", "chave.inexistente", nil, "chave.inexistente"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := service.T(tt.lang, tt.key, tt.params...); got != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, got)
			}
		})
	}
}

func TestEmbeddedCatalogsCoverDomainErrors(t *testing.T) {
	service, err := NewService("", "pt-BR")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	keys := []error{
		domainerrors.ErrUserNotFound,
		domainerrors.ErrTransactionNotFound,
		domainerrors.ErrSavingNotFound,
		domainerrors.ErrEmailAlreadyExists,
		domainerrors.ErrInvalidCredentials,
		domainerrors.ErrCurrentPasswordRequired,
		domainerrors.ErrInvalidCurrentPassword,
		domainerrors.ErrNameAndRoleRequired,
		domainerrors.ErrForbidden,
		domainerrors.ErrMissingToken,
		domainerrors.ErrInvalidToken,
		domainerrors.ErrValidation,
		domainerrors.ErrInvalidEmail,
		domainerrors.ErrInvalidRole,
		domainerrors.ErrInvalidFile,
		domainerrors.ErrInternal,
	}

	for _, lang := range service.GetSupportedLanguages() {
		for _, key := range keys {
			if !service.Has(lang, key.Error()) {
				t.Errorf("idioma %s sem tradução para %s", lang, key.Error())
			}
		}
	}
}

func TestService_ConcurrentReads(t *testing.T) {
	service, err := NewServiceFS(testLocales(), "pt-BR")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			_ = service.T("en", "welcome", map[string]any{"Name": "Test"})
		}()

		go func() {
			defer wg.Done()
			_ = service.IsLanguageSupported("pt-BR")
		}()
	}

	wg.Wait()
}
