package entities

import (
	"errors"
	"testing"

	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
)

func TestSettings_Merge(t *testing.T) {
	darkMode := true
	language := "en"

	merged := DefaultSettings().Merge(SettingsPatch{DarkMode: &darkMode, Language: &language})

	if !merged.DarkMode {
		t.Error("esperava darkMode true")
	}
	if merged.Language != "en" {
		t.Errorf("esperava idioma 'en', obteve '%s'", merged.Language)
	}
	if !merged.EmailNotifications || !merged.MonthlyReport {
		t.Error("campos não informados devem manter o valor anterior")
	}
}

func TestSettings_MergeEmptyPatch(t *testing.T) {
	current := Settings{EmailNotifications: false, MonthlyReport: true, DarkMode: true, Language: "es"}

	if got := current.Merge(SettingsPatch{}); got != current {
		t.Errorf("patch vazio não deveria alterar nada: %+v", got)
	}
}

func TestNewUser(t *testing.T) {
	u := NewUser("  Maria ", mustEmail(t, "maria@example.com"), "hash")

	if u.Role != RoleVisitante {
		t.Errorf("esperava role visitante, obteve %s", u.Role)
	}
	if u.Settings != DefaultSettings() {
		t.Errorf("esperava preferências padrão, obteve %+v", u.Settings)
	}
	if u.Name != "Maria" {
		t.Errorf("esperava nome 'Maria', obteve %q", u.Name)
	}
}

func TestRole(t *testing.T) {
	t.Run("ParseRole aceita roles conhecidos", func(t *testing.T) {
		for _, value := range []string{"admin", "visitante"} {
			if _, err := ParseRole(value); err != nil {
				t.Errorf("esperava sucesso para %q, obteve %v", value, err)
			}
		}
	})

	t.Run("ParseRole rejeita roles desconhecidos", func(t *testing.T) {
		for _, value := range []string{"", "root", "Admin"} {
			if _, err := ParseRole(value); !errors.Is(err, domainerrors.ErrInvalidRole) {
				t.Errorf("esperava ErrInvalidRole para %q, obteve %v", value, err)
			}
		}
	})

	t.Run("somente admin gerencia usuários", func(t *testing.T) {
		if !RoleAdmin.Can(CapabilityManageUsers) || !RoleAdmin.Can(CapabilityListUsers) {
			t.Error("admin deveria ter todas as capacidades")
		}
		if RoleVisitante.Can(CapabilityListUsers) {
			t.Error("visitante não deveria listar usuários")
		}
	})
}
