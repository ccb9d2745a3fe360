package valueobjects

import (
	"errors"
	"testing"

	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
)

func TestNewEmail(t *testing.T) {
	t.Run("normaliza caixa e espaços", func(t *testing.T) {
		email, err := NewEmail("  Maria@Example.COM ")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if email.String() != "maria@example.com" {
			t.Errorf("esperava 'maria@example.com', obteve '%s'", email.String())
		}
	})

	for _, invalid := range []string{"", "maria", "maria@", "@example.com", "maria@example", "ma ria@example.com"} {
		t.Run("rejeita "+invalid, func(t *testing.T) {
			if _, err := NewEmail(invalid); !errors.Is(err, domainerrors.ErrInvalidEmail) {
				t.Errorf("esperava ErrInvalidEmail, obteve %v", err)
			}
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name          string
		page, limit   string
		expectedPage  int
		expectedLimit int
	}{
		{"padrões quando vazio", "", "", 1, 10},
		{"valores explícitos", "2", "25", 2, 25},
		{"não numérico usa padrão", "abc", "x", 1, 10},
		{"zero e negativo usam padrão", "0", "-5", 1, 10},
		{"limite máximo", "1", "1000", 1, MaxLimit},
		{"página gigante é limitada", "9223372036854775807", "100", MaxPage, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePagination(tt.page, tt.limit)
			if p.Page != tt.expectedPage || p.Limit != tt.expectedLimit {
				t.Errorf("esperava %d/%d, obteve %d/%d", tt.expectedPage, tt.expectedLimit, p.Page, p.Limit)
			}
		})
	}
}

func TestPagination_Offset(t *testing.T) {
	if got := NewPagination(2, 10).Offset(); got != 10 {
		t.Errorf("esperava offset 10, obteve %d", got)
	}
	if got := NewPagination(1, 10).Offset(); got != 0 {
		t.Errorf("esperava offset 0, obteve %d", got)
	}
	if got := NewPagination(int(^uint(0)>>1), MaxLimit).Offset(); got != (MaxPage-1)*MaxLimit {
		t.Errorf("offset de página gigante deveria ser positivo e limitado, obteve %d", got)
	}
}

func TestPage_TotalPages(t *testing.T) {
	tests := []struct {
		total    int64
		limit    int
		expected int
	}{
		{25, 10, 3},
		{20, 10, 2},
		{0, 10, 0},
		{1, 10, 1},
	}

	for _, tt := range tests {
		p := Page[int]{Total: tt.total, Pagination: NewPagination(1, tt.limit)}
		if got := p.TotalPages(); got != tt.expected {
			t.Errorf("total %d limite %d: esperava %d páginas, obteve %d", tt.total, tt.limit, tt.expected, got)
		}
	}
}
