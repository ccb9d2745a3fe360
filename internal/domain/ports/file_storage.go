package ports

import (
	"context"
	"io"
)

// FileStorage guarda arquivos enviados e devolve um caminho público
type FileStorage interface {
	// Save grava o conteúdo sob o namespace e retorna o caminho público
	Save(ctx context.Context, namespace, extension string, content io.Reader) (string, error)
	// Remove apaga um arquivo do namespace a partir do caminho público;
	// caminhos de outros namespaces são ignorados
	Remove(ctx context.Context, namespace, publicPath string) error
}
