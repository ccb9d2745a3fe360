package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/ports"
)

// PublicPrefix é o prefixo de URL sob o qual os arquivos são servidos
const PublicPrefix = "/uploads"

// LocalFileStorage implementa ports.FileStorage no sistema de arquivos local
type LocalFileStorage struct {
	root string
}

// NewLocalFileStorage cria o storage com raiz em root, criando o diretório se preciso
func NewLocalFileStorage(root string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalFileStorage{root: root}, nil
}

var _ ports.FileStorage = (*LocalFileStorage)(nil)

// Root retorna o diretório servido em PublicPrefix
func (s *LocalFileStorage) Root() string {
	return s.root
}

func (s *LocalFileStorage) Save(ctx context.Context, namespace, extension string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	namespace = cleanNamespace(namespace)
	dir := filepath.Join(s.root, namespace)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create namespace dir: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(extension)
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(file, content); err != nil {
		_ = file.Close()
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return path.Join(PublicPrefix, namespace, name), nil
}

// Remove apaga o arquivo de um caminho público. Só remove arquivos que estão
// diretamente sob o namespace informado; outros caminhos são ignorados.
func (s *LocalFileStorage) Remove(ctx context.Context, namespace, publicPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	namespace = cleanNamespace(namespace)
	rel, ok := strings.CutPrefix(path.Clean("/"+publicPath), path.Join(PublicPrefix, namespace)+"/")
	if !ok || rel == "" || strings.Contains(rel, "/") {
		return nil
	}

	target := filepath.Join(s.root, namespace, rel)
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func cleanNamespace(namespace string) string {
	return filepath.Base(filepath.Clean("/" + namespace))
}
