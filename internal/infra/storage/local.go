package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BruksfildServices01/loja-web/internal/domain/produto"
)

// Subdiretório das imagens de produto dentro de STATIC_DIR.
const productDir = "img/produtos"

type LocalStore struct {
	dir string
}

func NewLocalStore(staticDir string) *LocalStore {
	return &LocalStore{dir: filepath.Join(staticDir, filepath.FromSlash(productDir))}
}

func (s *LocalStore) Path(id uint) string {
	return filepath.Join(s.dir, produto.ImageName(id))
}

func (s *LocalStore) Save(_ context.Context, id uint, jpeg []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.Path(id), jpeg, 0o644)
}

func (s *LocalStore) Delete(_ context.Context, id uint) error {
	err := os.Remove(s.Path(id))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStore) URL(id uint) string {
	return "/static/" + productDir + "/" + produto.ImageName(id)
}

var _ ImageStore = (*LocalStore)(nil)
