package storage

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/loja-web/internal/config"
)

// ImageStore guarda a miniatura JPEG de cada produto. O nome do arquivo
// sai sempre de produto.ImageName(id).
type ImageStore interface {
	Save(ctx context.Context, id uint, jpeg []byte) error
	// Delete não falha quando a imagem não existe.
	Delete(ctx context.Context, id uint) error
	URL(id uint) string
}

// New escolhe o backend configurado em IMAGE_STORAGE.
func New(cfg *config.Config) (ImageStore, error) {
	switch cfg.ImageStorage {
	case "local", "":
		return NewLocalStore(cfg.StaticDir), nil
	case "s3":
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unsupported image storage %q", cfg.ImageStorage)
	}
}
