package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/loja-web/internal/domain/produto"
	"github.com/BruksfildServices01/loja-web/internal/models"
)

type ProdutoGormRepository struct {
	db *gorm.DB
}

func NewProdutoGormRepository(db *gorm.DB) *ProdutoGormRepository {
	return &ProdutoGormRepository{db: db}
}

func (r *ProdutoGormRepository) CreateTable(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&models.Produto{})
}

func (r *ProdutoGormRepository) GetAll(ctx context.Context) ([]models.Produto, error) {
	var produtos []models.Produto
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&produtos).Error; err != nil {
		return nil, err
	}
	return produtos, nil
}

func (r *ProdutoGormRepository) GetByID(ctx context.Context, id uint) (*models.Produto, error) {
	var p models.Produto
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProdutoGormRepository) Insert(ctx context.Context, p *models.Produto) (*models.Produto, error) {
	p.ID = 0
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProdutoGormRepository) Update(ctx context.Context, p *models.Produto) error {
	res := r.db.WithContext(ctx).
		Model(&models.Produto{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"nome":      p.Nome,
			"preco":     p.Preco,
			"descricao": p.Descricao,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProdutoGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Produto{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ProdutoGormRepository)(nil)
