package repository

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/loja-web/internal/domain/usuario"
	"github.com/BruksfildServices01/loja-web/internal/models"
)

type UsuarioGormRepository struct {
	db *gorm.DB
}

func NewUsuarioGormRepository(db *gorm.DB) *UsuarioGormRepository {
	return &UsuarioGormRepository{db: db}
}

// --------------------------------------------------
// Schema / seed
// --------------------------------------------------

func (r *UsuarioGormRepository) CreateTable(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&models.Usuario{})
}

func (r *UsuarioGormRepository) SeedDefaultAdmin(ctx context.Context, passwordHash string) error {
	return r.seed(ctx, models.Usuario{
		Nome:  domain.DefaultAdminNome,
		Email: domain.DefaultAdminEmail,
		Senha: passwordHash,
		Admin: true,
	})
}

func (r *UsuarioGormRepository) SeedDefaultUser(ctx context.Context, passwordHash string) error {
	return r.seed(ctx, models.Usuario{
		Nome:  domain.DefaultUserNome,
		Email: domain.DefaultUserEmail,
		Senha: passwordHash,
	})
}

func (r *UsuarioGormRepository) seed(ctx context.Context, u models.Usuario) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Usuario{}).
		Where("email = ?", u.Email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Str("email", u.Email).Msg("default user already exists")
		return nil
	}

	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		return err
	}
	log.Info().Uint("id", u.ID).Str("email", u.Email).Bool("admin", u.Admin).Msg("default user created")
	return nil
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (r *UsuarioGormRepository) GetAll(ctx context.Context) ([]models.Usuario, error) {
	var usuarios []models.Usuario
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *UsuarioGormRepository) GetByID(ctx context.Context, id uint) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UsuarioGormRepository) GetByToken(ctx context.Context, token string) (*models.Usuario, error) {
	if token == "" {
		return nil, domain.ErrNotFound
	}

	var u models.Usuario
	if err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *UsuarioGormRepository) GetCredentialsByEmail(ctx context.Context, email string) (uint, string, error) {
	var u models.Usuario
	if err := r.db.WithContext(ctx).
		Select("id", "senha").
		Where("email = ?", domain.NormalizeEmail(email)).
		First(&u).Error; err != nil {
		return 0, "", notFound(err)
	}
	return u.ID, u.Senha, nil
}

// --------------------------------------------------
// Escrita
// --------------------------------------------------

func (r *UsuarioGormRepository) Insert(ctx context.Context, u *models.Usuario) (*models.Usuario, error) {
	u.Email = domain.NormalizeEmail(u.Email)
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Update altera apenas nome, email e o flag de administrador.
func (r *UsuarioGormRepository) Update(ctx context.Context, u *models.Usuario) error {
	res := r.db.WithContext(ctx).
		Model(&models.Usuario{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"nome":  u.Nome,
			"email": domain.NormalizeEmail(u.Email),
			"admin": u.Admin,
		})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return domain.ErrEmailTaken
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UsuarioGormRepository) UpdateTokenByEmail(ctx context.Context, token, email string) error {
	return r.db.WithContext(ctx).
		Model(&models.Usuario{}).
		Where("email = ?", domain.NormalizeEmail(email)).
		Update("token", token).Error
}

func (r *UsuarioGormRepository) UpdatePasswordByID(ctx context.Context, id uint, passwordHash string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Usuario{}).
		Where("id = ?", id).
		Update("senha", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UsuarioGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Usuario{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*UsuarioGormRepository)(nil)
