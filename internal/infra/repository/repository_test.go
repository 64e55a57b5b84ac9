package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/loja-web/internal/db"
	"github.com/BruksfildServices01/loja-web/internal/domain/produto"
	"github.com/BruksfildServices01/loja-web/internal/domain/usuario"
	"github.com/BruksfildServices01/loja-web/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := dbpkg.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newUsuarioRepo(t *testing.T) *UsuarioGormRepository {
	t.Helper()
	repo := NewUsuarioGormRepository(newTestDB(t))
	require.NoError(t, repo.CreateTable(context.Background()))
	return repo
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newUsuarioRepo(t)

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.SeedDefaultAdmin(ctx, "hash-admin"))
		require.NoError(t, repo.SeedDefaultUser(ctx, "hash-user"))
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	admin, err := repo.GetByID(ctx, usuario.DefaultAdminID)
	require.NoError(t, err)
	assert.Equal(t, usuario.DefaultAdminEmail, admin.Email)
	assert.True(t, admin.Admin)

	assert.Equal(t, usuario.DefaultUserEmail, all[1].Email)
	assert.False(t, all[1].Admin)
}

func TestCreateTableIsIdempotent(t *testing.T) {
	repo := newUsuarioRepo(t)
	assert.NoError(t, repo.CreateTable(context.Background()))
}

func TestUsuarioInsertAndLookups(t *testing.T) {
	ctx := context.Background()
	repo := newUsuarioRepo(t)

	u, err := repo.Insert(ctx, &models.Usuario{Nome: "Maria", Email: " Maria@Email.com ", Senha: "hash"})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "maria@email.com", u.Email)

	id, hash, err := repo.GetCredentialsByEmail(ctx, "MARIA@email.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
	assert.Equal(t, "hash", hash)

	_, err = repo.Insert(ctx, &models.Usuario{Nome: "Outra", Email: "maria@email.com", Senha: "x"})
	assert.ErrorIs(t, err, usuario.ErrEmailTaken)
}

func TestUsuarioMissingRecordsReturnNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newUsuarioRepo(t)

	_, err := repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, usuario.ErrNotFound)

	_, _, err = repo.GetCredentialsByEmail(ctx, "ninguem@email.com")
	assert.ErrorIs(t, err, usuario.ErrNotFound)

	_, err = repo.GetByToken(ctx, "nao-existe")
	assert.ErrorIs(t, err, usuario.ErrNotFound)

	assert.ErrorIs(t, repo.Update(ctx, &models.Usuario{ID: 99, Nome: "x", Email: "x@x.com"}), usuario.ErrNotFound)
	assert.ErrorIs(t, repo.UpdatePasswordByID(ctx, 99, "h"), usuario.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 99), usuario.ErrNotFound)
}

func TestUsuarioTokenLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newUsuarioRepo(t)

	u, err := repo.Insert(ctx, &models.Usuario{Nome: "João", Email: "joao@email.com", Senha: "hash"})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateTokenByEmail(ctx, "abc123", "joao@email.com"))

	found, err := repo.GetByToken(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	require.NoError(t, repo.UpdateTokenByEmail(ctx, "", "joao@email.com"))

	_, err = repo.GetByToken(ctx, "abc123")
	assert.ErrorIs(t, err, usuario.ErrNotFound)

	// token vazio nunca identifica ninguém, mesmo com usuários deslogados
	_, err = repo.GetByToken(ctx, "")
	assert.ErrorIs(t, err, usuario.ErrNotFound)
}

func TestUsuarioUpdateAndPassword(t *testing.T) {
	ctx := context.Background()
	repo := newUsuarioRepo(t)

	u, err := repo.Insert(ctx, &models.Usuario{Nome: "Ana", Email: "ana@email.com", Senha: "old"})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, &models.Usuario{Nome: "Bia", Email: "bia@email.com", Senha: "x"})
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, &models.Usuario{ID: u.ID, Nome: "Ana Maria", Email: "ana.maria@email.com", Admin: true}))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Nome)
	assert.Equal(t, "ana.maria@email.com", got.Email)
	assert.True(t, got.Admin)
	assert.Equal(t, "old", got.Senha)

	err = repo.Update(ctx, &models.Usuario{ID: u.ID, Nome: "Ana", Email: "bia@email.com"})
	assert.ErrorIs(t, err, usuario.ErrEmailTaken)

	require.NoError(t, repo.UpdatePasswordByID(ctx, u.ID, "new"))
	_, hash, err := repo.GetCredentialsByEmail(ctx, "ana.maria@email.com")
	require.NoError(t, err)
	assert.Equal(t, "new", hash)

	require.NoError(t, repo.Delete(ctx, u.ID))
	_, err = repo.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, usuario.ErrNotFound)
}

func newProdutoRepo(t *testing.T) *ProdutoGormRepository {
	t.Helper()
	repo := NewProdutoGormRepository(newTestDB(t))
	require.NoError(t, repo.CreateTable(context.Background()))
	return repo
}

func TestProdutoInsertThenGetByIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newProdutoRepo(t)

	p, err := repo.Insert(ctx, &models.Produto{Nome: "Caneca", Preco: 35, Descricao: "Caneca de cerâmica 300ml"})
	require.NoError(t, err)
	require.NotZero(t, p.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Caneca", got.Nome)
	assert.Equal(t, 35, got.Preco)
	assert.Equal(t, "Caneca de cerâmica 300ml", got.Descricao)
}

func TestProdutoUpdateDeleteAndList(t *testing.T) {
	ctx := context.Background()
	repo := newProdutoRepo(t)

	a, err := repo.Insert(ctx, &models.Produto{Nome: "A", Preco: 1})
	require.NoError(t, err)
	b, err := repo.Insert(ctx, &models.Produto{Nome: "B", Preco: 2})
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, &models.Produto{ID: a.ID, Nome: "A2", Preco: 10, Descricao: "nova"}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A2", all[0].Nome)
	assert.Equal(t, 10, all[0].Preco)

	require.NoError(t, repo.Delete(ctx, b.ID))
	_, err = repo.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, produto.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, b.ID), produto.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &models.Produto{ID: 999, Nome: "x"}), produto.ErrNotFound)
}
