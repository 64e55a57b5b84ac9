package usuario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/loja-web/internal/audit"
	dbpkg "github.com/BruksfildServices01/loja-web/internal/db"
	domain "github.com/BruksfildServices01/loja-web/internal/domain/usuario"
	"github.com/BruksfildServices01/loja-web/internal/httperr"
	"github.com/BruksfildServices01/loja-web/internal/infra/repository"
	"github.com/BruksfildServices01/loja-web/internal/models"
	"github.com/BruksfildServices01/loja-web/internal/validators"
)

type recordingSink struct {
	events []audit.Event
}

func (r *recordingSink) Dispatch(ev audit.Event) {
	r.events = append(r.events, ev)
}

// newSeededRepo devolve o admin padrão (id 1) e um usuário comum (id 2).
func newSeededRepo(t *testing.T) (*repository.UsuarioGormRepository, *models.Usuario, *models.Usuario) {
	t.Helper()
	ctx := context.Background()

	db, err := dbpkg.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	repo := repository.NewUsuarioGormRepository(db)
	require.NoError(t, repo.CreateTable(ctx))
	require.NoError(t, repo.SeedDefaultAdmin(ctx, "h"))
	require.NoError(t, repo.SeedDefaultUser(ctx, "h"))

	admin, err := repo.GetByID(ctx, domain.DefaultAdminID)
	require.NoError(t, err)
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	comum := all[1]
	return repo, admin, &comum
}

func TestAlterar(t *testing.T) {
	ctx := context.Background()
	repo, admin, comum := newSeededRepo(t)
	sink := &recordingSink{}
	uc := NewAlterar(repo, validators.NewEmailChecker(false), sink)

	err := uc.Execute(ctx, admin, AlterarInput{ID: comum.ID, Nome: "Gerente", Email: "gerente@email.com", Admin: true})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, comum.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gerente", got.Nome)
	assert.True(t, got.Admin)

	require.Len(t, sink.events, 1)
	assert.Equal(t, audit.ActionUsuarioAlterar, sink.events[0].Action)
	assert.Equal(t, admin.ID, *sink.events[0].UsuarioID)
}

func TestAlterarDefaultAdminProtected(t *testing.T) {
	ctx := context.Background()
	repo, admin, _ := newSeededRepo(t)
	uc := NewAlterar(repo, validators.NewEmailChecker(false), audit.Nop{})

	err := uc.Execute(ctx, admin, AlterarInput{ID: domain.DefaultAdminID, Nome: "X", Email: "x@email.com"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDefaultAdminProtected))

	got, err := repo.GetByID(ctx, domain.DefaultAdminID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAdminNome, got.Nome)
	assert.True(t, got.Admin)
}

func TestAlterarUnknownAndDuplicate(t *testing.T) {
	ctx := context.Background()
	repo, admin, comum := newSeededRepo(t)
	uc := NewAlterar(repo, validators.NewEmailChecker(false), audit.Nop{})

	err := uc.Execute(ctx, admin, AlterarInput{ID: 99, Nome: "X", Email: "x@email.com"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Execute(ctx, admin, AlterarInput{ID: comum.ID, Nome: "X", Email: domain.DefaultAdminEmail})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeEmailTaken))
}

func TestExcluir(t *testing.T) {
	ctx := context.Background()
	repo, admin, comum := newSeededRepo(t)
	sink := &recordingSink{}
	uc := NewExcluir(repo, sink)

	err := uc.Execute(ctx, admin, domain.DefaultAdminID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDefaultAdminProtected))

	// outro admin tentando se excluir
	outro, err := repo.Insert(ctx, &models.Usuario{Nome: "Admin 2", Email: "admin2@email.com", Senha: "h", Admin: true})
	require.NoError(t, err)
	err = uc.Execute(ctx, outro, outro.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSelfDelete))

	require.NoError(t, uc.Execute(ctx, admin, comum.ID))
	_, err = repo.GetByID(ctx, comum.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Execute(ctx, admin, comum.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.Len(t, sink.events, 1)
	assert.Equal(t, audit.ActionUsuarioExcluir, sink.events[0].Action)
}
