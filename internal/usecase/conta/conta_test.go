package conta

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/loja-web/internal/audit"
	"github.com/BruksfildServices01/loja-web/internal/auth"
	dbpkg "github.com/BruksfildServices01/loja-web/internal/db"
	domain "github.com/BruksfildServices01/loja-web/internal/domain/usuario"
	"github.com/BruksfildServices01/loja-web/internal/httperr"
	"github.com/BruksfildServices01/loja-web/internal/infra/repository"
	"github.com/BruksfildServices01/loja-web/internal/models"
	"github.com/BruksfildServices01/loja-web/internal/validators"
)

func newRepo(t *testing.T) *repository.UsuarioGormRepository {
	t.Helper()
	db, err := dbpkg.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	repo := repository.NewUsuarioGormRepository(db)
	require.NoError(t, repo.CreateTable(context.Background()))
	return repo
}

func insertUser(t *testing.T, repo domain.Repository, nome, email, senha string) *models.Usuario {
	t.Helper()
	hash, err := auth.HashPassword(senha, bcrypt.MinCost)
	require.NoError(t, err)
	u, err := repo.Insert(context.Background(), &models.Usuario{Nome: nome, Email: email, Senha: hash})
	require.NoError(t, err)
	return u
}

func emails() *validators.EmailChecker {
	return validators.NewEmailChecker(false)
}

func TestLoginSuccessStoresToken(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	insertUser(t, repo, "Ana", "ana@email.com", "123456")

	token, err := NewLogin(repo, audit.Nop{}).Execute(ctx, " Ana@Email.com", "123456")
	require.NoError(t, err)
	assert.Len(t, token, 64)

	u, err := repo.GetByToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "ana@email.com", u.Email)
}

type recordingSink struct {
	events []audit.Event
}

func (r *recordingSink) Dispatch(ev audit.Event) {
	r.events = append(r.events, ev)
}

func TestLoginAuditIdentifiesUser(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	insertUser(t, repo, "Bia", "bia@email.com", "123456")
	ana := insertUser(t, repo, "Ana", "ana@email.com", "123456")
	sink := &recordingSink{}

	_, err := NewLogin(repo, sink).Execute(ctx, "ana@email.com", "123456")
	require.NoError(t, err)

	require.Len(t, sink.events, 1)
	ev := sink.events[0]
	assert.Equal(t, audit.ActionLogin, ev.Action)
	require.NotNil(t, ev.UsuarioID)
	require.NotNil(t, ev.EntityID)
	assert.Equal(t, ana.ID, *ev.UsuarioID)
	assert.Equal(t, ana.ID, *ev.EntityID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	insertUser(t, repo, "Ana", "ana@email.com", "123456")
	uc := NewLogin(repo, audit.Nop{})

	_, err := uc.Execute(ctx, "ana@email.com", "errada")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCredentials))

	_, err = uc.Execute(ctx, "ninguem@email.com", "123456")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCredentials))
}

func TestLoginLastSessionWins(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	insertUser(t, repo, "Ana", "ana@email.com", "123456")
	uc := NewLogin(repo, audit.Nop{})

	first, err := uc.Execute(ctx, "ana@email.com", "123456")
	require.NoError(t, err)
	second, err := uc.Execute(ctx, "ana@email.com", "123456")
	require.NoError(t, err)

	_, err = repo.GetByToken(ctx, first)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetByToken(ctx, second)
	assert.NoError(t, err)
}

func TestLogoutClearsToken(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	insertUser(t, repo, "Ana", "ana@email.com", "123456")

	token, err := NewLogin(repo, audit.Nop{}).Execute(ctx, "ana@email.com", "123456")
	require.NoError(t, err)
	u, err := repo.GetByToken(ctx, token)
	require.NoError(t, err)

	require.NoError(t, NewLogout(repo).Execute(ctx, u))
	_, err = repo.GetByToken(ctx, token)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, NewLogout(repo).Execute(ctx, nil))
}

func TestCadastro(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	uc := NewCadastro(repo, emails(), bcrypt.MinCost, audit.Nop{})

	u, err := uc.Execute(ctx, CadastroInput{Nome: " Bia ", Email: "Bia@Email.com", Senha: "segredo"})
	require.NoError(t, err)
	assert.Equal(t, "Bia", u.Nome)
	assert.Equal(t, "bia@email.com", u.Email)
	assert.False(t, u.Admin)

	_, hash, err := repo.GetCredentialsByEmail(ctx, "bia@email.com")
	require.NoError(t, err)
	assert.True(t, auth.VerifyPassword(hash, "segredo"))

	_, err = uc.Execute(ctx, CadastroInput{Nome: "Outra", Email: "bia@email.com", Senha: "x"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeEmailTaken))

	_, err = uc.Execute(ctx, CadastroInput{Nome: "Sem", Email: "sem-arroba", Senha: "x"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidEmail))
}

func TestAlterarPerfilKeepsAdminFlag(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	u := insertUser(t, repo, "Ana", "ana@email.com", "123456")
	u.Admin = true
	require.NoError(t, repo.Update(ctx, u))
	insertUser(t, repo, "Bia", "bia@email.com", "123456")

	uc := NewAlterarPerfil(repo, emails())
	require.NoError(t, uc.Execute(ctx, u, "Ana Maria", "anamaria@email.com"))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Nome)
	assert.Equal(t, "anamaria@email.com", got.Email)
	assert.True(t, got.Admin)

	err = uc.Execute(ctx, got, "Ana", "bia@email.com")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeEmailTaken))
}

func TestAlterarSenha(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	u := insertUser(t, repo, "Ana", "ana@email.com", "123456")
	uc := NewAlterarSenha(repo, bcrypt.MinCost)

	err := uc.Execute(ctx, u, "errada", "nova", "nova")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeWrongPassword))

	err = uc.Execute(ctx, u, "123456", "nova", "outra")
	assert.True(t, httperr.IsBusiness(err, httperr.CodePasswordMismatch))

	require.NoError(t, uc.Execute(ctx, u, "123456", "nova", "nova"))

	_, hash, err := repo.GetCredentialsByEmail(ctx, "ana@email.com")
	require.NoError(t, err)
	assert.True(t, auth.VerifyPassword(hash, "nova"))
	assert.False(t, auth.VerifyPassword(hash, "123456"))
}
