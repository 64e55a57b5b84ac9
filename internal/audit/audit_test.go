package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/loja-web/internal/db"
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

func uintPtr(v uint) *uint { return &v }

func TestDispatcherCloseDrainsQueue(t *testing.T) {
	db := newTestDB(t)
	d := NewDispatcher(New(db))

	for i := 0; i < 5; i++ {
		d.Dispatch(Event{
			UsuarioID: uintPtr(1),
			Action:    ActionProdutoInserir,
			Entity:    EntityProduto,
			EntityID:  uintPtr(uint(i + 1)),
			Metadata:  map[string]any{"nome": "Bolo"},
		})
	}
	d.Close()

	var logs []models.AuditLog
	require.NoError(t, db.Order("id").Find(&logs).Error)
	require.Len(t, logs, 5)
	assert.Equal(t, ActionProdutoInserir, logs[0].Action)
	assert.JSONEq(t, `{"nome":"Bolo"}`, logs[0].Metadata)
	assert.Equal(t, uint(1), *logs[0].UsuarioID)
}

func TestDispatchAfterCloseIsIgnored(t *testing.T) {
	db := newTestDB(t)
	d := NewDispatcher(New(db))
	d.Close()
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: ActionLogin, Entity: EntityUsuario})
	})

	var count int64
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListFiltersAndPaginates(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	l := New(db)

	for i := 0; i < 3; i++ {
		require.NoError(t, l.Log(Event{Action: ActionProdutoExcluir, Entity: EntityProduto}))
	}
	require.NoError(t, l.Log(Event{Action: ActionLogin, Entity: EntityUsuario}))

	page, err := l.List(ctx, Filter{Entity: EntityProduto, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Logs, 2)
	assert.True(t, page.HasNext())

	page, err = l.List(ctx, Filter{Entity: EntityProduto, Limit: 2, Page: 2})
	require.NoError(t, err)
	assert.Len(t, page.Logs, 1)
	assert.False(t, page.HasNext())

	page, err = l.List(ctx, Filter{Action: ActionLogin})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 50, page.Limit)
}

func TestListDateRange(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	l := New(db)

	old := models.AuditLog{Action: ActionLogin, CreatedAt: time.Now().AddDate(0, 0, -10)}
	require.NoError(t, db.Create(&old).Error)
	require.NoError(t, l.Log(Event{Action: ActionLogin}))

	from := time.Now().AddDate(0, 0, -1)
	page, err := l.List(ctx, Filter{From: &from})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	to := time.Now().AddDate(0, 0, -5)
	page, err = l.List(ctx, Filter{To: &to})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
}
