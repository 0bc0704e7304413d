package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqmarzaini/diecast-admin-service/internal/model"
)

func newDetailMockRepo(t *testing.T) (*DetailPGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewDetailPGRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestDetailInsert(t *testing.T) {
	repo, mock := newDetailMockRepo(t)

	now := time.Now()
	detail := &model.CollectionDetail{
		BaseModel:    model.BaseModel{ID: "d-1", CreatedAt: now, UpdatedAt: now},
		CollectionID: "c-1",
		PurchaseID:   "p-1",
		Quantity:     2,
		BrandID:      1,
	}

	mock.ExpectExec("INSERT INTO collection_detail").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), detail)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetailFindByPurchaseIDNoRowsReturnsNil(t *testing.T) {
	repo, mock := newDetailMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM collection_detail WHERE purchase_id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "collection_id", "purchase_id", "quantity"}))

	detail, err := repo.FindByPurchaseID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, detail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetailUpdateByPurchaseID(t *testing.T) {
	repo, mock := newDetailMockRepo(t)

	mock.ExpectExec("UPDATE collection_detail").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateByPurchaseID(context.Background(), &model.CollectionDetail{
		PurchaseID: "p-1",
		Quantity:   3,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDetailDeleteByPurchaseID(t *testing.T) {
	repo, mock := newDetailMockRepo(t)

	mock.ExpectExec("DELETE FROM collection_detail WHERE purchase_id").
		WithArgs("p-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteByPurchaseID(context.Background(), "p-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
