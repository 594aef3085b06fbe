package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/rohan-06-eng/cantilver-expense/internal/models"
	"github.com/rohan-06-eng/cantilver-expense/internal/storage"
)

// Driver-fault paths are exercised with sqlmock; the happy paths run against
// a real temp database in sqlite_test.go.

func TestCreateUserFaultMapsToUnavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(errors.New("disk I/O error"))

	store := NewWithDB(db)
	createErr := store.CreateUser(context.Background(), models.NewUser("alice", "hash"))
	if !errors.Is(createErr, storage.ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", createErr)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestListCategoriesFaultMapsToUnavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name FROM categories`).
		WillReturnError(errors.New("database is locked"))

	store := NewWithDB(db)
	_, listErr := store.ListCategories(context.Background())
	if !errors.Is(listErr, storage.ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", listErr)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestSummarizeFaultMapsToUnavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT c.name, SUM`).
		WillReturnError(errors.New("disk I/O error"))

	store := NewWithDB(db)
	_, sumErr := store.SummarizeByCategory(context.Background(), "user-1")
	if !errors.Is(sumErr, storage.ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", sumErr)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
