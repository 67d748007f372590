package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-bio-console/internal/logger"
	"github.com/MKhiriev/go-bio-console/migrations"
	"github.com/MKhiriev/go-bio-console/models"
)

func newTestDB(t *testing.T, dialect migrations.Dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	var classifier ErrorClassificator = NewPostgresErrorClassifier()
	if dialect == migrations.SQLite {
		classifier = NewSQLiteErrorClassifier()
	}
	return newDB(conn, dialect, classifier, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t, migrations.Postgres)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	ctx := context.Background()
	user := models.User{
		Login:        "john",
		PasswordHash: "$2a$10$hash",
		Role:         models.RoleUser,
		IsActive:     true,
	}
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users \(login,password_hash,role,is_active\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING user_id, created_at`).
		WithArgs(user.Login, user.PasswordHash, user.Role, user.IsActive).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "created_at"}).AddRow(1, now))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt=%v, got %v", now, created.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "john"})
	if !errors.Is(err, ErrLoginAlreadyExists) {
		t.Fatalf("expected ErrLoginAlreadyExists, got %v", err)
	}
}

func TestCreateUser_SQLiteUniqueViolation(t *testing.T) {
	db, mock := newTestDB(t, migrations.SQLite)
	repo := &userRepository{db: db, logger: logger.Nop()}

	mock.ExpectQuery(`INSERT INTO users \(login,password_hash,role,is_active\) VALUES \(\?,\?,\?,\?\)`).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

	_, err := repo.CreateUser(context.Background(), models.User{Login: "john"})
	if !errors.Is(err, ErrLoginAlreadyExists) {
		t.Fatalf("expected ErrLoginAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "john"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if !strings.Contains(err.Error(), "db network error") {
		t.Fatalf("expected the driver error to be kept, got %v", err)
	}
}

func TestCreateUser_RetriesTransientError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "created_at"}).AddRow(7, time.Now()))

	created, err := repo.CreateUser(context.Background(), models.User{Login: "john"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", created.UserID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFindUserByLogin_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows(userColumns).
		AddRow(3, "john", "$2a$10$hash", models.RoleAdmin, true, now)
	mock.ExpectQuery(`SELECT user_id, login, password_hash, role, is_active, created_at FROM users WHERE login = \$1`).
		WithArgs("john").
		WillReturnRows(rows)

	user, err := repo.FindUserByLogin(context.Background(), "john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UserID != 3 || user.Role != models.RoleAdmin || !user.IsActive || user.PasswordHash != "$2a$10$hash" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByLogin(context.Background(), "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE user_id = \$1`).
		WithArgs(int64(5)).
		WillReturnError(errors.New("boom"))

	_, err := repo.FindUserByID(context.Background(), 5)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestNewDB_UnsupportedScheme(t *testing.T) {
	_, err := NewDB(context.Background(), configDB("mysql://localhost/db"), logger.Nop())
	if !errors.Is(err, ErrUnsupportedDSN) {
		t.Fatalf("expected ErrUnsupportedDSN, got %v", err)
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	if got := c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}); got != Retryable {
		t.Errorf("busy: got %v, want Retryable", got)
	}
	if got := c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}); got != NonRetryable {
		t.Errorf("constraint: got %v, want NonRetryable", got)
	}
	if got := c.Classify(errors.New("other")); got != NonRetryable {
		t.Errorf("other: got %v, want NonRetryable", got)
	}
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	if got := c.Classify(pgError(pgerrcode.DeadlockDetected)); got != Retryable {
		t.Errorf("deadlock: got %v, want Retryable", got)
	}
	if got := c.Classify(pgError(pgerrcode.UniqueViolation)); got != NonRetryable {
		t.Errorf("unique: got %v, want NonRetryable", got)
	}
	if got := c.Classify(nil); got != NonRetryable {
		t.Errorf("nil: got %v, want NonRetryable", got)
	}
}

func TestWithSQLiteOptions(t *testing.T) {
	if got := withSQLiteOptions("bio.db"); got != "bio.db?_foreign_keys=on&_busy_timeout=5000" {
		t.Errorf("unexpected dsn %q", got)
	}
	if got := withSQLiteOptions("file:bio.db?cache=shared"); got != "file:bio.db?cache=shared&_foreign_keys=on&_busy_timeout=5000" {
		t.Errorf("unexpected dsn %q", got)
	}
}
