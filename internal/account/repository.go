package account

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists accounts.
type Repository interface {
	Create(ctx context.Context, acct Account) error
	FindByIdentifier(ctx context.Context, identifier string) (Account, error)
	FindByID(ctx context.Context, id string) (Account, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}

// PostgresRepository implements Repository using PostgreSQL. The unique
// indexes on email and username are the authoritative uniqueness guard; a
// racing insert that slips past the service pre-check is rejected here.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed account repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new account. A unique-constraint violation on email or
// username surfaces as ErrEmailOrUsernameTaken.
func (r *PostgresRepository) Create(ctx context.Context, acct Account) error {
	acctID, err := uuid.Parse(acct.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO accounts (id, name, email, username, password_hash, phone, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`, acctID, acct.Name, acct.Email, acct.Username, acct.PasswordHash, acct.Phone, acct.CreatedAt.UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailOrUsernameTaken
		}
		return err
	}
	return nil
}

// FindByIdentifier fetches the account whose email or username equals the
// given identifier.
func (r *PostgresRepository) FindByIdentifier(ctx context.Context, identifier string) (Account, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, username, password_hash, phone, created_at
        FROM accounts WHERE email = $1 OR username = $1`, identifier)
	return scanAccount(row)
}

// FindByID fetches an account by its identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Account, error) {
	acctID, err := uuid.Parse(id)
	if err != nil {
		return Account{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT id, name, email, username, password_hash, phone, created_at
        FROM accounts WHERE id = $1`, acctID)
	return scanAccount(row)
}

// ExistsByEmailOrUsername reports whether any account already holds the given
// email or username, in a single query.
func (r *PostgresRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1 OR username = $2)`,
		email, username).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func scanAccount(row pgx.Row) (Account, error) {
	var (
		id        uuid.UUID
		createdAt time.Time
		acct      Account
	)
	if err := row.Scan(&id, &acct.Name, &acct.Email, &acct.Username, &acct.PasswordHash, &acct.Phone, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, err
	}
	acct.ID = id.String()
	acct.CreatedAt = createdAt.UTC()
	return acct, nil
}
