package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/oseasjs/nest-crud-jwt/internal/domain"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

// Register persists a new user with a bcrypt hash (per-record salt is
// embedded in the hash). A duplicate username maps to ErrConflict.
func (r *UserRepo) Register(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`INSERT INTO users(username, password_hash) VALUES(?,?)`, username, string(hash))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username '%s' already exists: %w", username, domain.ErrConflict)
		}
		return err
	}
	return nil
}

// Verify returns the username on a credential match. Unknown user and
// wrong password are deliberately indistinguishable.
func (r *UserRepo) Verify(username, password string) (string, bool) {
	u, err := r.ByUsername(username)
	if err != nil || u == nil {
		return "", false
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", false
	}
	return u.Username, true
}

func (r *UserRepo) ByUsername(username string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id, username, password_hash FROM users WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	return errors.As(err, &serr) && serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
