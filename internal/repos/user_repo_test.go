package repos_test

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/oseasjs/nest-crud-jwt/internal/domain"
	"github.com/oseasjs/nest-crud-jwt/internal/repos"
)

func TestRegisterHashesPassword(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)

	if err := userRepo.Register("alice", "Secret1!pass"); err != nil {
		t.Fatalf("register: %v", err)
	}

	var hash string
	if err := db.Get(&hash, `SELECT password_hash FROM users WHERE username='alice'`); err != nil {
		t.Fatalf("select hash: %v", err)
	}
	if strings.Contains(hash, "Secret1!pass") {
		t.Fatal("hash contains plaintext password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("unexpected hash format: %s", hash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("Secret1!pass")); err != nil {
		t.Fatalf("stored hash does not validate the password: %v", err)
	}
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)

	if err := userRepo.Register("alice", "Secret1!pass"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err = userRepo.Register("alice", "AnotherPass1!")
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestVerifyCredentials(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	userRepo := repos.NewUserRepo(db)
	if err := userRepo.Register("alice", "Secret1!pass"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if name, ok := userRepo.Verify("alice", "Secret1!pass"); !ok || name != "alice" {
		t.Fatalf("want (alice,true), got (%s,%v)", name, ok)
	}
	// wrong password and unknown user look identical to the caller
	if _, ok := userRepo.Verify("alice", "wrongpass1!A"); ok {
		t.Fatal("wrong password verified")
	}
	if _, ok := userRepo.Verify("mallory", "Secret1!pass"); ok {
		t.Fatal("unknown user verified")
	}
}
