package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_Success(t *testing.T) {
	hash, err := HashPassword("abcd1234", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "abcd1234" {
		t.Fatal("hash must differ from the plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("abcd1234")); err != nil {
		t.Fatalf("hash does not match password: %v", err)
	}
}

func TestHashPassword_DefaultCost(t *testing.T) {
	hash, err := HashPassword("abcd1234", 0)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	a, _ := HashPassword("abcd1234", bcrypt.MinCost)
	b, _ := HashPassword("abcd1234", bcrypt.MinCost)
	if a == b {
		t.Fatal("two hashes of the same password must differ")
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73), bcrypt.MinCost)
	if !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got: %v", err)
	}
}

func TestHashPassword_InvalidCost(t *testing.T) {
	_, err := HashPassword("abcd1234", bcrypt.MaxCost+1)
	if err == nil {
		t.Fatal("expected error for invalid cost, got nil")
	}
}
