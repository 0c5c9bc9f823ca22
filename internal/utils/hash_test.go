// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"testing"

	"github.com/MKhiriev/go-bookshelf/models"
)

const testHashKey = "test-secret-key"

func TestHasher_Sum(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("test-data")

	sum1 := h.Sum(data)
	sum2 := h.Sum(data)

	if len(sum1) == 0 {
		t.Fatal("hash result is empty")
	}
	if !bytes.Equal(sum1, sum2) {
		t.Fatal("hash must be deterministic for the same input")
	}

	// verify against direct HMAC computation
	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	expected := mac.Sum(nil)

	if !bytes.Equal(sum1, expected) {
		t.Fatalf("unexpected hash value\nwant: %x\ngot:  %x", expected, sum1)
	}
}

func TestHasher_SumHex_WithUserPayload(t *testing.T) {
	h := NewHasher(testHashKey)

	payload, err := json.Marshal(models.User{
		Name:     "Jane Doe",
		Email:    "jane@x.com",
		Password: "abcd1234",
		Location: "NY",
		Title:    "Eng",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got := h.SumHex(payload)
	want := HashString(string(payload), testHashKey)
	if got != want {
		t.Fatalf("SumHex and HashString disagree\nSumHex:     %s\nHashString: %s", got, want)
	}
	if len(got) != sha256.Size*2 {
		t.Fatalf("expected %d hex chars, got %d", sha256.Size*2, len(got))
	}
}

func TestHasher_DifferentKeys(t *testing.T) {
	data := []byte("same data")

	a := NewHasher("key-a").Sum(data)
	b := NewHasher("key-b").Sum(data)

	if bytes.Equal(a, b) {
		t.Fatal("different keys must produce different digests")
	}
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher(testHashKey)
	body := []byte(`{"title":"Dune"}`)
	signature := h.SumHex(body)

	tests := []struct {
		name      string
		body      []byte
		signature string
		want      bool
	}{
		{"valid signature", body, signature, true},
		{"tampered body", []byte(`{"title":"Emma"}`), signature, false},
		{"wrong signature", body, hex.EncodeToString([]byte("nope")), false},
		{"not hex", body, "zz-not-hex", false},
		{"empty signature", body, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.Verify(tt.body, tt.signature); got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher(testHashKey)
	expected := h.SumHex([]byte("payload"))

	var wg sync.WaitGroup
	errs := make(chan string, 50)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := h.SumHex([]byte("payload")); got != expected {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent digest mismatch: %s", got)
	}
}

func TestHashString_EmptyInput(t *testing.T) {
	got := HashString("", testHashKey)

	mac := hmac.New(sha256.New, []byte(testHashKey))
	want := hex.EncodeToString(mac.Sum(nil))

	if got != want {
		t.Fatalf("unexpected digest for empty input\nwant: %s\ngot:  %s", want, got)
	}
}
