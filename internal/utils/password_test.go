package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!", 4) // minimum cost keeps the test fast
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "s3cret!" {
		t.Fatal("hash must not equal the plain password")
	}
	if !VerifyPassword(hash, "s3cret!") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestVerifyPasswordOnGarbageHash(t *testing.T) {
	if VerifyPassword("not-a-bcrypt-hash", "anything") {
		t.Fatal("garbage hash verified")
	}
}
