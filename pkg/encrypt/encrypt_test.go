package encrypt

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "password123" {
		t.Fatal("hash should not equal plaintext")
	}
	if !VerifyPassword(hash, "password123") {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, "password124") {
		t.Fatal("wrong password accepted")
	}
}

func TestHashNotDeterministic(t *testing.T) {
	// bcrypt 自带随机盐
	h1, _ := HashPassword("same")
	h2, _ := HashPassword("same")
	if h1 == h2 {
		t.Fatal("two hashes of the same password should differ")
	}
}
