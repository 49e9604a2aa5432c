package crypto

import (
	"errors"
	"strings"
	"testing"
)

// cheap parameters keep the tests fast
var testArgon2Params = Argon2Params{Time: 1, Memory: 64, Threads: 1}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(testArgon2Params)

	encoded, err := h.Hash("s3cr3t-pass")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$m=64,t=1,p=1$") {
		t.Fatalf("unexpected encoding: %s", encoded)
	}
	if strings.Contains(encoded, "s3cr3t-pass") {
		t.Fatalf("hash contains plaintext")
	}

	ok, err := h.Verify("s3cr3t-pass", encoded)
	if err != nil || !ok {
		t.Fatalf("Verify(correct) = %v, %v; want true, nil", ok, err)
	}

	ok, err = h.Verify("wrong", encoded)
	if err != nil || ok {
		t.Fatalf("Verify(wrong) = %v, %v; want false, nil", ok, err)
	}
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewPasswordHasher(testArgon2Params)

	a, err := h.Hash("same")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	b, err := h.Hash("same")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if a == b {
		t.Fatalf("expected different hashes for the same password")
	}
}

func TestPasswordHasher_VerifiesWithEncodedParams(t *testing.T) {
	encoded, err := NewPasswordHasher(Argon2Params{Time: 2, Memory: 128, Threads: 2}).Hash("pw-123456")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	ok, err := NewPasswordHasher(testArgon2Params).Verify("pw-123456", encoded)
	if err != nil || !ok {
		t.Fatalf("Verify = %v, %v; want true, nil", ok, err)
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	h := NewPasswordHasher(testArgon2Params)

	cases := []string{
		"",
		"plain",
		"$argon2i$v=19$m=64,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=64,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=0,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=64,t=1,p=1$!!!$aGFzaA",
		"$argon2id$v=19$m=64,t=1,p=1$c2FsdA$",
	}

	for _, c := range cases {
		if _, err := h.Verify("pw", c); !errors.Is(err, ErrMalformedHash) {
			t.Fatalf("Verify(%q) err = %v, want ErrMalformedHash", c, err)
		}
	}
}
