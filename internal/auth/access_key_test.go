package auth

import "testing"

func TestVerifyAccessKeyPlain(t *testing.T) {
	if err := VerifyAccessKey("open-sesame", "", "open-sesame"); err != nil {
		t.Errorf("matching key rejected: %v", err)
	}
	if err := VerifyAccessKey("open-sesame", "", "wrong"); err == nil {
		t.Error("wrong key accepted")
	}
}

func TestVerifyAccessKeyHashed(t *testing.T) {
	hash, err := HashAccessKey("open-sesame", 4)
	if err != nil {
		t.Fatalf("HashAccessKey: %v", err)
	}

	if err := VerifyAccessKey("", hash, "open-sesame"); err != nil {
		t.Errorf("matching key rejected: %v", err)
	}
	if err := VerifyAccessKey("", hash, "wrong"); err == nil {
		t.Error("wrong key accepted")
	}
	// Hash takes precedence over a configured plain key.
	if err := VerifyAccessKey("other-key", hash, "other-key"); err == nil {
		t.Error("plain key accepted despite configured hash")
	}
}

func TestVerifyAccessKeyUnconfigured(t *testing.T) {
	if err := VerifyAccessKey("", "", "anything"); err == nil {
		t.Error("unconfigured verifier accepted a key")
	}
}
