package utils

import "testing"

func TestGenHashID(t *testing.T) {
	code := GenHashID("salt-a", 42)
	if len(code) < 12 {
		t.Fatalf("share code too short: %q", code)
	}
	// 同 salt 同 ID 必须稳定
	if again := GenHashID("salt-a", 42); again != code {
		t.Fatalf("not deterministic: %q != %q", again, code)
	}
	// 不同 salt 不可互推
	if other := GenHashID("salt-b", 42); other == code {
		t.Fatal("different salts produced the same code")
	}
	if other := GenHashID("salt-a", 43); other == code {
		t.Fatal("different ids produced the same code")
	}
}
