package auth

import "testing"

func TestGenerateToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateToken()
		if err != nil {
			t.Fatalf("GenerateToken() error: %v", err)
		}
		if len(token) != TokenLength {
			t.Errorf("token length = %d, want %d", len(token), TokenLength)
		}
		for _, r := range token {
			if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
				t.Errorf("token %q contains non-hex character %q", token, r)
			}
		}
		if seen[token] {
			t.Errorf("token %q generated twice", token)
		}
		seen[token] = true
	}
}
