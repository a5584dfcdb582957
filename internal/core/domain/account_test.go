package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseRole(t *testing.T) {
	if r, ok := ParseRole("USER"); !ok || r != RoleUser {
		t.Fatalf("expected USER to parse")
	}
	if r, ok := ParseRole("ADMIN"); !ok || r != RoleAdmin {
		t.Fatalf("expected ADMIN to parse")
	}
	for _, s := range []string{"", "user", "ROOT", "Admin"} {
		if _, ok := ParseRole(s); ok {
			t.Fatalf("%q must not parse as a role", s)
		}
	}
}

func TestPublicProjection_OmitsHash(t *testing.T) {
	account := Account{
		ID:           "id-1",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$digest",
		Name:         "Alice",
		Role:         RoleUser,
	}

	data, err := json.Marshal(account.Public())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(data)
	if strings.Contains(body, "digest") || strings.Contains(strings.ToLower(body), "password") {
		t.Fatalf("credential data leaked: %s", body)
	}
	if !strings.Contains(body, `"email":"a@x.com"`) {
		t.Fatalf("expected email in projection: %s", body)
	}
}
