package session

import (
	"context"
	"testing"
	"time"
)

func TestManager_CreateAndResolve(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)
	ctx := context.Background()

	token, err := m.Create(ctx, 42)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if token == "" {
		t.Fatal("Create() returned an empty token")
	}

	userID, ok, err := m.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !ok {
		t.Fatal("Resolve() did not find a freshly created session")
	}
	if userID != 42 {
		t.Errorf("Resolve() userID = %d, want 42", userID)
	}
}

func TestManager_TokensAreUnique(t *testing.T) {
	m := NewManager(NewMemoryStore(), 0)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := m.Create(ctx, int64(i))
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if seen[token] {
			t.Fatalf("Create() returned duplicate token %q", token)
		}
		seen[token] = true
	}
}

func TestManager_ResolveUnknownToken(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)
	ctx := context.Background()

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "garbage token", token: "not-a-real-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := m.Resolve(ctx, tt.token)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if ok {
				t.Errorf("Resolve(%q) found a session, want none", tt.token)
			}
		})
	}
}

func TestManager_DestroyIsIdempotent(t *testing.T) {
	m := NewManager(NewMemoryStore(), time.Hour)
	ctx := context.Background()

	token, err := m.Create(ctx, 7)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := m.Destroy(ctx, token); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if _, ok, _ := m.Resolve(ctx, token); ok {
		t.Fatal("Resolve() found a destroyed session")
	}

	// Destroying again, or destroying tokens that never existed, still succeeds.
	if err := m.Destroy(ctx, token); err != nil {
		t.Errorf("second Destroy() error = %v", err)
	}
	if err := m.Destroy(ctx, "never-existed"); err != nil {
		t.Errorf("Destroy() of unknown token error = %v", err)
	}
	if err := m.Destroy(ctx, ""); err != nil {
		t.Errorf("Destroy() of empty token error = %v", err)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	m := NewManager(NewMemoryStore(), 20*time.Millisecond)
	ctx := context.Background()

	token, err := m.Create(ctx, 1)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	time.Sleep(40 * time.Millisecond)

	if _, ok, _ := m.Resolve(ctx, token); ok {
		t.Fatal("Resolve() found a session past its idle deadline")
	}
}

func TestMemoryStore_ResolveRefreshesDeadline(t *testing.T) {
	m := NewManager(NewMemoryStore(), 60*time.Millisecond)
	ctx := context.Background()

	token, err := m.Create(ctx, 1)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Keep touching the session; each hit should push the deadline out.
	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		if _, ok, _ := m.Resolve(ctx, token); !ok {
			t.Fatalf("Resolve() lost the session on touch %d", i)
		}
	}
}

func TestManager_ZeroTTLNeverExpires(t *testing.T) {
	m := NewManager(NewMemoryStore(), 0)
	ctx := context.Background()

	token, err := m.Create(ctx, 9)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	time.Sleep(20 * time.Millisecond)

	if _, ok, _ := m.Resolve(ctx, token); !ok {
		t.Fatal("Resolve() lost a session with expiry disabled")
	}
}
