package reqctx

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type stubClaims struct {
	userID    uuid.UUID
	sessionID *uuid.UUID
	expiresAt time.Time
}

func (s stubClaims) GetUserID() uuid.UUID     { return s.userID }
func (s stubClaims) GetSessionID() *uuid.UUID { return s.sessionID }
func (s stubClaims) GetTokenType() string     { return "access" }
func (s stubClaims) IsExpired() bool          { return time.Now().After(s.expiresAt) }

func TestClaimsRoundTrip(t *testing.T) {
	uid := uuid.New()
	ctx := WithClaims(context.Background(), stubClaims{
		userID:    uid,
		expiresAt: time.Now().Add(time.Hour),
	})

	claims := ClaimsFromContext(ctx)
	if claims == nil {
		t.Fatal("ClaimsFromContext() = nil after WithClaims")
	}
	if claims.GetUserID() != uid {
		t.Errorf("GetUserID() = %s, want %s", claims.GetUserID(), uid)
	}

	got, authed := UserIDFromContext(ctx)
	if !authed || got != uid {
		t.Errorf("UserIDFromContext() = %s, %t, want %s, true", got, authed, uid)
	}
}

func TestClaimsAbsent(t *testing.T) {
	ctx := context.Background()
	if ClaimsFromContext(ctx) != nil {
		t.Error("ClaimsFromContext() should be nil on a bare context")
	}
	if got, authed := UserIDFromContext(ctx); authed || got != uuid.Nil {
		t.Errorf("UserIDFromContext() = %s, %t, want Nil, false", got, authed)
	}
}
