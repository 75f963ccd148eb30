package authorization

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipalFromContext(t *testing.T) {
	_, ok := PrincipalFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithPrincipal(context.Background(), Principal{UserID: 7, Email: "a@b.c", Role: RoleAdmin})
	p, ok := PrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(7), p.UserID)
	assert.True(t, p.Role.IsAdmin())
}

func TestPrincipalFromContext_ZeroUserIsAnonymous(t *testing.T) {
	ctx := WithPrincipal(context.Background(), Principal{})
	_, ok := PrincipalFromContext(ctx)
	assert.False(t, ok)
}

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseUserRole("admin"))
	assert.Equal(t, RoleUser, ParseUserRole("user"))
	assert.Equal(t, RoleUser, ParseUserRole("root"))
}
