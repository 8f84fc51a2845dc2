package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsAdmin(t *testing.T) {
	t.Parallel()
	assert.False(t, RoleUser.IsAdmin())
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, Role(0).IsAdmin())
}

func TestUser_IsActive(t *testing.T) {
	t.Parallel()
	assert.True(t, User{Status: StatusActive}.IsActive())
	assert.False(t, User{Status: StatusInactive}.IsActive())
	assert.False(t, User{}.IsActive())
}
