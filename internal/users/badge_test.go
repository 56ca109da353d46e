package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleBadgeColorKnownRoles(t *testing.T) {
	assert.Equal(t, roleBadgeColors["admin"], RoleBadgeColor("ADMIN"))
	assert.Equal(t, roleBadgeColors["staff"], RoleBadgeColor(" staff "))
}

func TestRoleBadgeColorFallback(t *testing.T) {
	assert.Equal(t, roleBadgeFallback, RoleBadgeColor("manager"))
}
