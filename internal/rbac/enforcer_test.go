package rbac_test

import (
	"testing"

	"go-jobtracker/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestEnforcer_RolePermissions(t *testing.T) {
	enforcer, err := rbac.NewEnforcer()
	assert.NoError(t, err)

	svc := rbac.NewService(enforcer)

	cases := []struct {
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"owner", "job", "create", true},
		{"owner", "job", "update", true},
		{"owner", "job", "read", true},
		{"owner", "company", "create", true},
		{"employee", "job", "read", true},
		{"employee", "job", "create", false},
		{"employee", "job", "update", false},
		{"employee", "company", "join", true},
		{"independent", "job", "create", true},
		{"independent", "job", "delete", true},
		{"independent", "company", "create", false},
		{"", "job", "read", false},
		{"admin", "job", "read", false},
	}

	for _, tc := range cases {
		allowed, err := svc.Enforce(tc.role, tc.resource, tc.action)
		assert.NoError(t, err)
		assert.Equalf(t, tc.allowed, allowed, "%s %s %s", tc.role, tc.resource, tc.action)
	}
}
