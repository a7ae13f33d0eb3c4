package rbac

import (
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/stretchr/testify/assert"
)

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	modelText := `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

	m, err := model.NewModelFromString(modelText)
	assert.NoError(t, err)

	e, err := casbin.NewEnforcer(m)
	assert.NoError(t, err)

	e.AddPolicy("hr_admin", "salary", "approve")
	e.AddPolicy("hr_admin", "candidate", "transition")
	e.AddPolicy("hr_viewer", "salary", "read")
	e.AddGroupingPolicy("hr_manager", "hr_admin")

	return e
}

func TestService_Enforce(t *testing.T) {
	svc := NewService(newTestEnforcer(t))

	allowed, err := svc.Enforce(EnforceRequest{Role: "hr_admin", Resource: "salary", Action: "approve"})
	assert.NoError(t, err)
	assert.True(t, allowed)

	denied, err := svc.Enforce(EnforceRequest{Role: "hr_viewer", Resource: "salary", Action: "approve"})
	assert.NoError(t, err)
	assert.False(t, denied)

	readOnly, err := svc.Enforce(EnforceRequest{Role: "hr_viewer", Resource: "salary", Action: "read"})
	assert.NoError(t, err)
	assert.True(t, readOnly)
}

func TestService_Enforce_RoleInheritance(t *testing.T) {
	svc := NewService(newTestEnforcer(t))

	allowed, err := svc.Enforce(EnforceRequest{Role: "hr_manager", Resource: "candidate", Action: "transition"})
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestService_Enforce_UnknownRole(t *testing.T) {
	svc := NewService(newTestEnforcer(t))

	allowed, err := svc.Enforce(EnforceRequest{Role: "intern", Resource: "salary", Action: "read"})
	assert.NoError(t, err)
	assert.False(t, allowed)
}
