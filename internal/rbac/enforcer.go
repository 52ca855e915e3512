package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// The role set is a fixed three-value enum, so the policy is static and
// ships with the binary instead of being loaded per company.
var policies = [][]string{
	{"owner", "job", "read"},
	{"owner", "job", "create"},
	{"owner", "job", "update"},
	{"owner", "company", "create"},
	{"owner", "company", "read"},
	{"employee", "job", "read"},
	{"employee", "company", "join"},
	{"employee", "company", "read"},
	{"independent", "job", "read"},
	{"independent", "job", "create"},
	{"independent", "job", "update"},
	{"independent", "job", "delete"},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
