package permission

import (
	"github.com/casbin/casbin/v2/model"
)

// Subjects are roles taken from the access token. An admin inherits every
// user permission through the g grouping.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && r.obj == p.obj && (r.act == p.act || p.act == "*")
`

func newModel() (model.Model, error) {
	return model.NewModelFromString(rbacModel)
}
