package permission

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PolicyFile is the on-disk seed for the casbin_rule table.
type PolicyFile struct {
	Inherit  []RoleInheritance `yaml:"inherit"`
	Policies []PolicyRule      `yaml:"policies"`
}

type RoleInheritance struct {
	Role    string `yaml:"role"`
	Inherit string `yaml:"inherits"`
}

type PolicyRule struct {
	Role     string   `yaml:"role"`
	Resource string   `yaml:"resource"`
	Actions  []string `yaml:"actions"`
}

// DefaultPolicy is used when no seed file is configured.
func DefaultPolicy() *PolicyFile {
	return &PolicyFile{
		Inherit: []RoleInheritance{{Role: "admin", Inherit: "user"}},
		Policies: []PolicyRule{
			{Role: "admin", Resource: ResourceSubscriptions, Actions: []string{ActionReview}},
			{Role: "admin", Resource: ResourceVideos, Actions: []string{ActionManage}},
		},
	}
}

func LoadPolicyFile(path string) (*PolicyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}
	return ParsePolicy(data)
}

func ParsePolicy(data []byte) (*PolicyFile, error) {
	var pf PolicyFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}
	for i, p := range pf.Policies {
		if p.Role == "" || p.Resource == "" || len(p.Actions) == 0 {
			return nil, fmt.Errorf("policy %d: role, resource and actions are required", i)
		}
	}
	return &pf, nil
}

// Seed adds every rule in pf that is not stored yet. Existing rules,
// including ones added by hand, are left alone.
func (e *Enforcer) Seed(pf *PolicyFile) error {
	added := 0
	for _, in := range pf.Inherit {
		if err := e.AddRoleInheritance(in.Role, in.Inherit); err != nil {
			return err
		}
	}
	for _, p := range pf.Policies {
		for _, action := range p.Actions {
			ok, err := e.AddPolicy(p.Role, p.Resource, action)
			if err != nil {
				e.logger.Errorw("failed to seed policy",
					"role", p.Role,
					"resource", p.Resource,
					"action", action,
					"error", err,
				)
				return err
			}
			if ok {
				added++
			}
		}
	}

	e.logger.Infow("permission policies seeded", "added", added)
	return nil
}
