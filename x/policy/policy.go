// Package policy decides whether an action on a protected resource is
// allowed for a requesting user. The evaluator is pure and authoritative;
// the SQL pre-filter in x/store is checked against it.
package policy

import (
	"github.com/totegamma/rowguard/core"
)

// OwnerCategories are the attribute categories the default policy tests,
// in the order they appear in the condition string.
var OwnerCategories = []string{"roles", "teams", "projects", "namespaces"}

// DefaultPolicy permits every action when the user is a member of the
// resource owner's values for each category the resource declares.
func DefaultPolicy() core.Policy {
	return core.Policy{
		{
			Permit: core.Scope{Actions: core.AllActions()},
			When:   []string{"user in owners roles teams projects namespaces"},
		},
	}
}

// IsActionAllowed is the authoritative row-by-row access check. It is a
// pure function: no I/O, deterministic for identical inputs.
//
// A resource with no owner attributes is public and readable by anyone,
// including anonymous users. Otherwise an anonymous user is denied, and
// the first rule whose scope covers the action and whose conditions all
// hold decides permit. No applying rule means deny, as does any condition
// that fails to parse.
func IsActionAllowed(policy core.Policy, action core.Action, resource core.ProtectedResource, user *core.User) bool {
	if resource.IsPublic() {
		return true
	}

	if user == nil {
		return false
	}

	for _, rule := range policy {
		if !rule.Permit.Covers(action) {
			continue
		}

		applies := true
		for _, raw := range rule.When {
			condition, err := ParseCondition(raw)
			if err != nil {
				applies = false
				break
			}
			if !condition.Matches(resource.Owner, user) {
				applies = false
				break
			}
		}

		if applies {
			return true
		}
	}

	return false
}

// Evaluate is the route-guard check for a single condition string.
// There is no resource in route context, so only the two "user with"
// forms are supported and the owner position is the user itself.
// Fails closed on anonymous users, parse errors and owners-form conditions.
func Evaluate(condition string, user *core.User) bool {
	if user == nil {
		return false
	}

	parsed, err := ParseCondition(condition)
	if err != nil {
		return false
	}

	switch parsed.(type) {
	case core.UserWithValueIn, core.UserWithValueNotIn:
		return parsed.Matches(user, user)
	default:
		return false
	}
}
