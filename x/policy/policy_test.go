package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/rowguard/core"
)

func resourceWith(attributes map[string][]string) core.ProtectedResource {
	return core.NewProtectedResource("record", "r0", attributes)
}

func TestIsActionAllowedPublicResource(t *testing.T) {
	public := resourceWith(nil)

	assert.True(t, IsActionAllowed(DefaultPolicy(), core.ActionRead, public, nil))
	assert.True(t, IsActionAllowed(DefaultPolicy(), core.ActionRead, public, &core.User{Principal: "alice"}))

	// the empty-object storage form is public as well
	assert.True(t, IsActionAllowed(DefaultPolicy(), core.ActionRead, resourceWith(map[string][]string{}), nil))
}

func TestIsActionAllowedAnonymousDenied(t *testing.T) {
	guarded := resourceWith(map[string][]string{"roles": {"admin"}})
	assert.False(t, IsActionAllowed(DefaultPolicy(), core.ActionRead, guarded, nil))
}

func TestIsActionAllowedRoleMatch(t *testing.T) {
	guarded := resourceWith(map[string][]string{"roles": {"admin"}})

	admin := &core.User{Principal: "alice", Attributes: map[string][]string{"roles": {"admin"}}}
	viewer := &core.User{Principal: "bob", Attributes: map[string][]string{"roles": {"viewer"}}}

	assert.True(t, IsActionAllowed(DefaultPolicy(), core.ActionRead, guarded, admin))
	assert.False(t, IsActionAllowed(DefaultPolicy(), core.ActionRead, guarded, viewer))
}

func TestIsActionAllowedAbsentCategoryUnrestricted(t *testing.T) {
	// roles category absent from the resource: any user in ml-team may read,
	// whatever their roles are
	guarded := resourceWith(map[string][]string{"teams": {"ml-team"}})

	member := &core.User{Principal: "carol", Attributes: map[string][]string{
		"roles": {"viewer"},
		"teams": {"ml-team"},
	}}
	outsider := &core.User{Principal: "dave", Attributes: map[string][]string{
		"roles": {"admin"},
		"teams": {"web-team"},
	}}

	assert.True(t, IsActionAllowed(DefaultPolicy(), core.ActionRead, guarded, member))
	assert.False(t, IsActionAllowed(DefaultPolicy(), core.ActionRead, guarded, outsider))
}

func TestIsActionAllowedAllCategoriesMustMatch(t *testing.T) {
	guarded := resourceWith(map[string][]string{
		"roles": {"admin"},
		"teams": {"ml-team"},
	})

	both := &core.User{Principal: "erin", Attributes: map[string][]string{
		"roles": {"admin"},
		"teams": {"ml-team"},
	}}
	roleOnly := &core.User{Principal: "frank", Attributes: map[string][]string{
		"roles": {"admin"},
		"teams": {"web-team"},
	}}

	assert.True(t, IsActionAllowed(DefaultPolicy(), core.ActionRead, guarded, both))
	assert.False(t, IsActionAllowed(DefaultPolicy(), core.ActionRead, guarded, roleOnly))
}

func TestIsActionAllowedUnparseableConditionDenies(t *testing.T) {
	broken := core.Policy{
		{
			Permit: core.Scope{Actions: core.AllActions()},
			When:   []string{"grant everything to everyone"},
		},
	}

	guarded := resourceWith(map[string][]string{"roles": {"admin"}})
	admin := &core.User{Principal: "alice", Attributes: map[string][]string{"roles": {"admin"}}}

	assert.False(t, IsActionAllowed(broken, core.ActionRead, guarded, admin))
}

func TestIsActionAllowedScopeFiltersActions(t *testing.T) {
	readOnly := core.Policy{
		{
			Permit: core.Scope{Actions: []core.Action{core.ActionRead}},
			When:   []string{"user in owners roles teams projects namespaces"},
		},
	}

	guarded := resourceWith(map[string][]string{"roles": {"admin"}})
	admin := &core.User{Principal: "alice", Attributes: map[string][]string{"roles": {"admin"}}}

	assert.True(t, IsActionAllowed(readOnly, core.ActionRead, guarded, admin))
	assert.False(t, IsActionAllowed(readOnly, core.ActionDelete, guarded, admin))
}

func TestEvaluateConditionFormats(t *testing.T) {
	user := &core.User{
		Principal: "test-user",
		Attributes: map[string][]string{
			"roles":    {"admin", "user"},
			"teams":    {"ml-team", "data-team"},
			"projects": {"rowguard"},
		},
	}

	cases := []struct {
		condition string
		expected  bool
	}{
		{"user with admin in roles", true},
		{"user with viewer in roles", false},
		{"user with ml-team in teams", true},
		{"user with other-team in teams", false},
		{"user with admin not in roles", false},
		{"user with viewer not in roles", true},
		// owners-form conditions are not usable on routes
		{"user in owners roles", false},
		{"user is owner", false},
		{"invalid condition", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, Evaluate(tc.condition, user), tc.condition)
	}
}

func TestEvaluateFailsClosed(t *testing.T) {
	assert.False(t, Evaluate("user with admin in roles", nil))

	noAttrs := &core.User{Principal: "test-user"}
	assert.False(t, Evaluate("user with admin in roles", noAttrs))
}
