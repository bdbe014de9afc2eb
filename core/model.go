package core

// User is the authenticated principal attached to a request.
// Attributes is nil for anonymous or attribute-less principals.
type User struct {
	Principal  string              `json:"principal"`
	Attributes map[string][]string `json:"attributes,omitempty"`
}

// HasAttributes returns true if the user carries at least one attribute value.
func (u *User) HasAttributes() bool {
	if u == nil || len(u.Attributes) == 0 {
		return false
	}
	for _, values := range u.Attributes {
		if len(values) > 0 {
			return true
		}
	}
	return false
}

// HasValue returns true if the user has value in the given attribute category.
func (u *User) HasValue(category, value string) bool {
	if u == nil {
		return false
	}
	for _, v := range u.Attributes[category] {
		if v == value {
			return true
		}
	}
	return false
}

// Action is an operation a rule can permit.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// AllActions lists every action, in declaration order.
func AllActions() []Action {
	return []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}
}

// Scope is the action set an access rule applies to.
type Scope struct {
	Actions []Action `json:"actions"`
}

// Covers returns true if action is in the scope.
func (s Scope) Covers(action Action) bool {
	for _, a := range s.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// AccessRule permits its scope when every condition in When holds.
// An empty When applies unconditionally.
type AccessRule struct {
	Permit Scope    `json:"permit"`
	When   []string `json:"when,omitempty"`
}

// Policy is an ordered rule list. The first applying rule decides;
// if no rule applies the result is deny.
type Policy []AccessRule

// Equals compares two policies by value, element by element.
func (p Policy) Equals(other Policy) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if !p[i].equals(other[i]) {
			return false
		}
	}
	return true
}

func (r AccessRule) equals(other AccessRule) bool {
	if len(r.Permit.Actions) != len(other.Permit.Actions) || len(r.When) != len(other.When) {
		return false
	}
	for i := range r.Permit.Actions {
		if r.Permit.Actions[i] != other.Permit.Actions[i] {
			return false
		}
	}
	for i := range r.When {
		if r.When[i] != other.When[i] {
			return false
		}
	}
	return true
}

// PolicyDocument is the wire envelope for remotely hosted policies.
type PolicyDocument struct {
	Versions map[string]Policy `json:"versions"`
}

// SystemOwner is the principal recorded as owner of rows adapted from storage.
const SystemOwner = "system"

// ProtectedResource is the evaluation-time view of a row.
// Owner is nil for public records.
type ProtectedResource struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
	Owner      *User  `json:"owner,omitempty"`
}

// NewProtectedResource adapts a row's stored access attributes into a resource.
// Empty attributes yield a public resource with no owner restrictions.
func NewProtectedResource(resourceType, identifier string, attributes map[string][]string) ProtectedResource {
	if len(attributes) == 0 {
		return ProtectedResource{Type: resourceType, Identifier: identifier}
	}
	return ProtectedResource{
		Type:       resourceType,
		Identifier: identifier,
		Owner:      &User{Principal: SystemOwner, Attributes: attributes},
	}
}

// IsPublic returns true if the resource carries no owner attributes.
func (r ProtectedResource) IsPublic() bool {
	return r.Owner == nil || !r.Owner.HasAttributes()
}
