package core

// Condition is a parsed predicate over a resource owner and a requesting user.
type Condition interface {
	Matches(owner *User, user *User) bool
}

// UserWithValueIn holds when the requesting user has Value in Category.
type UserWithValueIn struct {
	Category string
	Value    string
}

func (c UserWithValueIn) Matches(owner *User, user *User) bool {
	return user.HasValue(c.Category, c.Value)
}

// UserWithValueNotIn holds when the requesting user does NOT have Value in Category.
type UserWithValueNotIn struct {
	Category string
	Value    string
}

func (c UserWithValueNotIn) Matches(owner *User, user *User) bool {
	if user == nil {
		return false
	}
	return !user.HasValue(c.Category, c.Value)
}

// UserInOwners holds when the user shares a value with the owner for every
// category the owner declares. Categories absent from the owner impose no
// restriction. Values within a category are ORed.
type UserInOwners struct {
	Categories []string
}

func (c UserInOwners) Matches(owner *User, user *User) bool {
	if owner == nil {
		return true
	}
	for _, category := range c.Categories {
		ownerValues := owner.Attributes[category]
		if len(ownerValues) == 0 {
			continue
		}
		matched := false
		for _, value := range ownerValues {
			if user.HasValue(category, value) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
