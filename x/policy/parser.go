package policy

import (
	"strings"

	"github.com/totegamma/rowguard/core"
)

// ParseCondition parses one condition string into its typed form.
//
// Supported forms:
//
//	user with <value> in <category>
//	user with <value> not in <category>
//	user in owners <category> [<category> ...]
//
// Anything else is an error; callers must treat a parse error as deny.
func ParseCondition(condition string) (core.Condition, error) {
	words := strings.Fields(condition)

	if len(words) >= 4 && words[0] == "user" && words[1] == "in" && words[2] == "owners" {
		return core.UserInOwners{Categories: words[3:]}, nil
	}

	if len(words) == 5 && words[0] == "user" && words[1] == "with" && words[3] == "in" {
		return core.UserWithValueIn{Category: words[4], Value: words[2]}, nil
	}

	if len(words) == 6 && words[0] == "user" && words[1] == "with" && words[3] == "not" && words[4] == "in" {
		return core.UserWithValueNotIn{Category: words[5], Value: words[2]}, nil
	}

	return nil, core.NewErrorBadCondition(condition)
}
