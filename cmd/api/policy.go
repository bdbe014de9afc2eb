package main

import (
	"encoding/json"

	"github.com/totegamma/rowguard/core"
	"github.com/totegamma/rowguard/x/policy"
)

// defaultPolicyJson is the same document a deployment would serve from
// its policyURL. Kept here so an unconfigured server behaves identically.
var defaultPolicyJson = `
[
    {
        "permit": {
            "actions": ["create", "read", "update", "delete"]
        },
        "when": ["user in owners roles teams projects namespaces"]
    }
]
`

func defaultAccessPolicy() core.Policy {
	var pol core.Policy
	err := json.Unmarshal([]byte(defaultPolicyJson), &pol)
	if err != nil {
		return policy.DefaultPolicy()
	}
	return pol
}
