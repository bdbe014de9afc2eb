package store

import (
	"encoding/json"
	"strings"

	"github.com/totegamma/rowguard/core"
	"github.com/totegamma/rowguard/x/policy"
)

// sqlOptimizedDefaultPolicy is the policy the SQL pre-filter is compiled
// for. It must stay equal in value to policy.DefaultPolicy(); the
// authorized store verifies this at construction and falls back to
// conservative filtering if the two ever diverge.
var sqlOptimizedDefaultPolicy = core.Policy{
	{
		Permit: core.Scope{Actions: core.AllActions()},
		When:   []string{"user in owners roles teams projects namespaces"},
	},
}

// buildAccessFilter compiles a WHERE fragment that conservatively
// pre-filters rows for the given policy and user. It may let through rows
// the evaluator will reject, never the reverse. For policies other than
// the recognized default it defers everything it can to the evaluator:
// any row for authenticated users, public rows only for anonymous ones.
func buildAccessFilter(dialect string, p core.Policy, user *core.User, optimized bool) string {
	if !optimized || !p.Equals(sqlOptimizedDefaultPolicy) {
		if user != nil {
			return ""
		}
		return publicRowsClause(dialect)
	}

	if user == nil {
		return publicRowsClause(dialect)
	}

	conditions := []string{}
	for _, category := range policy.OwnerCategories {
		values := user.Attributes[category]
		if len(values) == 0 {
			continue
		}
		conditions = append(conditions, categoryClause(dialect, category, values))
	}

	// An authenticated user holding no owner-category attributes may
	// still read rows that declare none of the owner categories either,
	// so public-only would over-filter here.
	if len(conditions) == 0 {
		return "(" + publicRowsClause(dialect) + ") OR (" + ownerCategoriesAbsentClause(dialect) + ")"
	}

	return "(" + publicRowsClause(dialect) + ") OR (" + strings.Join(conditions, " AND ") + ")"
}

// ownerCategoriesAbsentClause matches rows that declare none of the
// owner categories.
func ownerCategoriesAbsentClause(dialect string) string {
	column := core.AccessAttributesColumn

	terms := make([]string, 0, len(policy.OwnerCategories))
	for _, category := range policy.OwnerCategories {
		if dialect == "postgres" {
			terms = append(terms, column+" -> "+sqlQuote(category)+" IS NULL")
		} else {
			terms = append(terms, "json_extract("+column+", "+sqlQuote("$."+category)+") IS NULL")
		}
	}
	return strings.Join(terms, " AND ")
}

// publicRowsClause matches rows with no owner attributes. The column may
// hold SQL NULL, the JSON null literal, or an empty object depending on
// the write path; all three mean public.
func publicRowsClause(dialect string) string {
	column := core.AccessAttributesColumn
	if dialect == "postgres" {
		return column + " IS NULL OR " + column + " = 'null'::jsonb OR " + column + " = '{}'::jsonb"
	}
	return column + " IS NULL OR " + column + " = 'null' OR " + column + " = '{}'"
}

// categoryClause matches rows that either do not declare the category or
// declare at least one of the user's values for it.
func categoryClause(dialect, category string, values []string) string {
	column := core.AccessAttributesColumn

	if dialect == "postgres" {
		field := column + " -> " + sqlQuote(category)
		terms := []string{field + " IS NULL"}
		for _, value := range values {
			terms = append(terms, field+" @> "+sqlQuote(jsonArray(value))+"::jsonb")
		}
		return "(" + strings.Join(terms, " OR ") + ")"
	}

	field := "json_extract(" + column + ", " + sqlQuote("$."+category) + ")"
	terms := []string{field + " IS NULL"}
	for _, value := range values {
		terms = append(terms, field+" LIKE "+sqlQuote("%"+jsonString(value)+"%"))
	}
	return "(" + strings.Join(terms, " OR ") + ")"
}

// sqlQuote renders s as a SQL string literal.
func sqlQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func jsonArray(s string) string {
	b, _ := json.Marshal([]string{s})
	return string(b)
}
