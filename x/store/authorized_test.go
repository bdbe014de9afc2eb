package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/totegamma/rowguard/core"
	"github.com/totegamma/rowguard/internal/testutil"
	"github.com/totegamma/rowguard/x/policy"
)

func newAuthorizedStore(t *testing.T) (core.AuthorizedStore, core.SqlStore, func()) {
	t.Helper()
	db, cleanup := testutil.CreateSqliteDB()
	raw := NewRepository(db, nil)
	return NewAuthorizedStore(raw, "sqlite"), raw, cleanup
}

func TestAuthorizedInsertCapturesAttributes(t *testing.T) {
	ctx := context.Background()

	authorized, raw, cleanup := newAuthorizedStore(t)
	defer cleanup()

	err := authorized.EnsureTable(ctx, "items", core.Schema{
		"id": core.Column(core.ColumnTypeString),
	})
	assert.NoError(t, err)

	writer := &core.User{Principal: "writer", Attributes: map[string][]string{"roles": {"admin"}}}
	err = authorized.Insert(core.RequesterContext(ctx, writer), "items", core.Row{"id": "r1"})
	assert.NoError(t, err)

	row, err := raw.FetchOne(ctx, "items", core.FetchOptions{Where: map[string]any{"id": "r1"}})
	assert.NoError(t, err)

	stored, err := decodeAccessAttributes(row[core.AccessAttributesColumn])
	assert.NoError(t, err)
	assert.Equal(t, map[string][]string{"roles": {"admin"}}, stored)
}

func TestAuthorizedInsertAnonymousIsPublic(t *testing.T) {
	ctx := context.Background()

	authorized, raw, cleanup := newAuthorizedStore(t)
	defer cleanup()

	err := authorized.EnsureTable(ctx, "items", core.Schema{
		"id": core.Column(core.ColumnTypeString),
	})
	assert.NoError(t, err)

	// no requester in context
	assert.NoError(t, authorized.Insert(ctx, "items", core.Row{"id": "pub"}))

	row, err := raw.FetchOne(ctx, "items", core.FetchOptions{Where: map[string]any{"id": "pub"}})
	assert.NoError(t, err)
	assert.Nil(t, row[core.AccessAttributesColumn])

	// visible to everyone, including anonymous readers
	rows, err := authorized.FetchAll(ctx, "items", policy.DefaultPolicy(), core.FetchOptions{})
	assert.NoError(t, err)
	assert.Len(t, rows, 1)

	stranger := &core.User{Principal: "stranger", Attributes: map[string][]string{"roles": {"nobody"}}}
	rows, err = authorized.FetchAll(core.RequesterContext(ctx, stranger), "items", policy.DefaultPolicy(), core.FetchOptions{})
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestAuthorizedPublicStorageForms(t *testing.T) {
	ctx := context.Background()

	authorized, raw, cleanup := newAuthorizedStore(t)
	defer cleanup()

	err := authorized.EnsureTable(ctx, "items", core.Schema{
		"id": core.Column(core.ColumnTypeString),
	})
	assert.NoError(t, err)

	// the column may hold NULL, the JSON null literal, or an empty
	// object depending on the write path; all three are public
	assert.NoError(t, raw.Insert(ctx, "items", core.Row{"id": "a", core.AccessAttributesColumn: nil}))
	assert.NoError(t, raw.Insert(ctx, "items", core.Row{"id": "b", core.AccessAttributesColumn: "null"}))
	assert.NoError(t, raw.Insert(ctx, "items", core.Row{"id": "c", core.AccessAttributesColumn: "{}"}))

	rows, err := authorized.FetchAll(ctx, "items", policy.DefaultPolicy(), core.FetchOptions{})
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestAuthorizedNoRetroactivity(t *testing.T) {
	ctx := context.Background()

	authorized, raw, cleanup := newAuthorizedStore(t)
	defer cleanup()

	err := authorized.EnsureTable(ctx, "items", core.Schema{
		"id": core.Column(core.ColumnTypeString),
	})
	assert.NoError(t, err)

	writer := &core.User{Principal: "writer", Attributes: map[string][]string{"teams": {"ml-team"}}}
	assert.NoError(t, authorized.Insert(core.RequesterContext(ctx, writer), "items", core.Row{"id": "r1"}))

	// mutating the user's attributes afterwards must not touch the row
	writer.Attributes["teams"] = []string{"other-team"}

	row, err := raw.FetchOne(ctx, "items", core.FetchOptions{Where: map[string]any{"id": "r1"}})
	assert.NoError(t, err)
	stored, err := decodeAccessAttributes(row[core.AccessAttributesColumn])
	assert.NoError(t, err)
	assert.Equal(t, map[string][]string{"teams": {"ml-team"}}, stored)
}

func TestAuthorizedCategoryAbsentOnRow(t *testing.T) {
	ctx := context.Background()

	authorized, _, cleanup := newAuthorizedStore(t)
	defer cleanup()

	err := authorized.EnsureTable(ctx, "items", core.Schema{
		"id": core.Column(core.ColumnTypeString),
	})
	assert.NoError(t, err)

	writer := &core.User{Principal: "writer", Attributes: map[string][]string{"teams": {"ml-team"}}}
	assert.NoError(t, authorized.Insert(core.RequesterContext(ctx, writer), "items", core.Row{"id": "r1"}))

	// roles differ but the row declares no roles category at all
	reader := &core.User{Principal: "reader", Attributes: map[string][]string{
		"roles": {"viewer"},
		"teams": {"ml-team"},
	}}
	rows, err := authorized.FetchAll(core.RequesterContext(ctx, reader), "items", policy.DefaultPolicy(), core.FetchOptions{})
	assert.NoError(t, err)
	assert.Len(t, rows, 1)

	outsider := &core.User{Principal: "outsider", Attributes: map[string][]string{
		"roles": {"admin"},
		"teams": {"web-team"},
	}}
	rows, err = authorized.FetchAll(core.RequesterContext(ctx, outsider), "items", policy.DefaultPolicy(), core.FetchOptions{})
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAuthorizedCustomPolicyEvaluatorOnly(t *testing.T) {
	ctx := context.Background()

	authorized, _, cleanup := newAuthorizedStore(t)
	defer cleanup()

	err := authorized.EnsureTable(ctx, "items", core.Schema{
		"id": core.Column(core.ColumnTypeString),
	})
	assert.NoError(t, err)

	writer := &core.User{Principal: "writer", Attributes: map[string][]string{"projects": {"apollo"}}}
	assert.NoError(t, authorized.Insert(core.RequesterContext(ctx, writer), "items", core.Row{"id": "r1"}))

	// not the default policy: SQL stage must not exclude anything the
	// evaluator would permit
	custom := core.Policy{
		{
			Permit: core.Scope{Actions: []core.Action{core.ActionRead}},
			When:   []string{"user with admin in roles"},
		},
	}

	admin := &core.User{Principal: "admin", Attributes: map[string][]string{"roles": {"admin"}}}
	rows, err := authorized.FetchAll(core.RequesterContext(ctx, admin), "items", custom, core.FetchOptions{})
	assert.NoError(t, err)
	assert.Len(t, rows, 1)

	pleb := &core.User{Principal: "pleb", Attributes: map[string][]string{"roles": {"user"}}}
	rows, err = authorized.FetchAll(core.RequesterContext(ctx, pleb), "items", custom, core.FetchOptions{})
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAuthorizedFetchPreservesOrdering(t *testing.T) {
	ctx := context.Background()

	authorized, _, cleanup := newAuthorizedStore(t)
	defer cleanup()

	err := authorized.EnsureTable(ctx, "items", core.Schema{
		"id":   core.Column(core.ColumnTypeString),
		"rank": core.Column(core.ColumnTypeInteger),
	})
	assert.NoError(t, err)

	writer := &core.User{Principal: "writer", Attributes: map[string][]string{"roles": {"admin"}}}
	writeCtx := core.RequesterContext(ctx, writer)
	assert.NoError(t, authorized.Insert(writeCtx, "items", core.Row{"id": "a", "rank": 3}))
	assert.NoError(t, authorized.Insert(ctx, "items", core.Row{"id": "b", "rank": 1}))
	assert.NoError(t, authorized.Insert(writeCtx, "items", core.Row{"id": "c", "rank": 2}))

	reader := &core.User{Principal: "reader", Attributes: map[string][]string{"roles": {"admin"}}}
	rows, err := authorized.FetchAll(core.RequesterContext(ctx, reader), "items", policy.DefaultPolicy(), core.FetchOptions{
		OrderBy: []core.OrderBy{{Column: "rank", Direction: core.Asc}},
	})
	assert.NoError(t, err)
	if assert.Len(t, rows, 3) {
		assert.Equal(t, "b", rows[0]["id"])
		assert.Equal(t, "c", rows[1]["id"])
		assert.Equal(t, "a", rows[2]["id"])
	}
}

func TestAuthorizedFetchOne(t *testing.T) {
	ctx := context.Background()

	authorized, _, cleanup := newAuthorizedStore(t)
	defer cleanup()

	err := authorized.EnsureTable(ctx, "items", core.Schema{
		"id": core.Column(core.ColumnTypeString),
	})
	assert.NoError(t, err)

	writer := &core.User{Principal: "writer", Attributes: map[string][]string{"roles": {"admin"}}}
	assert.NoError(t, authorized.Insert(core.RequesterContext(ctx, writer), "items", core.Row{"id": "r1"}))

	_, err = authorized.FetchOne(ctx, "items", policy.DefaultPolicy(), core.FetchOptions{Where: map[string]any{"id": "r1"}})
	assert.IsType(t, core.ErrorNotFound{}, err)

	admin := &core.User{Principal: "admin", Attributes: map[string][]string{"roles": {"admin"}}}
	row, err := authorized.FetchOne(core.RequesterContext(ctx, admin), "items", policy.DefaultPolicy(), core.FetchOptions{Where: map[string]any{"id": "r1"}})
	assert.NoError(t, err)
	assert.Equal(t, "r1", row["id"])
}

func TestDecodeAccessAttributes(t *testing.T) {
	for _, public := range []any{nil, "null", "{}", []byte("null")} {
		attrs, err := decodeAccessAttributes(public)
		assert.NoError(t, err)
		if public == "{}" {
			assert.Empty(t, attrs)
		} else {
			assert.Nil(t, attrs)
		}
	}

	encoded, _ := json.Marshal(map[string][]string{"roles": {"admin"}})
	attrs, err := decodeAccessAttributes(encoded)
	assert.NoError(t, err)
	assert.Equal(t, map[string][]string{"roles": {"admin"}}, attrs)

	_, err = decodeAccessAttributes("not json at all")
	assert.Error(t, err)

	_, err = decodeAccessAttributes(42)
	assert.Error(t, err)
}
