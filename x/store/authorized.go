package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/totegamma/rowguard/core"
	"github.com/totegamma/rowguard/x/policy"
)

type authorizedStore struct {
	store     core.SqlStore
	dialect   string
	optimized bool
}

// NewAuthorizedStore wraps a raw store with dual-path access control:
// a SQL pre-filter for performance and the authoritative evaluator for
// correctness. dialect is the gorm dialector name ("postgres", "sqlite").
//
// The SQL fast path is enabled only while the compiled-in optimized
// policy matches policy.DefaultPolicy(); on divergence a warning is
// logged and every query falls back to conservative filtering.
func NewAuthorizedStore(store core.SqlStore, dialect string) core.AuthorizedStore {
	optimized := sqlOptimizedDefaultPolicy.Equals(policy.DefaultPolicy())
	if !optimized {
		slog.Warn("SQL-optimized policy diverges from the default policy; disabling the SQL fast path")
	}

	return &authorizedStore{
		store:     store,
		dialect:   dialect,
		optimized: optimized,
	}
}

// EnsureTable creates the table with an implicit access-attribute JSON
// column, and migrates pre-existing tables to add it. Idempotent and safe
// to call concurrently.
func (s *authorizedStore) EnsureTable(ctx context.Context, table string, schema core.Schema) error {
	ctx, span := tracer.Start(ctx, "Store.Authorized.EnsureTable")
	defer span.End()

	enriched := core.Schema{}
	for name, definition := range schema {
		enriched[name] = definition
	}
	if _, ok := enriched[core.AccessAttributesColumn]; !ok {
		enriched[core.AccessAttributesColumn] = core.Column(core.ColumnTypeJSON)
	}

	if err := s.store.AddColumnIfNotExists(ctx, table, core.AccessAttributesColumn, core.ColumnTypeJSON); err != nil {
		span.RecordError(err)
		return err
	}

	return s.store.CreateTable(ctx, table, enriched)
}

// Insert persists the row with a snapshot of the requester's attributes
// taken from the request context. Anonymous or attribute-less requesters
// produce a public row. The snapshot is never updated retroactively.
func (s *authorizedStore) Insert(ctx context.Context, table string, data core.Row) error {
	ctx, span := tracer.Start(ctx, "Store.Authorized.Insert")
	defer span.End()

	enriched := core.Row{}
	for name, value := range data {
		enriched[name] = value
	}

	user := core.RequesterFromContext(ctx)
	if user.HasAttributes() {
		encoded, err := json.Marshal(user.Attributes)
		if err != nil {
			span.RecordError(err)
			return err
		}
		enriched[core.AccessAttributesColumn] = string(encoded)
	} else {
		enriched[core.AccessAttributesColumn] = nil
	}

	return s.store.Insert(ctx, table, enriched)
}

// FetchAll fetches rows in two stages: the compiled WHERE fragment
// pre-filters in SQL, then every fetched row is re-checked with the
// authoritative evaluator. The re-check can only shrink the result, so
// ordering and limit semantics come from the SQL stage.
func (s *authorizedStore) FetchAll(ctx context.Context, table string, p core.Policy, opts core.FetchOptions) ([]core.Row, error) {
	ctx, span := tracer.Start(ctx, "Store.Authorized.FetchAll")
	defer span.End()

	if p == nil {
		p = policy.DefaultPolicy()
	}

	user := core.RequesterFromContext(ctx)

	filter := buildAccessFilter(s.dialect, p, user, s.optimized)
	if filter != "" {
		if opts.WhereSQL != "" {
			opts.WhereSQL = "(" + opts.WhereSQL + ") AND (" + filter + ")"
		} else {
			opts.WhereSQL = filter
		}
	}

	rows, err := s.store.FetchAll(ctx, table, opts)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	permitted := make([]core.Row, 0, len(rows))
	for _, row := range rows {
		resource, err := adaptRow(table, row)
		if err != nil {
			span.RecordError(err)
			slog.Warn("dropping row with unreadable access attributes",
				slog.String("table", table),
				slog.String("error", err.Error()),
			)
			continue
		}
		if policy.IsActionAllowed(p, core.ActionRead, resource, user) {
			permitted = append(permitted, row)
		}
	}

	return permitted, nil
}

// FetchOne is FetchAll with limit 1; ErrorNotFound if nothing survives
// both stages.
func (s *authorizedStore) FetchOne(ctx context.Context, table string, p core.Policy, opts core.FetchOptions) (core.Row, error) {
	ctx, span := tracer.Start(ctx, "Store.Authorized.FetchOne")
	defer span.End()

	opts.Limit = 1
	rows, err := s.FetchAll(ctx, table, p, opts)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, core.NewErrorNotFound()
	}

	return rows[0], nil
}

// Delete deletes rows matching where. An empty where never executes.
func (s *authorizedStore) Delete(ctx context.Context, table string, where map[string]any) error {
	ctx, span := tracer.Start(ctx, "Store.Authorized.Delete")
	defer span.End()

	return s.store.Delete(ctx, table, where)
}

// adaptRow builds the evaluation-time resource view from a stored row.
func adaptRow(table string, row core.Row) (core.ProtectedResource, error) {
	identifier, _ := row["id"].(string)

	attributes, err := decodeAccessAttributes(row[core.AccessAttributesColumn])
	if err != nil {
		return core.ProtectedResource{}, err
	}

	return core.NewProtectedResource(table, identifier, attributes), nil
}

// decodeAccessAttributes parses the stored access-attribute column.
// NULL, the JSON null literal and the empty object all mean public.
func decodeAccessAttributes(value any) (map[string][]string, error) {
	if value == nil {
		return nil, nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return nil, core.NewErrorBadSchema("access attributes are not textual")
	}

	trimmed := string(raw)
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	var attributes map[string][]string
	if err := json.Unmarshal(raw, &attributes); err != nil {
		return nil, err
	}
	return attributes, nil
}
