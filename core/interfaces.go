//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
)

// FetchOptions narrows a fetch. Where terms are ANDed with WhereSQL,
// which is passed to the backend verbatim.
type FetchOptions struct {
	Where    map[string]any
	WhereSQL string
	Limit    int
	OrderBy  []OrderBy
}

// SqlStore is the raw storage substrate. It performs no authorization.
type SqlStore interface {
	CreateTable(ctx context.Context, table string, schema Schema) error
	AddColumnIfNotExists(ctx context.Context, table string, column string, columnType ColumnType) error
	Insert(ctx context.Context, table string, data Row) error
	FetchAll(ctx context.Context, table string, opts FetchOptions) ([]Row, error)
	FetchOne(ctx context.Context, table string, opts FetchOptions) (Row, error)
	Update(ctx context.Context, table string, data Row, where map[string]any) error
	Delete(ctx context.Context, table string, where map[string]any) error
	Count(ctx context.Context, table string) (int64, error)
}

// AuthorizedStore is the storage surface for tables whose rows carry
// per-record visibility. Fetches apply the SQL pre-filter and then the
// authoritative policy evaluator on every row.
type AuthorizedStore interface {
	EnsureTable(ctx context.Context, table string, schema Schema) error
	Insert(ctx context.Context, table string, data Row) error
	FetchAll(ctx context.Context, table string, policy Policy, opts FetchOptions) ([]Row, error)
	FetchOne(ctx context.Context, table string, policy Policy, opts FetchOptions) (Row, error)
	Delete(ctx context.Context, table string, where map[string]any) error
}

// RecordService exposes the generic record resource backed by the
// authorized store.
type RecordService interface {
	Create(ctx context.Context, document map[string]any) (Record, error)
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, limit int) ([]Record, error)
	Delete(ctx context.Context, id string) error
}

// Record is one row of the generic record resource.
type Record struct {
	ID               string              `json:"id"`
	Document         map[string]any      `json:"document"`
	AccessAttributes map[string][]string `json:"accessAttributes,omitempty"`
	CDate            string              `json:"cdate"`
}
