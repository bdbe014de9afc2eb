// Package store provides the storage substrate and the authorized store
// that enforces per-row visibility on top of it.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/totegamma/rowguard/core"
)

var tracer = otel.Tracer("store")

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new raw sql store repository. mc may be nil;
// counts are then uncached.
func NewRepository(db *gorm.DB, mc *memcache.Client) core.SqlStore {
	return &repository{db, mc}
}

func columnSQL(dialect string, definition core.ColumnDefinition) (string, error) {
	var sqlType string

	switch definition.Type {
	case core.ColumnTypeInteger:
		sqlType = "INTEGER"
	case core.ColumnTypeString:
		if dialect == "postgres" {
			sqlType = "VARCHAR(255)"
		} else {
			sqlType = "TEXT"
		}
	case core.ColumnTypeText:
		sqlType = "TEXT"
	case core.ColumnTypeFloat:
		if dialect == "postgres" {
			sqlType = "DOUBLE PRECISION"
		} else {
			sqlType = "REAL"
		}
	case core.ColumnTypeBoolean:
		sqlType = "BOOLEAN"
	case core.ColumnTypeJSON:
		if dialect == "postgres" {
			sqlType = "JSONB"
		} else {
			sqlType = "JSON"
		}
	case core.ColumnTypeDatetime:
		if dialect == "postgres" {
			sqlType = "TIMESTAMP"
		} else {
			sqlType = "DATETIME"
		}
	default:
		return "", core.NewErrorBadSchema(fmt.Sprintf("unsupported column type '%s'", definition.Type))
	}

	if definition.PrimaryKey {
		sqlType += " PRIMARY KEY"
	}
	if definition.NotNull {
		sqlType += " NOT NULL"
	}

	return sqlType, nil
}

func sortedColumns[V any](m map[string]V) []string {
	columns := make([]string, 0, len(m))
	for name := range m {
		columns = append(columns, name)
	}
	sort.Strings(columns)
	return columns
}

func (r *repository) dialect() string {
	return r.db.Dialector.Name()
}

// CreateTable creates the table if it does not exist yet.
func (r *repository) CreateTable(ctx context.Context, table string, schema core.Schema) error {
	ctx, span := tracer.Start(ctx, "Store.Repository.CreateTable")
	defer span.End()

	if len(schema) == 0 {
		return core.NewErrorBadSchema(fmt.Sprintf("no columns defined for table '%s'", table))
	}

	definitions := make([]string, 0, len(schema))
	for _, name := range sortedColumns(schema) {
		sqlType, err := columnSQL(r.dialect(), schema[name])
		if err != nil {
			span.RecordError(err)
			return err
		}
		definitions = append(definitions, name+" "+sqlType)
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, strings.Join(definitions, ", "))
	err := r.db.WithContext(ctx).Exec(ddl).Error
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to create table")
	}

	return nil
}

// AddColumnIfNotExists adds the column to an existing table. Races with
// concurrent table creation are expected, so failures are logged and
// swallowed; table creation elsewhere also ensures the column.
func (r *repository) AddColumnIfNotExists(ctx context.Context, table string, column string, columnType core.ColumnType) error {
	ctx, span := tracer.Start(ctx, "Store.Repository.AddColumnIfNotExists")
	defer span.End()

	migrator := r.db.WithContext(ctx).Migrator()
	if !migrator.HasTable(table) {
		return nil
	}
	if migrator.HasColumn(table, column) {
		return nil
	}

	sqlType, err := columnSQL(r.dialect(), core.Column(columnType))
	if err != nil {
		span.RecordError(err)
		return err
	}

	ddl := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, sqlType)
	err = r.db.WithContext(ctx).Exec(ddl).Error
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "duplicate_column" {
			return nil
		}
		if strings.Contains(err.Error(), "duplicate column name") { // sqlite
			return nil
		}

		span.RecordError(err)
		slog.Warn("failed to add column",
			slog.String("table", table),
			slog.String("column", column),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// Insert inserts one row.
func (r *repository) Insert(ctx context.Context, table string, data core.Row) error {
	ctx, span := tracer.Start(ctx, "Store.Repository.Insert")
	defer span.End()

	if len(data) == 0 {
		return core.NewErrorBadSchema("no columns to insert")
	}

	columns := sortedColumns(data)
	placeholders := make([]string, len(columns))
	values := make([]any, len(columns))
	for i, name := range columns {
		placeholders[i] = "?"
		values[i] = data[name]
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	err := r.db.WithContext(ctx).Exec(query, values...).Error
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to insert row")
	}

	return nil
}

// FetchAll returns the rows matching opts. WhereSQL is handed to the
// backend verbatim, so a malformed fragment surfaces as a query error.
func (r *repository) FetchAll(ctx context.Context, table string, opts core.FetchOptions) ([]core.Row, error) {
	ctx, span := tracer.Start(ctx, "Store.Repository.FetchAll")
	defer span.End()

	query := r.db.WithContext(ctx).Table(table)

	if len(opts.Where) > 0 {
		query = query.Where(opts.Where)
	}
	if opts.WhereSQL != "" {
		query = query.Where(opts.WhereSQL)
	}
	for _, order := range opts.OrderBy {
		if order.Direction != core.Asc && order.Direction != core.Desc {
			return nil, errors.Errorf("invalid order '%s' for column '%s'", order.Direction, order.Column)
		}
		query = query.Order(clause.OrderByColumn{
			Column: clause.Column{Name: order.Column},
			Desc:   order.Direction == core.Desc,
		})
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var rows []map[string]any
	if err := query.Find(&rows).Error; err != nil {
		span.RecordError(err)
		return nil, err
	}

	result := make([]core.Row, len(rows))
	for i, row := range rows {
		result[i] = flattenRow(row)
	}

	return result, nil
}

// flattenRow dereferences pointer cells in a scanned row. The sqlite
// driver hands map scans back as *interface{} cells; callers get plain
// values regardless of backend.
func flattenRow(row map[string]any) core.Row {
	for name, value := range row {
		if ptr, ok := value.(*any); ok {
			if ptr == nil {
				row[name] = nil
			} else {
				row[name] = *ptr
			}
		}
	}
	return core.Row(row)
}

// FetchOne returns the first row matching opts, or ErrorNotFound.
func (r *repository) FetchOne(ctx context.Context, table string, opts core.FetchOptions) (core.Row, error) {
	ctx, span := tracer.Start(ctx, "Store.Repository.FetchOne")
	defer span.End()

	opts.Limit = 1
	rows, err := r.FetchAll(ctx, table, opts)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, core.NewErrorNotFound()
	}

	return rows[0], nil
}

// Update updates the rows matching where. An empty where never executes.
func (r *repository) Update(ctx context.Context, table string, data core.Row, where map[string]any) error {
	ctx, span := tracer.Start(ctx, "Store.Repository.Update")
	defer span.End()

	if len(where) == 0 {
		return core.NewErrorEmptyWhere("update")
	}
	if len(data) == 0 {
		return core.NewErrorBadSchema("no columns to update")
	}

	setColumns := sortedColumns(data)
	assignments := make([]string, len(setColumns))
	values := make([]any, 0, len(data)+len(where))
	for i, name := range setColumns {
		assignments[i] = name + " = ?"
		values = append(values, data[name])
	}

	conditions := make([]string, 0, len(where))
	for _, name := range sortedColumns(where) {
		conditions = append(conditions, name+" = ?")
		values = append(values, where[name])
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s",
		table,
		strings.Join(assignments, ", "),
		strings.Join(conditions, " AND "),
	)

	err := r.db.WithContext(ctx).Exec(query, values...).Error
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to update rows")
	}

	return nil
}

// Delete deletes the rows matching where. An empty where never executes.
func (r *repository) Delete(ctx context.Context, table string, where map[string]any) error {
	ctx, span := tracer.Start(ctx, "Store.Repository.Delete")
	defer span.End()

	if len(where) == 0 {
		return core.NewErrorEmptyWhere("delete")
	}

	conditions := make([]string, 0, len(where))
	values := make([]any, 0, len(where))
	for _, name := range sortedColumns(where) {
		conditions = append(conditions, name+" = ?")
		values = append(values, where[name])
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE %s", table, strings.Join(conditions, " AND "))

	err := r.db.WithContext(ctx).Exec(query, values...).Error
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to delete rows")
	}

	return nil
}

// Count returns the row count of the table, cached in memcache for a
// minute when a client is configured.
func (r *repository) Count(ctx context.Context, table string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Store.Repository.Count")
	defer span.End()

	cacheKey := "rowguard:count:" + table

	if r.mc != nil {
		item, err := r.mc.Get(cacheKey)
		if err == nil {
			cached, err := strconv.ParseInt(string(item.Value), 10, 64)
			if err == nil {
				return cached, nil
			}
		}
	}

	var count int64
	if err := r.db.WithContext(ctx).Table(table).Count(&count).Error; err != nil {
		span.RecordError(err)
		return 0, err
	}

	if r.mc != nil {
		err := r.mc.Set(&memcache.Item{Key: cacheKey, Value: []byte(strconv.FormatInt(count, 10)), Expiration: 60})
		if err != nil {
			slog.Error(
				"failed to cache table count",
				slog.String("table", table),
				slog.String("error", err.Error()),
			)
		}
	}

	return count, nil
}
