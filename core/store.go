package core

// ColumnType enumerates the column types the store can create.
type ColumnType string

const (
	ColumnTypeInteger  ColumnType = "INTEGER"
	ColumnTypeString   ColumnType = "STRING"
	ColumnTypeText     ColumnType = "TEXT"
	ColumnTypeFloat    ColumnType = "FLOAT"
	ColumnTypeBoolean  ColumnType = "BOOLEAN"
	ColumnTypeJSON     ColumnType = "JSON"
	ColumnTypeDatetime ColumnType = "DATETIME"
)

// ColumnDefinition describes one column of a store-managed table.
type ColumnDefinition struct {
	Type       ColumnType
	PrimaryKey bool
	NotNull    bool
}

// Column is shorthand for a plain nullable column of the given type.
func Column(t ColumnType) ColumnDefinition {
	return ColumnDefinition{Type: t}
}

// Schema maps column names to definitions.
type Schema map[string]ColumnDefinition

// Row is a generic row as returned by the store.
type Row map[string]any

// Direction is a sort direction for OrderBy.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// OrderBy is one (column, direction) sort term.
type OrderBy struct {
	Column    string
	Direction Direction
}

// AccessAttributesColumn is the JSON column holding the owner-attribute
// snapshot on access-controlled tables.
const AccessAttributesColumn = "access_attributes"
