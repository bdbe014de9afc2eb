// Package record exposes a generic document resource stored through the
// authorized store. Every row carries the writer's attribute snapshot and
// reads are filtered per requester.
package record

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/rowguard/core"
	"github.com/totegamma/rowguard/x/policy"
)

var tracer = otel.Tracer("record")

const tableName = "records"

var tableSchema = core.Schema{
	"id":       {Type: core.ColumnTypeString, PrimaryKey: true},
	"document": core.Column(core.ColumnTypeJSON),
	"cdate":    core.Column(core.ColumnTypeDatetime),
}

type service struct {
	store  core.AuthorizedStore
	policy core.Policy
}

// NewService creates a new record service
func NewService(store core.AuthorizedStore, policy core.Policy) core.RecordService {
	return &service{
		store:  store,
		policy: policy,
	}
}

// EnsureTable creates the backing table when missing.
func EnsureTable(ctx context.Context, store core.AuthorizedStore) error {
	return store.EnsureTable(ctx, tableName, tableSchema)
}

// Create stores a new record. The requester's attributes at write time
// determine who can read it back.
func (s *service) Create(ctx context.Context, document map[string]any) (core.Record, error) {
	ctx, span := tracer.Start(ctx, "Record.Service.Create")
	defer span.End()

	encoded, err := json.Marshal(document)
	if err != nil {
		span.RecordError(err)
		return core.Record{}, errors.Wrap(err, "failed to encode document")
	}

	record := core.Record{
		ID:       xid.New().String(),
		Document: document,
		CDate:    time.Now().UTC().Format(time.RFC3339),
	}

	if requester := core.RequesterFromContext(ctx); requester != nil {
		record.AccessAttributes = requester.Attributes
	}

	err = s.store.Insert(ctx, tableName, core.Row{
		"id":       record.ID,
		"document": string(encoded),
		"cdate":    record.CDate,
	})
	if err != nil {
		span.RecordError(err)
		return core.Record{}, err
	}

	return record, nil
}

// Get returns one record visible to the requester.
func (s *service) Get(ctx context.Context, id string) (core.Record, error) {
	ctx, span := tracer.Start(ctx, "Record.Service.Get")
	defer span.End()

	row, err := s.store.FetchOne(ctx, tableName, s.policy, core.FetchOptions{
		Where: map[string]any{"id": id},
	})
	if err != nil {
		span.RecordError(err)
		return core.Record{}, err
	}

	return decodeRecord(row)
}

// List returns the records visible to the requester, newest first.
func (s *service) List(ctx context.Context, limit int) ([]core.Record, error) {
	ctx, span := tracer.Start(ctx, "Record.Service.List")
	defer span.End()

	rows, err := s.store.FetchAll(ctx, tableName, s.policy, core.FetchOptions{
		Limit: limit,
		OrderBy: []core.OrderBy{
			{Column: "cdate", Direction: core.Desc},
		},
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	records := make([]core.Record, 0, len(rows))
	for _, row := range rows {
		record, err := decodeRecord(row)
		if err != nil {
			span.RecordError(err)
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// Delete removes a record. The requester must be able to read it, and
// the policy must permit the delete action on it.
func (s *service) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Record.Service.Delete")
	defer span.End()

	row, err := s.store.FetchOne(ctx, tableName, s.policy, core.FetchOptions{
		Where: map[string]any{"id": id},
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	record, err := decodeRecord(row)
	if err != nil {
		span.RecordError(err)
		return err
	}

	resource := core.NewProtectedResource(tableName, record.ID, record.AccessAttributes)
	requester := core.RequesterFromContext(ctx)
	if !policy.IsActionAllowed(s.policy, core.ActionDelete, resource, requester) {
		return core.NewErrorPermissionDenied()
	}

	return s.store.Delete(ctx, tableName, map[string]any{"id": id})
}

func decodeRecord(row core.Row) (core.Record, error) {
	record := core.Record{}

	id, ok := row["id"].(string)
	if !ok {
		return record, errors.New("record row has no id")
	}
	record.ID = id

	if cdate, ok := row["cdate"].(string); ok {
		record.CDate = cdate
	} else if cdate, ok := row["cdate"].(time.Time); ok {
		record.CDate = cdate.UTC().Format(time.RFC3339)
	}

	switch document := row["document"].(type) {
	case nil:
	case string:
		if err := json.Unmarshal([]byte(document), &record.Document); err != nil {
			return record, errors.Wrap(err, "failed to decode document")
		}
	case []byte:
		if err := json.Unmarshal(document, &record.Document); err != nil {
			return record, errors.Wrap(err, "failed to decode document")
		}
	default:
		return record, errors.New("unexpected document column type")
	}

	switch attributes := row[core.AccessAttributesColumn].(type) {
	case nil:
	case string:
		if attributes != "" && attributes != "null" {
			if err := json.Unmarshal([]byte(attributes), &record.AccessAttributes); err != nil {
				return record, errors.Wrap(err, "failed to decode access attributes")
			}
		}
	case []byte:
		if err := json.Unmarshal(attributes, &record.AccessAttributes); err != nil {
			return record, errors.Wrap(err, "failed to decode access attributes")
		}
	}

	return record, nil
}
