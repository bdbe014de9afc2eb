package policy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/totegamma/rowguard/core"
)

var tracer = otel.Tracer("policy")

var (
	client = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
)

const documentVersion = "2025-06-01"

// Repository resolves remotely hosted policy documents.
type Repository interface {
	Get(ctx context.Context, url string) (core.Policy, error)
}

type repository struct {
	rdb *redis.Client
}

// NewRepository creates a new policy repository
func NewRepository(rdb *redis.Client) Repository {
	return &repository{rdb}
}

func (r *repository) Get(ctx context.Context, url string) (core.Policy, error) {
	ctx, span := tracer.Start(ctx, "Policy.Repository.Get")
	defer span.End()

	// check cache
	key := fmt.Sprintf("policy:%s", url)
	val, err := r.rdb.Get(ctx, key).Result()
	if err == nil {
		var policy core.Policy
		err = json.Unmarshal([]byte(val), &policy)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		return policy, nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	jsonStr, err := io.ReadAll(resp.Body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var policy core.Policy
	var document core.PolicyDocument
	err = json.Unmarshal(jsonStr, &document)
	if err == nil && document.Versions[documentVersion] != nil {
		span.AddEvent("use version " + documentVersion)
		policy = document.Versions[documentVersion]
	} else {
		span.AddEvent("fallback to bare rule list")
		err = json.Unmarshal(jsonStr, &policy)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
	}

	// cache policy
	jsonStr, err = json.Marshal(policy)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	err = r.rdb.Set(ctx, key, jsonStr, 10*time.Minute).Err()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return policy, nil
}
