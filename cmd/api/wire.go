//go:build wireinject

package main

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/totegamma/rowguard/core"
	"github.com/totegamma/rowguard/x/policy"
	"github.com/totegamma/rowguard/x/record"
	"github.com/totegamma/rowguard/x/store"
)

var recordHandlerProvider = wire.NewSet(record.NewHandler, record.NewService, store.NewAuthorizedStore, store.NewRepository)

func SetupRecordHandler(db *gorm.DB, mc *memcache.Client, dialect string, pol core.Policy) record.Handler {
	wire.Build(recordHandlerProvider)
	return record.Handler{}
}

func SetupAuthorizedStore(db *gorm.DB, mc *memcache.Client, dialect string) core.AuthorizedStore {
	wire.Build(store.NewAuthorizedStore, store.NewRepository)
	return nil
}

func SetupSqlStore(db *gorm.DB, mc *memcache.Client) core.SqlStore {
	wire.Build(store.NewRepository)
	return nil
}

func SetupPolicyRepository(rdb *redis.Client) policy.Repository {
	wire.Build(policy.NewRepository)
	return nil
}
