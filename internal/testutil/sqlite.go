package testutil

import (
	"fmt"
	"log"
	"sync/atomic"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var sqliteSeq atomic.Int64

// CreateSqliteDB opens a fresh in-memory sqlite database for hermetic
// unit tests. Each call gets its own database; cache=shared keeps it
// visible across the pooled connections of one *gorm.DB.
func CreateSqliteDB() (*gorm.DB, func()) {
	dsn := fmt.Sprintf("file:unittest%d?mode=memory&cache=shared", sqliteSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not open sqlite: %s", err)
	}

	cleanup := func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	return db, cleanup
}
