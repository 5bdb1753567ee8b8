package testutil

import (
	"os"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rulzurlabs/rulzurapi/internal/data/db"
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
)

var (
	dbOnce sync.Once
	dbConn *gorm.DB
	dbErr  error
)

// DB opens (once per test binary) and migrates the database named by
// TEST_POSTGRES_DSN. Tests that call it are skipped when the variable is
// unset, so the unit suite stays runnable without a server.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		tb.Skip("set TEST_POSTGRES_DSN to run database integration tests")
	}
	dbOnce.Do(func() {
		dbConn, dbErr = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if dbErr != nil {
			return
		}
		dbErr = db.Migrate(dbConn)
	})
	if dbErr != nil {
		tb.Fatalf("open test database: %v", dbErr)
	}
	return dbConn
}

// Tx begins a transaction rolled back when the test ends, keeping tests
// isolated from each other's rows.
func Tx(tb testing.TB) *gorm.DB {
	tb.Helper()
	tx := DB(tb).Begin()
	if tx.Error != nil {
		tb.Fatalf("begin transaction: %v", tx.Error)
	}
	tb.Cleanup(func() {
		tx.Rollback()
	})
	return tx
}

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("logger.New: %v", err)
	}
	tb.Cleanup(func() {
		log.Sync()
	})
	return log
}
