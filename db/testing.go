package db

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpenInMemory отдельная in-memory sqlite база с примененными миграциями
func OpenInMemory() (*gorm.DB, error) {
	return Open(ConnectParams{
		Driver:     DriverSqlite,
		SqlitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String()),
		Migrate:    true,
	})
}
