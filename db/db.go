package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

type ConnectParams struct {
	Driver     string
	Host       string
	Port       string
	Name       string
	User       string
	Password   string
	SqlitePath string
	DebugMode  bool
	Migrate    bool
}

func Connect(params ConnectParams) error {
	if DB == nil {
		db, err := Open(params)
		if err != nil {
			return err
		}
		DB = db
		log.Info("Сервис успешно подключен к БД")
	}
	return nil
}

// Open открывает подключение без сохранения в глобальной переменной, используется в тестах и cli
func Open(params ConnectParams) (*gorm.DB, error) {
	dialector, err := getDialector(params)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Ошибка подключения к БД")
	}
	if params.DebugMode {
		db.Logger = logger.Default.LogMode(logger.Info)
		db = db.Debug()
	}
	if params.Migrate {
		if err = AutoMigrateDB(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func getDialector(params ConnectParams) (gorm.Dialector, error) {
	switch params.Driver {
	case DriverPostgres:
		dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s",
			params.Host, params.Port, params.User, params.Name, params.Password)
		return postgres.Open(dbConnString), nil
	case DriverSqlite, "":
		if err := ensureDirForSqlite(params.SqlitePath); err != nil {
			return nil, err
		}
		return sqlite.Open(params.SqlitePath), nil
	}
	return nil, errors.Errorf("неизвестный драйвер БД: %s", params.Driver)
}

func ensureDirForSqlite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "ошибка создания каталога БД %s", dir)
	}
	return nil
}

func PingDB() error {
	db, err := DB.DB()
	if err != nil {
		return err
	}
	if err = db.Ping(); err != nil {
		return err
	}
	return nil
}
