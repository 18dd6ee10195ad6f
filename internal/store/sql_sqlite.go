package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
)

const sqliteBusyTimeoutMS = "5000"

// NewConnectSQLite opens the database file at cfg.DSN, creating it and its
// directory when missing. The connection uses WAL journaling and takes the
// write lock at BEGIN, so concurrent writers from several processes queue on
// the busy timeout instead of failing mid-transaction.
func NewConnectSQLite(ctx context.Context, cfg config.StorageConfig, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// a single writer connection per process; the busy timeout handles the rest
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", cfg.DSN).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		path:   cfg.DSN,
		logger: log,
	}, nil
}

func sqliteDSN(path string) string {
	params := url.Values{}
	params.Set("_busy_timeout", sqliteBusyTimeoutMS)
	params.Set("_journal_mode", "WAL")
	params.Set("_txlock", "immediate")

	return "file:" + path + "?" + params.Encode()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(dbFile), 0o755); err != nil {
			return fmt.Errorf("error creating DB dir: %w", err)
		}
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
