package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	// registers the postgres driver
	_ "github.com/lib/pq"
)

// NewConnection opens a PostgreSQL connection pool and verifies it is
// reachable before handing it out.
func NewConnection(databaseURL string) (*sqlx.DB, error) {
	conn, err := sqlx.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}
