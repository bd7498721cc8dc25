package audit

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
)

// Store persists audit events to a database table named messages, mirroring
// the columns of the syslog line so events stay queryable after rotation.
type Store struct {
	db       *sql.DB
	hostname string
	appName  string
	pid      int
}

// NewStore creates a store connected to AUDIT_DATABASE_URL. When the
// variable is unset, audit persistence is off and both return values are
// nil.
func NewStore() (*Store, error) {
	databaseURL := os.Getenv("AUDIT_DATABASE_URL")
	if databaseURL == "" {
		return nil, nil
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to audit database: %w", err)
	}

	return NewStoreWithDB(db), nil
}

// NewStoreWithDB creates a store around an existing database handle.
func NewStoreWithDB(db *sql.DB) *Store {
	hostname, _ := os.Hostname()
	return &Store{
		db:       db,
		hostname: hostname,
		appName:  "loanledger",
		pid:      os.Getpid(),
	}
}

// Save writes an audit event to the messages table.
func (s *Store) Save(event Event) error {
	sd := formatStructuredData(event.StructuredData())
	if sd == "" {
		sd = "-"
	}

	_, err := s.db.Exec(
		`INSERT INTO messages (
			timestamp, facility, severity, hostname, appname, procid, msgid, sdata, message
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		time.Now().UTC(),
		event.Facility(),
		int(event.Severity()),
		s.hostname,
		s.appName,
		fmt.Sprintf("%d", s.pid),
		event.MessageID(),
		sd,
		event.Message(),
	)
	if err != nil {
		return fmt.Errorf("failed to save audit event: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
