package audit

import (
	"database/sql"
	"encoding/json"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
)

var _ Sink = (*Store)(nil)

// Store handles audit message persistence to database
type Store struct {
	db *sql.DB
}

// Message represents an audit message as stored in audit_messages
type Message struct {
	Facility  int            `json:"facility"`
	Severity  int            `json:"severity"`
	Timestamp time.Time      `json:"timestamp"`
	Hostname  string         `json:"hostname"`
	Appname   string         `json:"appname"`
	Procid    string         `json:"procid"`
	Msgid     string         `json:"msgid"`
	Sdata     map[string]any `json:"sdata"`
	Message   string         `json:"message"`
}

// NewStore opens the audit database at dbURL.
// Returns nil if dbURL is empty (audit DB disabled).
func NewStore(dbURL string) (*Store, error) {
	if dbURL == "" {
		return nil, nil
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// NewStoreWithDB creates a store with an existing database connection
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save persists an audit event to the database
func (s *Store) Save(event Event) error {
	if s.db == nil {
		return nil
	}

	hostname, _ := os.Hostname()

	sdataJSON, err := json.Marshal(event.StructuredData())
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO audit_messages (facility, severity, timestamp, hostname, appname, procid, msgid, sdata, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		event.Facility(),
		int(event.Severity()),
		time.Now().UTC(),
		hostname,
		AppName,
		strconv.Itoa(os.Getpid()),
		event.MessageID(),
		string(sdataJSON),
		event.Message(),
	)

	return err
}
