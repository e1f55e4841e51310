package repos

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the sqlite database holding the serialized store states and
// bootstraps the schema.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS state(
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at TEXT
);
`
	_, err := db.Exec(schema)
	return err
}

// StateRepo is the durable key-value slot the cart and wishlist stores
// serialize into. One row per fixed key, last writer wins.
type StateRepo struct{ db *sqlx.DB }

func NewStateRepo(db *sqlx.DB) *StateRepo { return &StateRepo{db: db} }

func (r *StateRepo) Save(key string, data []byte) error {
	_, err := r.db.Exec(`
		INSERT INTO state(key,value,updated_at) VALUES(?,?,?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(data), time.Now().Format(time.RFC3339))
	return err
}

// Load returns (nil, nil) for a key that has never been written.
func (r *StateRepo) Load(key string) ([]byte, error) {
	var value string
	if err := r.db.Get(&value, `SELECT value FROM state WHERE key = ?`, key); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return []byte(value), nil
}

func (r *StateRepo) Delete(key string) error {
	_, err := r.db.Exec(`DELETE FROM state WHERE key = ?`, key)
	return err
}
