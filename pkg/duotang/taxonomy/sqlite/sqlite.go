package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/OrbitCoCo/DuoTang/pkg/duotang/internalerr"
	"github.com/OrbitCoCo/DuoTang/pkg/duotang/taxonomy"
)

// RetryConfig bounds the startup connection policy. The database is pinged
// up to Attempts times, Delay apart, before Open gives up with
// internalerr.ErrDataUnavailable.
type RetryConfig struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetryConfig returns the standard startup policy.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{Attempts: 3, Delay: 500 * time.Millisecond}
}

// Store is a taxonomy backend over a local SQLite lexical database.
type Store struct {
	db *sql.DB
}

// Open opens a SQLite lexical database with WAL mode enabled and the
// schema initialized. An optional RetryConfig controls the startup ping
// policy; if omitted, DefaultRetryConfig() is used. Exhausting the policy
// yields an error wrapping internalerr.ErrDataUnavailable — callers treat
// that as fatal, never as a per-word condition.
func Open(ctx context.Context, path string, cfg ...RetryConfig) (*Store, error) {
	c := DefaultRetryConfig()
	if len(cfg) > 0 {
		c = cfg[0]
	}
	if c.Attempts <= 0 {
		c.Attempts = 1
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrDataUnavailable, err)
	}

	var pingErr error
	for attempt := 0; attempt < c.Attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				db.Close()
				return nil, ctx.Err()
			case <-time.After(c.Delay):
			}
		}
		if pingErr = db.PingContext(ctx); pingErr == nil {
			break
		}
	}
	if pingErr != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrDataUnavailable, pingErr)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrDataUnavailable, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrDataUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrDataUnavailable, err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS senses (
	word TEXT NOT NULL,
	pos TEXT NOT NULL,
	sense_id TEXT NOT NULL,
	rank INTEGER NOT NULL DEFAULT 0,
	definition TEXT NOT NULL DEFAULT '',
	is_instance INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY(word, pos, sense_id)
);

CREATE INDEX IF NOT EXISTS idx_senses_word_pos ON senses(word, pos, rank);

CREATE TABLE IF NOT EXISTS hypernyms (
	sense_id TEXT NOT NULL,
	category TEXT NOT NULL,
	PRIMARY KEY(sense_id, category)
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertSense stores one sense of a word along with its ancestor-category
// closure. Used by the import tooling; the query side never mutates.
func (s *Store) UpsertSense(ctx context.Context, word string, pos taxonomy.PartOfSpeech, rank int, sense taxonomy.Sense) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || sense.ID == "" {
		return internalerr.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	instance := 0
	if sense.IsInstance {
		instance = 1
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO senses (word, pos, sense_id, rank, definition, is_instance)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(word, pos, sense_id) DO UPDATE SET
			rank = excluded.rank,
			definition = excluded.definition,
			is_instance = excluded.is_instance`,
		word, string(pos), sense.ID, rank, sense.Definition, instance)
	if err != nil {
		return err
	}

	for _, cat := range sense.Hypernyms {
		cat = strings.ToLower(strings.TrimSpace(cat))
		if cat == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO hypernyms (sense_id, category)
			VALUES (?, ?)`, sense.ID, cat); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Senses implements taxonomy.Taxonomy. Senses come back in stored rank
// order, matching the database's native primary-sense-first ordering.
func (s *Store) Senses(ctx context.Context, word string, pos taxonomy.PartOfSpeech) ([]taxonomy.Sense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sense_id, definition, is_instance
		FROM senses
		WHERE word = ? AND pos = ?
		ORDER BY rank, sense_id`,
		strings.ToLower(word), string(pos))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var senses []taxonomy.Sense
	for rows.Next() {
		var sense taxonomy.Sense
		var instance int
		if err := rows.Scan(&sense.ID, &sense.Definition, &instance); err != nil {
			return nil, err
		}
		sense.IsInstance = instance != 0
		senses = append(senses, sense)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range senses {
		hyps, err := s.hypernyms(ctx, senses[i].ID)
		if err != nil {
			return nil, err
		}
		senses[i].Hypernyms = hyps
	}

	return senses, nil
}

func (s *Store) hypernyms(ctx context.Context, senseID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category FROM hypernyms WHERE sense_id = ? ORDER BY category`,
		senseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []string
	for rows.Next() {
		var cat string
		if err := rows.Scan(&cat); err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}
	return cats, rows.Err()
}

// Words implements taxonomy.VocabularySource: every distinct single-word
// noun lemma, lowercased. Phrases and hyphenated entries are skipped.
func (s *Store) Words(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT word FROM senses
		WHERE pos = ?
		  AND word NOT LIKE '% %'
		  AND word NOT LIKE '%-%'
		  AND word NOT LIKE '%\_%' ESCAPE '\'
		ORDER BY word`,
		string(taxonomy.Noun))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}
