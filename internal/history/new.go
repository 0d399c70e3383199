package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verbahq/verba/internal/logger"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id              TEXT PRIMARY KEY,
	video_id        TEXT NOT NULL,
	title           TEXT NOT NULL,
	status          TEXT NOT NULL,
	started_at      TIMESTAMP NOT NULL,
	finished_at     TIMESTAMP,
	tokens_used     INTEGER NOT NULL DEFAULT 0,
	processing_time REAL NOT NULL DEFAULT 0,
	estimated_cost  REAL NOT NULL DEFAULT 0,
	output_dir      TEXT NOT NULL DEFAULT '',
	error           TEXT NOT NULL DEFAULT ''
);
`

type implStore struct {
	db     *sql.DB
	logger logger.Logger
}

// Open creates the Store at path, creating the file and schema when
// absent. WAL keeps the CLI responsive when watch mode shares the file.
func Open(path string, log logger.Logger) (Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	return &implStore{db: db, logger: log}, nil
}
