package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists pricing history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read while the service writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS recommendations (
			id                   TEXT PRIMARY KEY,
			timestamp            INTEGER NOT NULL,
			raw_price            REAL,
			final_price          REAL,
			market_demand        REAL,
			economic_indicator   REAL,
			customer_preference  REAL,
			competitor_price_avg REAL,
			competitor_count     INTEGER,
			risk_total           REAL,
			risk_level           TEXT,
			source               TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reco_ts ON recommendations(timestamp)`,

		`CREATE TABLE IF NOT EXISTS training_events (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			model        TEXT,
			observations INTEGER,
			succeeded    INTEGER,
			note         TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_training_ts ON training_events(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordCycle(rec *CycleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reco := rec.Recommendation
	fs := reco.Features

	// Absent feature groups are stored as NULL, matching their omission
	// from the feature set.
	var demand, econ, pref, compAvg, compCount any
	if f := fs.Market; f != nil {
		demand, econ = f.Demand, f.EconomicIndicator
	}
	if f := fs.Customer; f != nil {
		pref = f.PreferenceScore
	}
	if f := fs.Competitor; f != nil {
		compAvg, compCount = f.PriceAvg, f.Count
	}

	var riskTotal, riskLevel any
	if rec.Risk != nil {
		riskTotal = rec.Risk.Total
		riskLevel = string(rec.Risk.Level)
	}

	_, err := r.db.Exec(`INSERT INTO recommendations
		(id, timestamp, raw_price, final_price,
		 market_demand, economic_indicator, customer_preference,
		 competitor_price_avg, competitor_count,
		 risk_total, risk_level, source)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		reco.ID, reco.CreatedAt.Unix(), reco.RawPrice, reco.Price,
		demand, econ, pref,
		compAvg, compCount,
		riskTotal, riskLevel, rec.Source,
	)
	return err
}

func (r *SQLiteRecorder) RecordTraining(evt *TrainingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	succeeded := 0
	if evt.Succeeded {
		succeeded = 1
	}
	_, err := r.db.Exec(`INSERT INTO training_events
		(timestamp, model, observations, succeeded, note)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.Model, evt.Observations, succeeded, evt.Note,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
