// Package persistence provides a SQLite archive of the transaction
// ledger for offline analysis. Only the append-only ledger and its
// daily rollups are stored; live game state is never saved or
// restored.
package persistence

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/merchant-world/internal/ledger"
)

// DB wraps a SQLite connection for ledger archiving.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		day INTEGER NOT NULL,
		hour INTEGER NOT NULL,
		minute INTEGER NOT NULL,
		kind TEXT NOT NULL,
		item_id TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price INTEGER NOT NULL,
		total_price INTEGER NOT NULL,
		cost_basis REAL,
		counterparty TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_transactions_day ON transactions(day);
	CREATE INDEX IF NOT EXISTS idx_transactions_item ON transactions(item_id);

	CREATE TABLE IF NOT EXISTS daily_analysis (
		day INTEGER PRIMARY KEY,
		total_revenue INTEGER NOT NULL,
		total_spend INTEGER NOT NULL,
		profit REAL NOT NULL,
		transaction_count INTEGER NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// transactionRow is the table shape for a ledger record.
type transactionRow struct {
	ID           string          `db:"id"`
	Day          int             `db:"day"`
	Hour         int             `db:"hour"`
	Minute       int             `db:"minute"`
	Kind         string          `db:"kind"`
	ItemID       string          `db:"item_id"`
	Quantity     int             `db:"quantity"`
	UnitPrice    int             `db:"unit_price"`
	TotalPrice   int             `db:"total_price"`
	CostBasis    sql.NullFloat64 `db:"cost_basis"`
	Counterparty string          `db:"counterparty"`
}

// ArchiveLedger writes the records to the archive. Records already
// present (by ID) are replaced, so re-archiving a longer ledger is
// idempotent.
func (db *DB) ArchiveLedger(records []ledger.Record) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	const insert = `
	INSERT OR REPLACE INTO transactions
		(id, day, hour, minute, kind, item_id, quantity, unit_price, total_price, cost_basis, counterparty)
	VALUES
		(:id, :day, :hour, :minute, :kind, :item_id, :quantity, :unit_price, :total_price, :cost_basis, :counterparty)`

	for _, r := range records {
		row := transactionRow{
			ID:           r.ID,
			Day:          r.At.Day,
			Hour:         r.At.Hour,
			Minute:       r.At.Minute,
			Kind:         string(r.Kind),
			ItemID:       r.ItemID,
			Quantity:     r.Quantity,
			UnitPrice:    r.UnitPrice,
			TotalPrice:   r.TotalPrice,
			Counterparty: r.Counterparty,
		}
		if r.CostBasis != nil {
			row.CostBasis = sql.NullFloat64{Float64: *r.CostBasis, Valid: true}
		}
		if _, err := tx.NamedExec(insert, row); err != nil {
			return fmt.Errorf("insert transaction %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	slog.Info("ledger archived", "records", len(records))
	return nil
}

// LoadLedger reads the archived records back in game-time order.
func (db *DB) LoadLedger() ([]ledger.Record, error) {
	var rows []transactionRow
	err := db.conn.Select(&rows, `
		SELECT id, day, hour, minute, kind, item_id, quantity, unit_price, total_price, cost_basis, counterparty
		FROM transactions
		ORDER BY day, hour, minute, id`)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	records := make([]ledger.Record, 0, len(rows))
	for _, row := range rows {
		r := ledger.Record{
			ID:           row.ID,
			At:           ledger.Timestamp{Day: row.Day, Hour: row.Hour, Minute: row.Minute},
			Kind:         ledger.Kind(row.Kind),
			ItemID:       row.ItemID,
			Quantity:     row.Quantity,
			UnitPrice:    row.UnitPrice,
			TotalPrice:   row.TotalPrice,
			Counterparty: row.Counterparty,
		}
		if row.CostBasis.Valid {
			basis := row.CostBasis.Float64
			r.CostBasis = &basis
		}
		records = append(records, r)
	}
	return records, nil
}

// SaveDailyAnalysis upserts per-day rollups.
func (db *DB) SaveDailyAnalysis(analyses []ledger.DailyAnalysis) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	const insert = `
	INSERT OR REPLACE INTO daily_analysis
		(day, total_revenue, total_spend, profit, transaction_count)
	VALUES (?, ?, ?, ?, ?)`

	for _, a := range analyses {
		if _, err := tx.Exec(insert, a.Day, a.TotalRevenue, a.TotalSpend, a.Profit, a.TransactionCount); err != nil {
			return fmt.Errorf("insert day %d: %w", a.Day, err)
		}
	}
	return tx.Commit()
}

// LoadDailyAnalysis reads the stored rollups ordered by day.
func (db *DB) LoadDailyAnalysis() ([]ledger.DailyAnalysis, error) {
	var out []ledger.DailyAnalysis
	err := db.conn.Select(&out, `
		SELECT day AS "day",
		       total_revenue AS "totalrevenue",
		       total_spend AS "totalspend",
		       profit AS "profit",
		       transaction_count AS "transactioncount"
		FROM daily_analysis ORDER BY day`)
	if err != nil {
		return nil, fmt.Errorf("load daily analysis: %w", err)
	}
	return out, nil
}
