package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var itemColumns = []string{"unique_id", "item", "total_wears", "cost_per_wear", "wears_per_month", "date_acquired", "cost", "source", "category"}

var wearColumns = []string{"unique_id", "month", "wears"}

// LoadItems ingests an item_info CSV export, ignoring rows whose unique_id is
// already present. Rows without a unique_id are given a fresh UUID.
func LoadItems(ctx context.Context, db *sqlx.DB, r io.Reader) (int, error) {
	return load(ctx, db, r, "item_info", itemColumns, func(rec map[string]string) ([]any, bool) {
		id := rec["unique_id"]
		if id == "" {
			id = uuid.NewString()
		}
		return []any{
			id,
			rec["item"],
			number("total_wears", rec["total_wears"]),
			number("cost_per_wear", rec["cost_per_wear"]),
			number("wears_per_month", rec["wears_per_month"]),
			rec["date_acquired"],
			number("cost", rec["cost"]),
			rec["source"],
			rec["category"],
		}, true
	})
}

// LoadWears ingests a wear_count CSV export. Rows without a unique_id or
// month cannot be keyed and are skipped.
func LoadWears(ctx context.Context, db *sqlx.DB, r io.Reader) (int, error) {
	return load(ctx, db, r, "wear_count", wearColumns, func(rec map[string]string) ([]any, bool) {
		if rec["unique_id"] == "" || rec["month"] == "" {
			return nil, false
		}
		return []any{rec["unique_id"], rec["month"], number("wears", rec["wears"])}, true
	})
}

func load(ctx context.Context, db *sqlx.DB, r io.Reader, table string, columns []string, row func(map[string]string) ([]any, bool)) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read %s header: %w", table, err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := index["unique_id"]; !ok {
		return 0, fmt.Errorf("%s header has no unique_id column", table)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin %s seed: %w", table, err)
	}
	defer tx.Rollback()

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := tx.Rebind(fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) ON CONFLICT DO NOTHING`,
		table, strings.Join(columns, ", "), placeholders))
	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("prepare %s insert: %w", table, err)
	}
	defer stmt.Close()

	rows := 0
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read %s line %d: %w", table, line, err)
		}
		rec := make(map[string]string, len(columns))
		for _, col := range columns {
			if i, ok := index[col]; ok && i < len(record) {
				rec[col] = strings.TrimSpace(record[i])
			}
		}
		args, ok := row(rec)
		if !ok {
			slog.Debug("skipping seed row", "table", table, "line", line)
			continue
		}
		res, err := stmt.ExecContext(ctx, args...)
		if err != nil {
			return 0, fmt.Errorf("insert %s line %d: %w", table, line, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			rows++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit %s seed: %w", table, err)
	}
	return rows, nil
}

// number accepts spreadsheet style integers ("12", "12.0"). Blanks map to
// zero; fractions are truncated and junk maps to zero, both logged.
func number(column, s string) int64 {
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		slog.Debug("non-numeric seed value, using 0", "column", column, "value", s)
		return 0
	}
	if f != math.Trunc(f) {
		slog.Debug("truncating fractional seed value", "column", column, "value", s, "stored", int64(f))
	}
	return int64(f)
}
