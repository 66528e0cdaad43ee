package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	m "covsight.dev/pkg/covsight/internal/model"
)

// sqliteTracesQuery reads the traces table. A row with a NULL line registers
// the path without any coverable unit.
const sqliteTracesQuery = `SELECT path, line, hits, address, length FROM traces ORDER BY path, line`

func loadSQLiteTraces(ctx context.Context, path m.Path) (*m.TraceStore, error) {
	db, err := sql.Open("sqlite", string(path)+"?mode=ro&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open trace database: %w", err)
	}

	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close trace database", "path", path, "error", err)
		}
	}()

	rows, err := db.QueryContext(ctx, sqliteTracesQuery)
	if err != nil {
		return nil, fmt.Errorf("query traces: %w", err)
	}

	defer func() { _ = rows.Close() }()

	store := m.NewTraceStore()

	for rows.Next() {
		var (
			file    string
			line    sql.NullInt64
			hits    sql.NullInt64
			address sql.NullInt64
			length  sql.NullInt64
		)

		if err := rows.Scan(&file, &line, &hits, &address, &length); err != nil {
			return nil, fmt.Errorf("scan trace row: %w", err)
		}

		if !line.Valid || line.Int64 <= 0 {
			store.AddPath(m.Path(file))
			continue
		}

		trace := m.Trace{
			Line:   uint64(line.Int64),
			Length: int(length.Int64),
			Stats:  m.CoverageStat{Line: uint64(max(hits.Int64, 0))},
		}

		if address.Valid {
			trace.Address = []uint64{uint64(address.Int64)}
		}

		store.Insert(m.Path(file), trace)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read trace rows: %w", err)
	}

	return store, nil
}
