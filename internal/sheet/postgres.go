package sheet

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

func Connect(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}

	return db, nil
}

// PostgresSource treats one table as the tabular input: column names become
// the header row, scanned values keep their driver types (int64, float64,
// bool, time.Time, string, nil).
type PostgresSource struct {
	db    *sql.DB
	table string
}

func NewPostgresSource(db *sql.DB, table string) *PostgresSource {
	return &PostgresSource{db: db, table: table}
}

func (s *PostgresSource) Load(ctx context.Context) ([][]any, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT * FROM `+pq.QuoteIdentifier(s.table)+` ORDER BY 1`)
	if err != nil {
		// таблицы нет -> источник отсутствует
		return nil, ErrNoSheet
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	out := [][]any{header}

	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		out = append(out, vals)
	}

	return out, rows.Err()
}
