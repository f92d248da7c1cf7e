package records

import (
	"strings"
	"time"

	"lifelist-backend/internal/age"
)

// Record is one normalized output row, keyed by normalized header name.
type Record map[string]any

const isoMillis = "2006-01-02T15:04:05.000Z"

// Normalizer converts raw tabular input (header row + data rows of
// heterogeneous cells) into typed records. Birth date and clock are explicit
// so the whole thing stays a pure function of its inputs.
type Normalizer struct {
	birth time.Time
	now   func() time.Time
}

func New(birth time.Time, now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{birth: birth, now: now}
}

// callState is captured once per Convert call: every row shares the same
// "now" and the same decade bucket.
type callState struct {
	now    time.Time
	decade int
}

// Convert turns rows (row 0 = header) into normalized records, preserving
// row order. Empty or header-only input yields an empty slice, never an
// error: a dirty spreadsheet must still produce an answer.
func (n *Normalizer) Convert(rows [][]any) []Record {
	out := []Record{}
	if len(rows) < 2 {
		return out
	}

	keys := headerKeys(rows[0])
	cs := callState{now: n.now()}
	cs.decade = age.Decade(n.birth, cs.now)

	for _, row := range rows[1:] {
		out = append(out, normalizeRow(keys, row, cs))
	}
	return out
}

// headerKeys normalizes header cells to field keys: trim + lowercase.
// Two headers folding to the same key collide; later columns win because
// normalizeRow assigns in column order (ordered last-write-wins).
func headerKeys(header []any) []string {
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = strings.ToLower(strings.TrimSpace(toString(h)))
	}
	return keys
}

func normalizeRow(keys []string, row []any, cs callState) Record {
	rec := Record{}
	for i, key := range keys {
		present := i < len(row)
		var v any
		if present {
			v = row[i]
		}

		if parse, ok := fieldParsers[key]; ok {
			rec[key] = parse(v, cs)
		} else if present {
			// свободная колонка — значение как есть
			rec[key] = v
		}
	}

	applyCompletionRule(rec, cs)
	return rec
}

// applyCompletionRule enforces the cross-field invariant:
// completed=false forces completed_at to null; completed=true guarantees a
// non-null, non-future completed_at (defaulting to the shared "now").
func applyCompletionRule(rec Record, cs callState) {
	c, ok := rec["completed"]
	if !ok {
		return
	}

	if c == true {
		if rec["completed_at"] == nil {
			rec["completed_at"] = cs.now.UTC().Format(isoMillis)
		}
		return
	}
	rec["completed_at"] = nil
}
