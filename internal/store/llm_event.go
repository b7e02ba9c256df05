package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// eventRepo implements EventRepo with raw SQL over the single append-only
// llm_request_events table.
type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
		 (run_id, provider, model, purpose, input_tokens, output_tokens,
		  latency_ms, success, error_message, request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.RunID, data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		data.Success, data.ErrorMessage, data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

const eventColumns = `id, ts, run_id, provider, model, purpose,
	input_tokens, output_tokens, latency_ms, success,
	error_message, request_body, response_body`

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	var conds []string
	var args []any
	if opts.Purpose != "" {
		conds = append(conds, "purpose = ?")
		args = append(args, opts.Purpose)
	}
	if opts.RunID != "" {
		conds = append(conds, "run_id = ?")
		args = append(args, opts.RunID)
	}

	q := "SELECT " + eventColumns + " FROM llm_request_events"
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY id DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+eventColumns+" FROM llm_request_events WHERE id = ?", id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

type scannable interface {
	Scan(dest ...any) error
}

func scanEvent(row scannable) (*LLMEvent, error) {
	var e LLMEvent
	err := row.Scan(
		&e.ID, &e.Timestamp, &e.RunID, &e.Provider, &e.Model, &e.Purpose,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan LLM event: %w", err)
	}
	return &e, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]UsageStat, error) {
	return r.aggregate(ctx, "purpose")
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]UsageStat, error) {
	return r.aggregate(ctx, "model")
}

func (r *eventRepo) aggregate(ctx context.Context, column string) ([]UsageStat, error) {
	q := fmt.Sprintf(
		`SELECT %s, COUNT(*), SUM(input_tokens), SUM(output_tokens),
		 CAST(AVG(latency_ms) AS INTEGER)
		 FROM llm_request_events GROUP BY %s ORDER BY COUNT(*) DESC`,
		column, column)

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("aggregate by %s: %w", column, err)
	}
	defer rows.Close()

	var stats []UsageStat
	for rows.Next() {
		var s UsageStat
		if err := rows.Scan(&s.Key, &s.Calls, &s.InputTokens, &s.OutputTokens, &s.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
