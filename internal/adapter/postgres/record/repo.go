// Package record persists extracted records. Records are append-only:
// the full record is stored as JSONB alongside the scalar key fields,
// and re-running the pipeline over the same pages is idempotent through
// a content fingerprint.
package record

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/wiktparse/internal/adapter/postgres"
	"github.com/heartmarshall/wiktparse/internal/domain"
)

// Repo is the PostgreSQL record sink.
type Repo struct {
	db postgres.Querier
	sb sq.StatementBuilderType
}

// New creates a Repo. db is usually a *pgxpool.Pool, but any Querier
// works, so the repo runs unchanged inside a transaction.
func New(db postgres.Querier) *Repo {
	return &Repo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// BulkInsert inserts records using pgx.Batch. A record whose
// fingerprint already exists is skipped via ON CONFLICT DO NOTHING.
// Returns the number of actually inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, recs []domain.Record) (int, error) {
	if len(recs) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for i := range recs {
		payload, err := json.Marshal(&recs[i])
		if err != nil {
			return 0, fmt.Errorf("marshal record %q: %w", recs[i].Word, err)
		}
		batch.Queue(
			`INSERT INTO records (id, word, lang, lang_code, pos, payload, fingerprint, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (fingerprint) DO NOTHING`,
			uuid.New(), recs[i].Word, recs[i].Lang, recs[i].LangCode, recs[i].POS,
			payload, fingerprint(payload), now,
		)
	}

	return r.sendBatchExec(ctx, batch)
}

// Filter narrows List results. Zero values mean "any".
type Filter struct {
	Word     string
	Lang     string
	LangCode string
	POS      string
	Limit    uint64
	Offset   uint64
}

// List returns stored records matching the filter in insertion order.
func (r *Repo) List(ctx context.Context, f Filter) ([]domain.Record, error) {
	qb := r.sb.Select("payload").From("records").OrderBy("created_at", "id")
	if f.Word != "" {
		qb = qb.Where(sq.Eq{"word": f.Word})
	}
	if f.Lang != "" {
		qb = qb.Where(sq.Eq{"lang": f.Lang})
	}
	if f.LangCode != "" {
		qb = qb.Where(sq.Eq{"lang_code": f.LangCode})
	}
	if f.POS != "" {
		qb = qb.Where(sq.Eq{"pos": f.POS})
	}
	if f.Limit > 0 {
		qb = qb.Limit(f.Limit)
	}
	if f.Offset > 0 {
		qb = qb.Offset(f.Offset)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var out []domain.Record
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		var rec domain.Record
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return out, nil
}

// Count returns the number of stored records matching the filter.
func (r *Repo) Count(ctx context.Context, f Filter) (int64, error) {
	qb := r.sb.Select("count(*)").From("records")
	if f.Word != "" {
		qb = qb.Where(sq.Eq{"word": f.Word})
	}
	if f.Lang != "" {
		qb = qb.Where(sq.Eq{"lang": f.Lang})
	}
	if f.LangCode != "" {
		qb = qb.Where(sq.Eq{"lang_code": f.LangCode})
	}
	if f.POS != "" {
		qb = qb.Where(sq.Eq{"pos": f.POS})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) (int, error) {
	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("batch exec: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// fingerprint is the idempotency key: a hash of the serialized record.
func fingerprint(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
