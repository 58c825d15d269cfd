package activity

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/2beens/fitstats/internal/fitness"
	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS activity
(
    id              VARCHAR(36) PRIMARY KEY,
    user_id         VARCHAR          NOT NULL,
    type            VARCHAR          NOT NULL,
    duration        DOUBLE PRECISION NOT NULL,
    distance        DOUBLE PRECISION,
    user_weight     DOUBLE PRECISION,
    calories_burned INTEGER          NOT NULL,
    notes           TEXT             NOT NULL DEFAULT '',
    timestamp       TIMESTAMPTZ      NOT NULL
);

CREATE INDEX IF NOT EXISTS ix_activity_user_timestamp ON activity (user_id, timestamp DESC, id DESC);
`

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

// EnsureSchema creates the activity table if it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.ensure-schema")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err = s.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create activity schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Add(ctx context.Context, activity *Activity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("activity.id", activity.ID))
	span.SetAttributes(attribute.String("activity.type", activity.Type.String()))

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `
		INSERT INTO activity
			(id, user_id, type, duration, distance, user_weight, calories_burned, notes, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		activity.ID, activity.UserID, activity.Type.String(), activity.Duration,
		activity.Distance, activity.UserWeight, activity.CaloriesBurned, activity.Notes,
		activity.Timestamp,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrDuplicateActivity
		}
		return fmt.Errorf("insert activity: %w", err)
	}

	return nil
}

// List streams the matching rows, the query runs when the sequence is ranged.
func (s *PostgresStore) List(ctx context.Context, userID string, filter Filter) iter.Seq2[*Activity, error] {
	return func(yield func(*Activity, error) bool) {
		var err error
		ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.list")
		defer func() {
			tracing.EndSpanWithErrCheck(span, err)
		}()
		span.SetAttributes(attribute.String("type", filter.Type.String()))
		if filter.StartDate != nil {
			span.SetAttributes(attribute.String("from", filter.StartDate.String()))
		}
		if filter.EndDate != nil {
			span.SetAttributes(attribute.String("to", filter.EndDate.String()))
		}

		rows, err := s.db.Query(
			ctx,
			`
			SELECT
				id, user_id, type, duration, distance, user_weight, calories_burned, notes, timestamp
			FROM activity
				WHERE user_id = $1
				AND ($2::text = '' OR type = $2)
				AND ($3::timestamptz IS NULL OR timestamp >= $3)
				AND ($4::timestamptz IS NULL OR timestamp <= $4)
			ORDER BY timestamp DESC, id DESC;`,
			userID, filter.Type.String(), filter.StartDate, filter.EndDate,
		)
		if err != nil {
			err = fmt.Errorf("query: %w", err)
			yield(nil, err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var activity *Activity
			activity, err = scanActivity(rows)
			if err != nil {
				yield(nil, err)
				return
			}
			count++
			if !yield(activity, nil) {
				return
			}
		}
		span.SetAttributes(attribute.Int("rows", count))

		if err = rows.Err(); err != nil {
			err = fmt.Errorf("rows: %w", err)
			yield(nil, err)
		}
	}
}

func scanActivity(rows pgx.Rows) (*Activity, error) {
	var (
		a       Activity
		actType string
	)
	if err := rows.Scan(
		&a.ID, &a.UserID, &actType, &a.Duration, &a.Distance, &a.UserWeight,
		&a.CaloriesBurned, &a.Notes, &a.Timestamp,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}
	a.Type = fitness.ActivityType(actType)
	a.Timestamp = a.Timestamp.UTC()
	return &a, nil
}
