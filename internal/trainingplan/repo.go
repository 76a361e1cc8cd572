package trainingplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/leancoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrPlanNotFound = errors.New("training plan not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// CreateNext appends a new training plan version for the user, version
// assigned inside the insert statement.
func (r *Repo) CreateNext(ctx context.Context, plan TrainingPlan) (_ *TrainingPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingplan.createNext")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", plan.UserID))

	planDataJson, err := json.Marshal(plan.PlanData)
	if err != nil {
		return nil, fmt.Errorf("marshal plan data: %w", err)
	}

	plan.CreatedAt = time.Now()
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO training_plans
				(user_id, version, plan_data, created_at)
			VALUES (
				$1,
				(SELECT COALESCE(MAX(version), 0) + 1 FROM training_plans WHERE user_id = $1),
				$2, $3
			)
		RETURNING id, version;`,
		plan.UserID, planDataJson, plan.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}
	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}
	if err := rows.Scan(&plan.ID, &plan.Version); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("plan.version", plan.Version))
	return &plan, nil
}

// GetCurrent returns the highest version of the user's training plan.
func (r *Repo) GetCurrent(ctx context.Context, userID int) (_ *TrainingPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainingplan.getCurrent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, version, plan_data, created_at
			FROM training_plans
			WHERE user_id = $1
			ORDER BY version DESC
			LIMIT 1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans, err := r.rows2plans(rows)
	if err != nil {
		return nil, err
	}
	if len(plans) != 1 {
		return nil, ErrPlanNotFound
	}
	return &plans[0], nil
}

func (r *Repo) rows2plans(rows pgx.Rows) ([]TrainingPlan, error) {
	var plans []TrainingPlan
	for rows.Next() {
		var p TrainingPlan
		var planDataJson []byte
		if err := rows.Scan(&p.ID, &p.UserID, &p.Version, &planDataJson, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(planDataJson, &p.PlanData); err != nil {
			return nil, fmt.Errorf("unmarshal plan data: %w", err)
		}
		plans = append(plans, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if plans == nil {
		plans = make([]TrainingPlan, 0)
	}
	return plans, nil
}
