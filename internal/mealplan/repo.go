package mealplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/leancoach/internal/telemetry/tracing"
	"github.com/2beens/leancoach/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrPlanNotFound    = errors.New("meal plan not found")
	ErrVersionConflict = errors.New("meal plan version conflict")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// CreateNext appends a new meal plan version for the user. Version
// assignment happens inside the insert statement, so two concurrent
// regenerations cannot claim the same version number.
func (r *Repo) CreateNext(ctx context.Context, plan MealPlan) (_ *MealPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mealplan.createNext")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", plan.UserID))

	planDataJson, err := json.Marshal(plan.PlanData)
	if err != nil {
		return nil, fmt.Errorf("marshal plan data: %w", err)
	}
	groceryListJson, err := json.Marshal(plan.GroceryList)
	if err != nil {
		return nil, fmt.Errorf("marshal grocery list: %w", err)
	}

	plan.CreatedAt = time.Now()
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO meal_plans
				(user_id, version, targets_version, plan_data, grocery_list, created_at)
			VALUES (
				$1,
				(SELECT COALESCE(MAX(version), 0) + 1 FROM meal_plans WHERE user_id = $1),
				$2, $3, $4, $5
			)
		RETURNING id, version;`,
		plan.UserID, plan.TargetsVersion, planDataJson, groceryListJson, plan.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrVersionConflict
		}
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

// GetCurrent returns the highest version of the user's meal plan.
func (r *Repo) GetCurrent(ctx context.Context, userID int) (_ *MealPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.mealplan.getCurrent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, version, targets_version, plan_data, grocery_list, created_at
			FROM meal_plans
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

func (r *Repo) rows2plans(rows pgx.Rows) ([]MealPlan, error) {
	var plans []MealPlan
	for rows.Next() {
		var p MealPlan
		var planDataJson, groceryListJson []byte
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Version, &p.TargetsVersion,
			&planDataJson, &groceryListJson, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if err := json.Unmarshal(planDataJson, &p.PlanData); err != nil {
			return nil, fmt.Errorf("unmarshal plan data: %w", err)
		}
		if err := json.Unmarshal(groceryListJson, &p.GroceryList); err != nil {
			return nil, fmt.Errorf("unmarshal grocery list: %w", err)
		}
		plans = append(plans, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if plans == nil {
		plans = make([]MealPlan, 0)
	}
	return plans, nil
}
