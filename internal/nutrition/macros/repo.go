package macros

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/leancoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrTargetsNotFound = errors.New("macro targets not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// CreateNext appends a new macro targets version for the user. Version
// assignment happens inside the insert statement, so concurrent
// recalculations cannot produce duplicate version numbers.
func (r *Repo) CreateNext(ctx context.Context, targets MacroTargets) (_ *MacroTargets, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.macros.createNext")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", targets.UserID))
	span.SetAttributes(attribute.String("formula", string(targets.FormulaUsed)))

	targets.CreatedAt = time.Now()
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO macro_targets
				(user_id, version, bmr, tdee, calorie_target, protein_g, fat_g, carbs_g, formula_used, explanation, created_at)
			VALUES (
				$1,
				(SELECT COALESCE(MAX(version), 0) + 1 FROM macro_targets WHERE user_id = $1),
				$2, $3, $4, $5, $6, $7, $8, $9, $10
			)
		RETURNING id, version;`,
		targets.UserID,
		targets.BMR, targets.TDEE, targets.CalorieTarget,
		targets.ProteinG, targets.FatG, targets.CarbsG,
		targets.FormulaUsed, targets.Explanation, targets.CreatedAt,
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
	if err := rows.Scan(&targets.ID, &targets.Version); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("targets.version", targets.Version))
	return &targets, nil
}

// GetCurrent returns the highest version of the user's macro targets.
func (r *Repo) GetCurrent(ctx context.Context, userID int) (_ *MacroTargets, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.macros.getCurrent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, version, bmr, tdee, calorie_target, protein_g, fat_g, carbs_g, formula_used, explanation, created_at
			FROM macro_targets
			WHERE user_id = $1
			ORDER BY version DESC
			LIMIT 1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	targetsList, err := r.rows2targets(rows)
	if err != nil {
		return nil, err
	}
	if len(targetsList) != 1 {
		return nil, ErrTargetsNotFound
	}
	return &targetsList[0], nil
}

// ListVersions returns all macro targets versions for the user, newest first.
func (r *Repo) ListVersions(ctx context.Context, userID int) (_ []MacroTargets, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.macros.listVersions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, version, bmr, tdee, calorie_target, protein_g, fat_g, carbs_g, formula_used, explanation, created_at
			FROM macro_targets
			WHERE user_id = $1
			ORDER BY version DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.rows2targets(rows)
}

func (r *Repo) rows2targets(rows pgx.Rows) ([]MacroTargets, error) {
	var targetsList []MacroTargets
	for rows.Next() {
		var t MacroTargets
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Version,
			&t.BMR, &t.TDEE, &t.CalorieTarget,
			&t.ProteinG, &t.FatG, &t.CarbsG,
			&t.FormulaUsed, &t.Explanation, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		targetsList = append(targetsList, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if targetsList == nil {
		targetsList = make([]MacroTargets, 0)
	}
	return targetsList, nil
}
