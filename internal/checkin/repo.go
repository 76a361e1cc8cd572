package checkin

import (
	"context"
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
	ErrCheckInNotFound    = errors.New("check-in not found")
	ErrAdjustmentNotFound = errors.New("macro adjustment not found")
)

// ClientCheckInStatus is one row of the coach overview: the latest
// onboarding state plus the most recent check-in time, if any.
type ClientCheckInStatus struct {
	UserID              int        `json:"userId"`
	OnboardingCompleted bool       `json:"onboardingCompleted"`
	LastCheckInAt       *time.Time `json:"lastCheckInAt,omitempty"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// CreateCheckIn stores a new weekly check-in. Week number assignment
// happens inside the insert statement, so concurrent submissions cannot
// claim the same week number.
func (r *Repo) CreateCheckIn(ctx context.Context, checkIn CheckIn) (_ *CheckIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkin.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", checkIn.UserID))

	checkIn.CreatedAt = time.Now()
	if checkIn.ProgressPhotos == nil {
		checkIn.ProgressPhotos = []string{}
	}

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO check_ins
				(user_id, week_number, weight_kg, waist_cm, adherence_rating, steps_avg, sleep_avg, notes, progress_photos, created_at)
			VALUES (
				$1,
				(SELECT COALESCE(MAX(week_number), 0) + 1 FROM check_ins WHERE user_id = $1),
				$2, $3, $4, $5, $6, $7, $8, $9
			)
		RETURNING id, week_number;`,
		checkIn.UserID,
		checkIn.WeightKg, checkIn.WaistCm, checkIn.AdherenceRating,
		checkIn.StepsAvg, checkIn.SleepAvg, checkIn.Notes,
		checkIn.ProgressPhotos, checkIn.CreatedAt,
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
	if err := rows.Scan(&checkIn.ID, &checkIn.WeekNumber); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("checkin.week", checkIn.WeekNumber))
	return &checkIn, nil
}

// GetLastCheckIn returns the user's most recent check-in.
func (r *Repo) GetLastCheckIn(ctx context.Context, userID int) (_ *CheckIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkin.getLast")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, week_number, weight_kg, waist_cm, adherence_rating, steps_avg, sleep_avg, notes, progress_photos, created_at
			FROM check_ins
			WHERE user_id = $1
			ORDER BY week_number DESC
			LIMIT 1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checkIns, err := r.rows2checkIns(rows)
	if err != nil {
		return nil, err
	}
	if len(checkIns) != 1 {
		return nil, ErrCheckInNotFound
	}
	return &checkIns[0], nil
}

// ListCheckIns returns all check-ins for the user, newest first.
func (r *Repo) ListCheckIns(ctx context.Context, userID int) (_ []CheckIn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkin.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, week_number, weight_kg, waist_cm, adherence_rating, steps_avg, sleep_avg, notes, progress_photos, created_at
			FROM check_ins
			WHERE user_id = $1
			ORDER BY week_number DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.rows2checkIns(rows)
}

// CreatePendingAdjustment inserts a new pending adjustment and dismisses
// any prior pending one for the user in the same transaction.
func (r *Repo) CreatePendingAdjustment(ctx context.Context, adjustment PendingMacroAdjustment) (_ *PendingMacroAdjustment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkin.createPendingAdjustment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", adjustment.UserID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	now := time.Now()
	if _, err = tx.Exec(
		ctx,
		`UPDATE pending_macro_adjustments
			SET status = $1, updated_at = $2
			WHERE user_id = $3 AND status = $4;`,
		AdjustmentDismissed, now, adjustment.UserID, AdjustmentPending,
	); err != nil {
		return nil, fmt.Errorf("dismiss prior pending adjustments: %w", err)
	}

	adjustment.Status = AdjustmentPending
	adjustment.CreatedAt = now
	adjustment.UpdatedAt = now
	if err = tx.QueryRow(
		ctx,
		`INSERT INTO pending_macro_adjustments
				(user_id, check_in_id, status,
				 current_calories, current_protein_g, current_fat_g, current_carbs_g,
				 proposed_calories, proposed_protein_g, proposed_fat_g, proposed_carbs_g,
				 created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id;`,
		adjustment.UserID, adjustment.CheckInID, adjustment.Status,
		adjustment.CurrentCalories, adjustment.CurrentProteinG, adjustment.CurrentFatG, adjustment.CurrentCarbsG,
		adjustment.ProposedCalories, adjustment.ProposedProteinG, adjustment.ProposedFatG, adjustment.ProposedCarbsG,
		adjustment.CreatedAt, adjustment.UpdatedAt,
	).Scan(&adjustment.ID); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrCheckInNotFound
		}
		return nil, fmt.Errorf("insert pending adjustment: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &adjustment, nil
}

// GetPendingAdjustment returns the user's single pending adjustment.
func (r *Repo) GetPendingAdjustment(ctx context.Context, userID int) (_ *PendingMacroAdjustment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkin.getPendingAdjustment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, check_in_id, status,
				current_calories, current_protein_g, current_fat_g, current_carbs_g,
				proposed_calories, proposed_protein_g, proposed_fat_g, proposed_carbs_g,
				created_at, updated_at
			FROM pending_macro_adjustments
			WHERE user_id = $1 AND status = $2
			ORDER BY created_at DESC
			LIMIT 1;`,
		userID, AdjustmentPending,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	adjustments, err := r.rows2adjustments(rows)
	if err != nil {
		return nil, err
	}
	if len(adjustments) != 1 {
		return nil, ErrAdjustmentNotFound
	}
	return &adjustments[0], nil
}

// ResolveAdjustment transitions a pending adjustment to approved or
// dismissed. Only pending records can be transitioned.
func (r *Repo) ResolveAdjustment(ctx context.Context, adjustmentID int, status AdjustmentStatus) (_ *PendingMacroAdjustment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkin.resolveAdjustment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("adjustment.id", adjustmentID))
	span.SetAttributes(attribute.String("adjustment.status", string(status)))

	rows, err := r.db.Query(
		ctx,
		`UPDATE pending_macro_adjustments
			SET status = $1, updated_at = $2
			WHERE id = $3 AND status = $4
		RETURNING id, user_id, check_in_id, status,
			current_calories, current_protein_g, current_fat_g, current_carbs_g,
			proposed_calories, proposed_protein_g, proposed_fat_g, proposed_carbs_g,
			created_at, updated_at;`,
		status, time.Now(), adjustmentID, AdjustmentPending,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	adjustments, err := r.rows2adjustments(rows)
	if err != nil {
		return nil, err
	}
	if len(adjustments) != 1 {
		return nil, ErrAdjustmentNotFound
	}
	return &adjustments[0], nil
}

// ListClientStatuses returns, per known client, the latest onboarding
// state and the time of the last check-in. Used for the coach's overdue
// overview.
func (r *Repo) ListClientStatuses(ctx context.Context) (_ []ClientCheckInStatus, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkin.listClientStatuses")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT ON (p.user_id)
				p.user_id,
				COALESCE((p.snapshot->>'onboardingCompleted')::boolean, FALSE),
				(SELECT MAX(c.created_at) FROM check_ins c WHERE c.user_id = p.user_id) AS last_check_in
			FROM client_profile p
			ORDER BY p.user_id, p.version DESC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []ClientCheckInStatus
	for rows.Next() {
		var s ClientCheckInStatus
		if err := rows.Scan(&s.UserID, &s.OnboardingCompleted, &s.LastCheckInAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		statuses = append(statuses, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if statuses == nil {
		statuses = make([]ClientCheckInStatus, 0)
	}
	return statuses, nil
}

func (r *Repo) rows2checkIns(rows pgx.Rows) ([]CheckIn, error) {
	var checkIns []CheckIn
	for rows.Next() {
		var c CheckIn
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.WeekNumber,
			&c.WeightKg, &c.WaistCm, &c.AdherenceRating,
			&c.StepsAvg, &c.SleepAvg, &c.Notes,
			&c.ProgressPhotos, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		checkIns = append(checkIns, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if checkIns == nil {
		checkIns = make([]CheckIn, 0)
	}
	return checkIns, nil
}

func (r *Repo) rows2adjustments(rows pgx.Rows) ([]PendingMacroAdjustment, error) {
	var adjustments []PendingMacroAdjustment
	for rows.Next() {
		var a PendingMacroAdjustment
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.CheckInID, &a.Status,
			&a.CurrentCalories, &a.CurrentProteinG, &a.CurrentFatG, &a.CurrentCarbsG,
			&a.ProposedCalories, &a.ProposedProteinG, &a.ProposedFatG, &a.ProposedCarbsG,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		adjustments = append(adjustments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if adjustments == nil {
		adjustments = make([]PendingMacroAdjustment, 0)
	}
	return adjustments, nil
}
