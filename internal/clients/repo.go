package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/leancoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProfileNotFound = errors.New("client profile not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// CreateSnapshot appends a new onboarding version for the user. The version is
// assigned in the insert statement itself, so two concurrent submissions can
// never read the same max and write duplicate versions.
func (r *Repo) CreateSnapshot(ctx context.Context, profile Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.createSnapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", profile.UserID))

	snapshotJson, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("marshal profile snapshot: %w", err)
	}

	profile.CreatedAt = time.Now()
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO client_profile (user_id, version, snapshot, created_at)
			VALUES (
				$1,
				(SELECT COALESCE(MAX(version), 0) + 1 FROM client_profile WHERE user_id = $1),
				$2, $3
			)
		RETURNING id, version;`,
		profile.UserID, snapshotJson, profile.CreatedAt,
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
	if err := rows.Scan(&profile.ID, &profile.Version); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("profile.version", profile.Version))
	return &profile, nil
}

// GetLatest returns the current (highest version) onboarding snapshot.
func (r *Repo) GetLatest(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.getLatest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, version, snapshot, created_at
			FROM client_profile
			WHERE user_id = $1
			ORDER BY version DESC
			LIMIT 1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}
	if !rows.Next() {
		return nil, ErrProfileNotFound
	}

	var id, version int
	var snapshotBytes []byte
	var createdAt time.Time
	if err := rows.Scan(&id, &version, &snapshotBytes, &createdAt); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	var profile Profile
	if err := json.Unmarshal(snapshotBytes, &profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile snapshot %d: %w", id, err)
	}

	profile.ID = id
	profile.UserID = userID
	profile.Version = version
	profile.CreatedAt = createdAt
	return &profile, nil
}
