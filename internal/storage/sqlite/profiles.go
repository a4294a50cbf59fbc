package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sandevgo/banterbot/internal/core"
)

// ProfilesRepo persists the per-session user profile as a JSON blob; the
// schema stays opaque to SQL so profile fields can evolve without
// migrations.
type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

func (p *ProfilesRepo) Save(ctx context.Context, sessionID string, profile *core.Profile) error {
	state, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	query := `INSERT INTO profiles (session_id, state, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(session_id) DO UPDATE SET state = excluded.state, updated_at = CURRENT_TIMESTAMP`
	if _, err := p.db.ExecContext(ctx, query, sessionID, string(state)); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// Load returns (nil, nil) when no profile has been saved for the session.
func (p *ProfilesRepo) Load(ctx context.Context, sessionID string) (*core.Profile, error) {
	var state string
	query := `SELECT state FROM profiles WHERE session_id = ?`
	err := p.db.QueryRowContext(ctx, query, sessionID).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile := core.NewProfile()
	if err := json.Unmarshal([]byte(state), profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return profile, nil
}

func (p *ProfilesRepo) Clear(ctx context.Context, sessionID string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM profiles WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}
	return nil
}
