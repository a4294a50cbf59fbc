package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandevgo/banterbot/internal/core"
)

func newTestDB(t *testing.T) *HistoryRepo {
	t.Helper()
	db, err := NewDB(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewHistoryRepo(db)
}

func TestHistoryRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := NewDB(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	repo := NewHistoryRepo(db)

	require.NoError(t, repo.AddMessage(ctx, "s1", core.ScoredMessage{
		Role: core.RoleUser, Content: "first question", Importance: 7, Turn: 1,
	}))
	require.NoError(t, repo.AddMessage(ctx, "s1", core.ScoredMessage{
		Role: core.RoleAssistant, Content: "first answer", Importance: 7, Turn: 1,
	}))
	require.NoError(t, repo.AddMessage(ctx, "other", core.ScoredMessage{
		Role: core.RoleUser, Content: "unrelated", Importance: 1, Turn: 1,
	}))

	msgs, err := repo.GetMessages(ctx, "s1", 40)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	require.Equal(t, core.RoleUser, msgs[0].Role)
	require.Equal(t, "first question", msgs[0].Content)
	require.Equal(t, 7, msgs[0].Importance)
	require.Equal(t, int64(1), msgs[0].Turn)
	require.Equal(t, core.RoleAssistant, msgs[1].Role)
	require.Less(t, msgs[0].Sequence, msgs[1].Sequence)
}

func TestHistoryRepo_LimitKeepsNewest(t *testing.T) {
	ctx := context.Background()
	repo := newTestDB(t)

	for i := int64(1); i <= 5; i++ {
		require.NoError(t, repo.AddMessage(ctx, "s1", core.ScoredMessage{
			Role: core.RoleUser, Content: "msg", Importance: int(i), Turn: i,
		}))
	}

	msgs, err := repo.GetMessages(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	// Chronological order, newest two only.
	require.Equal(t, int64(4), msgs[0].Turn)
	require.Equal(t, int64(5), msgs[1].Turn)
}

func TestHistoryRepo_Clear(t *testing.T) {
	ctx := context.Background()
	repo := newTestDB(t)

	require.NoError(t, repo.AddMessage(ctx, "s1", core.ScoredMessage{Role: core.RoleUser, Content: "x", Importance: 1, Turn: 1}))
	require.NoError(t, repo.AddMessage(ctx, "s2", core.ScoredMessage{Role: core.RoleUser, Content: "y", Importance: 1, Turn: 1}))

	require.NoError(t, repo.Clear(ctx, "s1"))

	msgs, err := repo.GetMessages(ctx, "s1", 40)
	require.NoError(t, err)
	require.Empty(t, msgs)

	kept, err := repo.GetMessages(ctx, "s2", 40)
	require.NoError(t, err)
	require.Len(t, kept, 1)
}

func TestProfilesRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := NewDB(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	repo := NewProfilesRepo(db)

	// Missing profile reads as (nil, nil), not an error.
	missing, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	require.Nil(t, missing)

	profile := core.NewProfile()
	profile.TurnCount = 3
	profile.Skills = []string{"I'm a senior engineer"}
	profile.Themes["coding"] = 2
	require.NoError(t, repo.Save(ctx, "s1", profile))

	loaded, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 3, loaded.TurnCount)
	require.Equal(t, []string{"I'm a senior engineer"}, loaded.Skills)
	require.Equal(t, 2, loaded.Themes["coding"])

	// Save again upserts instead of duplicating.
	profile.TurnCount = 4
	require.NoError(t, repo.Save(ctx, "s1", profile))

	updated, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, 4, updated.TurnCount)
}

func TestProfilesRepo_Clear(t *testing.T) {
	ctx := context.Background()
	db, err := NewDB(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	repo := NewProfilesRepo(db)
	require.NoError(t, repo.Save(ctx, "s1", core.NewProfile()))
	require.NoError(t, repo.Clear(ctx, "s1"))

	loaded, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	require.Nil(t, loaded)
}
