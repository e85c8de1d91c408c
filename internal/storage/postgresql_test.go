package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindora/mindora/internal/models"
)

func strPtr(s string) *string { return &s }

func TestStorage_RegisterUser(t *testing.T) {
	storage := setupTestDatabase(t)
	ctx := context.Background()

	id, err := storage.RegisterUser(ctx, models.User{Username: "alice", Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	assert.Positive(t, id)

	tests := []struct {
		name string
		user models.User
	}{
		{name: "same username", user: models.User{Username: "alice", Email: "other@x.com", PasswordHash: "h"}},
		{name: "same email", user: models.User{Username: "bob", Email: "a@x.com", PasswordHash: "h"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := storage.RegisterUser(ctx, tt.user)
			require.ErrorIs(t, err, models.ErrDuplicateUser)
		})
	}

	var count int
	require.NoError(t, storage.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestStorage_UserLookup(t *testing.T) {
	storage := setupTestDatabase(t)
	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	id := factory.CreateUser(t, "alice", "a@x.com")

	exists, err := storage.UserExists(ctx, "alice", "new@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = storage.UserExists(ctx, "new", "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = storage.UserExists(ctx, "new", "new@x.com")
	require.NoError(t, err)
	assert.False(t, exists)

	for _, login := range []string{"alice", "a@x.com"} {
		u, err := storage.GetUserByLogin(ctx, login)
		require.NoError(t, err)
		assert.Equal(t, id, u.ID)
		assert.Equal(t, "alice", u.Username)
		assert.Equal(t, "hash", u.PasswordHash)
	}

	_, err = storage.GetUserByLogin(ctx, "nobody")
	require.ErrorIs(t, err, models.ErrNotFound)

	u, err := storage.GetUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)

	_, err = storage.GetUser(ctx, id+100)
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestStorage_MoodLifecycle(t *testing.T) {
	storage := setupTestDatabase(t)
	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	alice := factory.CreateUser(t, "alice", "a@x.com")
	bob := factory.CreateUser(t, "bob", "b@x.com")

	id, err := storage.CreateMood(ctx, alice, models.MoodInput{
		Mood: 4, Energy: 3, Note: strPtr("ok"), Tags: []string{"work", "sleep"},
	})
	require.NoError(t, err)

	moods, err := storage.ListMoods(ctx, alice, 30)
	require.NoError(t, err)
	require.Len(t, moods, 1)
	assert.Equal(t, id, moods[0].ID)
	assert.Equal(t, alice, moods[0].UserID)
	assert.Equal(t, 4, moods[0].Mood)
	assert.Equal(t, 3, moods[0].Energy)
	require.NotNil(t, moods[0].Note)
	assert.Equal(t, "ok", *moods[0].Note)
	assert.Equal(t, []string{"work", "sleep"}, moods[0].Tags)

	t.Run("other user cannot see, update or delete", func(t *testing.T) {
		bobMoods, err := storage.ListMoods(ctx, bob, 30)
		require.NoError(t, err)
		assert.Empty(t, bobMoods)

		err = storage.UpdateMood(ctx, bob, id, models.MoodInput{Mood: 1, Energy: 1})
		require.ErrorIs(t, err, models.ErrNotFound)

		err = storage.RemoveMood(ctx, bob, id)
		require.ErrorIs(t, err, models.ErrNotFound)

		moods, err := storage.ListMoods(ctx, alice, 30)
		require.NoError(t, err)
		require.Len(t, moods, 1)
		assert.Equal(t, 4, moods[0].Mood)
	})

	t.Run("update is a full replace", func(t *testing.T) {
		err := storage.UpdateMood(ctx, alice, id, models.MoodInput{Mood: 2, Energy: 5})
		require.NoError(t, err)

		moods, err := storage.ListMoods(ctx, alice, 30)
		require.NoError(t, err)
		require.Len(t, moods, 1)
		assert.Equal(t, 2, moods[0].Mood)
		assert.Equal(t, 5, moods[0].Energy)
		assert.Nil(t, moods[0].Note)
		assert.Nil(t, moods[0].Tags)
	})

	t.Run("missing id", func(t *testing.T) {
		require.ErrorIs(t, storage.UpdateMood(ctx, alice, id+100, models.MoodInput{Mood: 1, Energy: 1}), models.ErrNotFound)
		require.ErrorIs(t, storage.RemoveMood(ctx, alice, id+100), models.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, storage.RemoveMood(ctx, alice, id))
		moods, err := storage.ListMoods(ctx, alice, 30)
		require.NoError(t, err)
		assert.Empty(t, moods)
	})
}

func TestStorage_ListMoods_LimitAndOrder(t *testing.T) {
	storage := setupTestDatabase(t)
	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	alice := factory.CreateUser(t, "alice", "a@x.com")

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := range 35 {
		factory.CreateMoodAt(t, alice, i%5+1, 3, base.Add(time.Duration(i)*time.Hour))
	}

	moods, err := storage.ListMoods(ctx, alice, 30)
	require.NoError(t, err)
	require.Len(t, moods, 30)
	assert.True(t, moods[0].CreatedAt.Equal(base.Add(34*time.Hour)))
	for i := 1; i < len(moods); i++ {
		assert.True(t, moods[i-1].CreatedAt.After(moods[i].CreatedAt), "moods must be newest first")
	}
}

func TestStorage_JournalLifecycle(t *testing.T) {
	storage := setupTestDatabase(t)
	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	alice := factory.CreateUser(t, "alice", "a@x.com")
	bob := factory.CreateUser(t, "bob", "b@x.com")

	moodID, err := storage.CreateMood(ctx, alice, models.MoodInput{Mood: 3, Energy: 3})
	require.NoError(t, err)

	id, err := storage.CreateJournalEntry(ctx, alice, models.JournalInput{
		Title: strPtr("day one"), Content: "wrote things", MoodID: &moodID,
	})
	require.NoError(t, err)

	entries, err := storage.ListJournalEntries(ctx, alice, 50)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "day one", *entries[0].Title)
	assert.Equal(t, "wrote things", entries[0].Content)
	assert.Equal(t, moodID, *entries[0].MoodID)

	require.ErrorIs(t, storage.UpdateJournalEntry(ctx, bob, id, models.JournalInput{Content: "x"}), models.ErrNotFound)
	require.ErrorIs(t, storage.RemoveJournalEntry(ctx, bob, id), models.ErrNotFound)

	t.Run("mood reference may dangle", func(t *testing.T) {
		require.NoError(t, storage.RemoveMood(ctx, alice, moodID))

		entries, err := storage.ListJournalEntries(ctx, alice, 50)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.NotNil(t, entries[0].MoodID)
		assert.Equal(t, moodID, *entries[0].MoodID)
	})

	t.Run("update replaces optional fields", func(t *testing.T) {
		require.NoError(t, storage.UpdateJournalEntry(ctx, alice, id, models.JournalInput{Content: "rewritten"}))

		entries, err := storage.ListJournalEntries(ctx, alice, 50)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Nil(t, entries[0].Title)
		assert.Nil(t, entries[0].MoodID)
		assert.Equal(t, "rewritten", entries[0].Content)
	})

	require.NoError(t, storage.RemoveJournalEntry(ctx, alice, id))
	entries, err = storage.ListJournalEntries(ctx, alice, 50)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStorage_ListJournalEntries_Limit(t *testing.T) {
	storage := setupTestDatabase(t)
	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	alice := factory.CreateUser(t, "alice", "a@x.com")

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := range 55 {
		factory.CreateJournalAt(t, alice, "entry", base.Add(time.Duration(i)*time.Minute))
	}

	entries, err := storage.ListJournalEntries(ctx, alice, 50)
	require.NoError(t, err)
	require.Len(t, entries, 50)
	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].CreatedAt.After(entries[i].CreatedAt))
	}
}

func TestStorage_MoodStats(t *testing.T) {
	storage := setupTestDatabase(t)
	ctx := context.Background()
	factory := NewTestDataFactory(storage)
	alice := factory.CreateUser(t, "alice", "a@x.com")
	bob := factory.CreateUser(t, "bob", "b@x.com")

	now := time.Now().UTC()
	day := func(daysAgo int, hour int) time.Time {
		d := now.AddDate(0, 0, -daysAgo)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
	}

	factory.CreateMoodAt(t, alice, 2, 4, day(3, 9))
	factory.CreateMoodAt(t, alice, 4, 2, day(3, 18))
	factory.CreateMoodAt(t, alice, 5, 5, day(2, 10))
	factory.CreateMoodAt(t, alice, 1, 3, day(1, 8))
	factory.CreateMoodAt(t, alice, 3, 1, day(1, 9))
	factory.CreateMoodAt(t, alice, 5, 2, day(1, 10))
	// вне окна
	factory.CreateMoodAt(t, alice, 1, 1, day(20, 10))
	// чужая запись
	factory.CreateMoodAt(t, bob, 1, 1, day(2, 10))

	since := day(7, 0)
	stats, err := storage.MoodStats(ctx, alice, since)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	assert.Equal(t, day(3, 0).Format("2006-01-02"), stats[0].Date)
	assert.Equal(t, 2, stats[0].Count)
	assert.InDelta(t, 3.0, stats[0].AvgMood, 1e-9)
	assert.InDelta(t, 3.0, stats[0].AvgEnergy, 1e-9)

	assert.Equal(t, day(2, 0).Format("2006-01-02"), stats[1].Date)
	assert.Equal(t, 1, stats[1].Count)
	assert.InDelta(t, 5.0, stats[1].AvgMood, 1e-9)

	assert.Equal(t, day(1, 0).Format("2006-01-02"), stats[2].Date)
	assert.Equal(t, 3, stats[2].Count)
	assert.InDelta(t, 3.0, stats[2].AvgMood, 1e-9)
	assert.InDelta(t, 2.0, stats[2].AvgEnergy, 1e-9)

	empty, err := storage.MoodStats(ctx, bob, now.Add(time.Hour))
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestStorage_Articles(t *testing.T) {
	storage := setupTestDatabase(t)
	ctx := context.Background()

	count, err := storage.CountArticles(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	err = storage.InsertArticles(ctx, []models.Article{
		{Title: "Breathing", Content: "4-7-8", Category: strPtr("Relaxation")},
		{Title: "Sleep", Content: "7-9 hours", Category: strPtr("Lifestyle")},
		{Title: "Meditation", Content: "5 minutes", Category: strPtr("Relaxation")},
		{Title: "Untagged", Content: "no category"},
	})
	require.NoError(t, err)

	count, err = storage.CountArticles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	all, err := storage.ListArticles(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "Untagged", all[0].Title)
	assert.Nil(t, all[0].Category)

	relax, err := storage.ListArticles(ctx, "Relaxation")
	require.NoError(t, err)
	require.Len(t, relax, 2)
	for _, a := range relax {
		assert.Equal(t, "Relaxation", *a.Category)
	}

	none, err := storage.ListArticles(ctx, "Unknown")
	require.NoError(t, err)
	assert.Empty(t, none)

	categories, err := storage.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lifestyle", "Relaxation"}, categories)
}

func TestStorage_CanceledContext(t *testing.T) {
	storage := setupTestDatabase(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.ListMoods(ctx, 1, 30)
	require.ErrorIs(t, err, context.Canceled)

	err = storage.RemoveJournalEntry(ctx, 1, 1)
	require.ErrorIs(t, err, context.Canceled)
}
