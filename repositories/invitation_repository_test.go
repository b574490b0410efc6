package repositories_test

import (
	"context"
	"testing"
	"time"

	"invitelink/models"
	"invitelink/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvitationCreateRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewInvitationRepository(db)
	ctx := context.Background()

	inv := &models.Invitation{
		Slug:          "ab12c",
		Name:          "小美",
		Pronoun:       "她",
		Message:       "來玩",
		InviteToParty: true,
	}
	require.NoError(t, repo.Create(ctx, inv))
	assert.NotZero(t, inv.ID)

	got, err := repo.FindBySlug(ctx, "ab12c")
	require.NoError(t, err)
	assert.Equal(t, inv.ID, got.ID)
	assert.Equal(t, "小美", got.Name)
	assert.Equal(t, "她", got.Pronoun)
	assert.Equal(t, "來玩", got.Message)
	assert.True(t, got.InviteToParty)
	assert.False(t, got.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, got.Slug, byID.Slug)
}

func TestInvitationFindAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewInvitationRepository(db)
	ctx := context.Background()

	_, err := repo.FindBySlug(ctx, "nope1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestInvitationDuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewInvitationRepository(db)
	ctx := context.Background()

	first := &models.Invitation{Slug: "taken", Name: "First", Pronoun: "she", Message: "hi", InviteToParty: true}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.Invitation{Slug: "taken", Name: "Second", Pronoun: "he", Message: "yo", InviteToParty: false}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)

	// The first row is unaffected and remains the only one.
	got, err := repo.FindBySlug(ctx, "taken")
	require.NoError(t, err)
	assert.Equal(t, "First", got.Name)

	var count int64
	require.NoError(t, db.Model(&models.Invitation{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestInvitationFindAllNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewInvitationRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	seedInvitation(t, db, "old01", "Oldest", base)
	seedInvitation(t, db, "mid01", "Middle", base.Add(time.Hour))
	seedInvitation(t, db, "new01", "Newest", base.Add(2*time.Hour))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "new01", all[0].Slug)
	assert.Equal(t, "mid01", all[1].Slug)
	assert.Equal(t, "old01", all[2].Slug)
}

func TestInvitationSearch(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewInvitationRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	seedInvitation(t, db, "ab12c", "Anna", base)               // matches on name
	seedInvitation(t, db, "ann99", "Bob", base.Add(time.Hour)) // matches on slug
	seedInvitation(t, db, "xyz12", "Ann", base.Add(2*time.Hour))
	seedInvitation(t, db, "xy9zz", "Zed", base.Add(3*time.Hour)) // matches nothing

	got, err := repo.Search(ctx, "ann")
	require.NoError(t, err)
	require.Len(t, got, 3)

	slugs := []string{got[0].Slug, got[1].Slug, got[2].Slug}
	assert.Equal(t, []string{"xyz12", "ann99", "ab12c"}, slugs, "newest-created first")
}

func TestInvitationUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewInvitationRepository(db)
	ctx := context.Background()

	inv := seedInvitation(t, db, "abcde", "Before", time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))

	updated, err := repo.Update(ctx, inv.ID, &models.Invitation{
		Slug:          "fghij",
		Name:          "After",
		Pronoun:       "he",
		Message:       "changed",
		InviteToParty: false,
	})
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := repo.FindByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "fghij", got.Slug)
	assert.Equal(t, "After", got.Name)
	assert.Equal(t, "he", got.Pronoun)
	assert.Equal(t, "changed", got.Message)
	assert.False(t, got.InviteToParty)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	// The old slug is free again.
	_, err = repo.FindBySlug(ctx, "abcde")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestInvitationUpdateMissingRow(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewInvitationRepository(db)

	updated, err := repo.Update(context.Background(), 999, &models.Invitation{
		Slug: "fghij", Name: "X", Pronoun: "x", Message: "x",
	})
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestInvitationUpdateSlugCollision(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewInvitationRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	seedInvitation(t, db, "first", "First", base)
	second := seedInvitation(t, db, "secnd", "Second", base.Add(time.Hour))

	_, err := repo.Update(ctx, second.ID, &models.Invitation{
		Slug: "first", Name: "Second", Pronoun: "he", Message: "hi",
	})
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)

	// Nothing changed on the losing side.
	got, err := repo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "secnd", got.Slug)
}

func TestInvitationDelete(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewInvitationRepository(db)
	ctx := context.Background()

	inv := seedInvitation(t, db, "bye01", "Leaving", time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))

	deleted, err := repo.Delete(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.FindByID(ctx, inv.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	deleted, err = repo.Delete(ctx, inv.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestInvitationDeleteFreesSlug(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewInvitationRepository(db)
	ctx := context.Background()

	inv := seedInvitation(t, db, "reuse", "First Tenant", time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC))
	_, err := repo.Delete(ctx, inv.ID)
	require.NoError(t, err)

	err = repo.Create(ctx, &models.Invitation{Slug: "reuse", Name: "Second Tenant", Pronoun: "she", Message: "hi", InviteToParty: true})
	assert.NoError(t, err, "slug uniqueness holds over live rows only")
}
