package services

import (
	"context"
	"testing"
	"time"

	"invitelink/models"
	"invitelink/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRSVPService(t *testing.T) (IRSVPService, IInvitationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	invitationRepo := repositories.NewInvitationRepository(db)
	rsvpRepo := repositories.NewRSVPRepository(db)
	return NewRSVPService(rsvpRepo, invitationRepo), NewInvitationService(invitationRepo), db
}

func TestSubmitUnknownSlug(t *testing.T) {
	rsvps, _, db := newRSVPService(t)

	_, err := rsvps.Submit(context.Background(), RSVPInput{Slug: "ghost", Response: models.RSVPAnswerYes})
	assert.ErrorIs(t, err, ErrInvitationNotFound)

	var count int64
	require.NoError(t, db.Model(&models.RSVPResponse{}).Count(&count).Error)
	assert.Zero(t, count, "a rejected submission writes nothing")
}

func TestSubmitInvalidResponse(t *testing.T) {
	rsvps, invitations, db := newRSVPService(t)
	ctx := context.Background()

	_, err := invitations.Create(ctx, InvitationInput{Name: "Anna", Pronoun: "she", Message: "hi", Slug: "ab12c"})
	require.NoError(t, err)

	for _, response := range []string{"", "maybe", "YES", "oui"} {
		_, err := rsvps.Submit(ctx, RSVPInput{Slug: "ab12c", Response: models.RSVPAnswer(response)})
		assert.ErrorIs(t, err, ErrRSVPInvalid, "response %q must be rejected", response)
	}

	_, err = rsvps.Submit(ctx, RSVPInput{Response: models.RSVPAnswerYes})
	assert.ErrorIs(t, err, ErrRSVPInvalid, "slug is required")

	var count int64
	require.NoError(t, db.Model(&models.RSVPResponse{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitThenResubmit(t *testing.T) {
	rsvps, invitations, db := newRSVPService(t)
	ctx := context.Background()

	created, err := invitations.Create(ctx, InvitationInput{Name: "小美", Pronoun: "她", Message: "來玩"})
	require.NoError(t, err)

	first, err := rsvps.Submit(ctx, RSVPInput{Slug: created.Slug, Name: "小美", Response: models.RSVPAnswerYes})
	require.NoError(t, err)
	assert.Equal(t, models.RSVPAnswerYes, first.Response)

	time.Sleep(20 * time.Millisecond)
	second, err := rsvps.Submit(ctx, RSVPInput{Slug: created.Slug, Name: "小美", Response: models.RSVPAnswerNo})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "resubmission overwrites in place")
	assert.Equal(t, models.RSVPAnswerNo, second.Response)
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt))
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	var count int64
	require.NoError(t, db.Model(&models.RSVPResponse{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := rsvps.GetBySlug(ctx, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, models.RSVPAnswerNo, got.Response)
}

func TestGetBySlugAbsent(t *testing.T) {
	rsvps, _, _ := newRSVPService(t)
	_, err := rsvps.GetBySlug(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrRSVPNotFound)
}

func TestListWithInvitationsAfterDelete(t *testing.T) {
	rsvps, invitations, _ := newRSVPService(t)
	ctx := context.Background()

	created, err := invitations.Create(ctx, InvitationInput{Name: "Anna", Pronoun: "she", Message: "hi", Slug: "ab12c"})
	require.NoError(t, err)

	_, err = rsvps.Submit(ctx, RSVPInput{Slug: "ab12c", Response: models.RSVPAnswerYes})
	require.NoError(t, err)

	require.NoError(t, invitations.Delete(ctx, created.ID))

	rows, err := rsvps.ListWithInvitations(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1, "the orphaned response is still listed")
	assert.Equal(t, "ab12c", rows[0].Slug)
	assert.Nil(t, rows[0].InvitationName)
	assert.Nil(t, rows[0].InvitationPronoun)
}
