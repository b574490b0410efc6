package repositories

import (
	"context"
	"errors"

	"invitelink/configs/configslog"
	"invitelink/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IRSVPRepository is the persistence contract for guest responses.
type IRSVPRepository interface {
	// Upsert atomically inserts the response or, when a row for the slug
	// already exists, overwrites its guest fields in place. It returns the
	// stored row.
	Upsert(ctx context.Context, rsvp *models.RSVPResponse) (*models.RSVPResponse, error)
	FindBySlug(ctx context.Context, slug string) (*models.RSVPResponse, error)
	FindAll(ctx context.Context) ([]models.RSVPResponse, error)
	FindAllWithInvitations(ctx context.Context) ([]models.RSVPWithInvitation, error)
}

// RSVPRepository implements IRSVPRepository on GORM.
type RSVPRepository struct {
	db *gorm.DB
}

// NewRSVPRepository builds a repository on the injected handle.
func NewRSVPRepository(db *gorm.DB) IRSVPRepository {
	return &RSVPRepository{db: db}
}

// Upsert runs a single INSERT ... ON CONFLICT(slug) DO UPDATE. Two concurrent
// submissions for the same slug cannot both insert: the conflict target
// resolves the race inside the engine, so this is never decomposed into a
// read followed by a conditional write. created_at survives the conflict
// branch untouched; updated_at takes the attempted insert's timestamp.
func (r *RSVPRepository) Upsert(ctx context.Context, rsvp *models.RSVPResponse) (*models.RSVPResponse, error) {
	if rsvp == nil || rsvp.Slug == "" {
		return nil, errors.New("rsvp must carry a slug")
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "phone", "response", "updated_at"}),
	}).Create(rsvp).Error
	if err != nil {
		configslog.Log.Error("RSVPRepository.Upsert: DB error", zap.String("slug", rsvp.Slug), zap.Error(err))
		return nil, err
	}
	// Reload: on the conflict path the in-memory struct carries neither the
	// existing row's id nor its original created_at.
	return r.FindBySlug(ctx, rsvp.Slug)
}

// FindBySlug returns the response for a slug, or ErrNotFound.
func (r *RSVPRepository) FindBySlug(ctx context.Context, slug string) (*models.RSVPResponse, error) {
	var rsvp models.RSVPResponse
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&rsvp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RSVPRepository.FindBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &rsvp, nil
}

// FindAll returns every response, newest first.
func (r *RSVPRepository) FindAll(ctx context.Context) ([]models.RSVPResponse, error) {
	var rsvps []models.RSVPResponse
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&rsvps).Error
	if err != nil {
		configslog.Log.Error("RSVPRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return rsvps, nil
}

// FindAllWithInvitations returns every response left-joined with its
// invitation's name and pronoun, newest first. Responses whose invitation has
// been deleted are still included, with nil invitation fields.
func (r *RSVPRepository) FindAllWithInvitations(ctx context.Context) ([]models.RSVPWithInvitation, error) {
	var rows []models.RSVPWithInvitation
	err := r.db.WithContext(ctx).
		Table("rsvp_responses").
		Select("rsvp_responses.id, rsvp_responses.slug, rsvp_responses.name, rsvp_responses.email, " +
			"rsvp_responses.phone, rsvp_responses.response, rsvp_responses.created_at, rsvp_responses.updated_at, " +
			"invitations.name AS invitation_name, invitations.pronoun AS invitation_pronoun").
		Joins("LEFT JOIN invitations ON invitations.slug = rsvp_responses.slug").
		Order("rsvp_responses.created_at DESC, rsvp_responses.id DESC").
		Scan(&rows).Error
	if err != nil {
		configslog.Log.Error("RSVPRepository.FindAllWithInvitations: DB error", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

var _ IRSVPRepository = (*RSVPRepository)(nil)
