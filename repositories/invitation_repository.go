package repositories

import (
	"context"
	"errors"

	"invitelink/configs/configslog"
	"invitelink/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IInvitationRepository is the persistence contract for invitations.
type IInvitationRepository interface {
	Create(ctx context.Context, invitation *models.Invitation) error
	FindBySlug(ctx context.Context, slug string) (*models.Invitation, error)
	FindByID(ctx context.Context, id uint) (*models.Invitation, error)
	FindAll(ctx context.Context) ([]models.Invitation, error)
	Search(ctx context.Context, query string) ([]models.Invitation, error)
	Update(ctx context.Context, id uint, invitation *models.Invitation) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

// InvitationRepository implements IInvitationRepository on GORM.
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository builds a repository on the injected handle. Tests
// pass an in-memory instance; production passes the shared connection.
func NewInvitationRepository(db *gorm.DB) IInvitationRepository {
	return &InvitationRepository{db: db}
}

// Create inserts a new invitation. A slug collision surfaces as
// ErrDuplicateKey via the unique index; nothing is partially written.
func (r *InvitationRepository) Create(ctx context.Context, invitation *models.Invitation) error {
	if invitation == nil || invitation.Slug == "" {
		return errors.New("invitation must carry a slug")
	}
	err := translateError(r.db.WithContext(ctx).Create(invitation).Error)
	if err != nil && !errors.Is(err, ErrDuplicateKey) {
		configslog.Log.Error("InvitationRepository.Create: DB error", zap.String("slug", invitation.Slug), zap.Error(err))
	}
	return err
}

// FindBySlug returns the invitation for a slug, or ErrNotFound.
func (r *InvitationRepository) FindBySlug(ctx context.Context, slug string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InvitationRepository.FindBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &invitation, nil
}

// FindByID returns the invitation for an id, or ErrNotFound.
func (r *InvitationRepository) FindByID(ctx context.Context, id uint) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.WithContext(ctx).First(&invitation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("InvitationRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &invitation, nil
}

// FindAll returns every invitation, newest-created first.
func (r *InvitationRepository) FindAll(ctx context.Context) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&invitations).Error
	if err != nil {
		configslog.Log.Error("InvitationRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return invitations, nil
}

// Search returns invitations whose name or slug contains the query as a
// substring under the engine's default LIKE semantics, newest-created first.
func (r *InvitationRepository) Search(ctx context.Context, query string) ([]models.Invitation, error) {
	var invitations []models.Invitation
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("name LIKE ? OR slug LIKE ?", pattern, pattern).
		Order("created_at DESC, id DESC").
		Find(&invitations).Error
	if err != nil {
		configslog.Log.Error("InvitationRepository.Search: DB error", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	return invitations, nil
}

// Update overwrites every mutable field of the row matching id and refreshes
// updated_at. It reports false (not an error) when no row matches, and
// ErrDuplicateKey when the new slug collides with a different row.
func (r *InvitationRepository) Update(ctx context.Context, id uint, invitation *models.Invitation) (bool, error) {
	if invitation == nil || invitation.Slug == "" {
		return false, errors.New("invitation must carry a slug")
	}
	// A map keeps zero values (invite_to_party = false) from being skipped.
	result := r.db.WithContext(ctx).Model(&models.Invitation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":            invitation.Name,
			"pronoun":         invitation.Pronoun,
			"message":         invitation.Message,
			"slug":            invitation.Slug,
			"invite_to_party": invitation.InviteToParty,
		})
	if result.Error != nil {
		err := translateError(result.Error)
		if !errors.Is(err, ErrDuplicateKey) {
			configslog.Log.Error("InvitationRepository.Update: DB error", zap.Uint("id", id), zap.Error(err))
		}
		return false, err
	}
	return result.RowsAffected > 0, nil
}

// Delete hard-deletes the row matching id, reporting false when no row
// matched. RSVP rows for the slug are deliberately left alone.
func (r *InvitationRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Invitation{}, id)
	if result.Error != nil {
		configslog.Log.Error("InvitationRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

var _ IInvitationRepository = (*InvitationRepository)(nil)
