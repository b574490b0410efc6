package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"invitelink/configs/configslog"
	"invitelink/models"
	"invitelink/pkg/slug"
	"invitelink/repositories"

	"go.uber.org/zap"
)

// InvitationServiceError is the error kind for invitation operations.
type InvitationServiceError string

func (e InvitationServiceError) Error() string { return string(e) }

const (
	ErrInvitationNotFound InvitationServiceError = "invitation not found"
	ErrDuplicateSlug      InvitationServiceError = "slug already exists"
	ErrSlugExhausted      InvitationServiceError = "could not allocate a unique slug"
	ErrInvitationInvalid  InvitationServiceError = "invalid invitation data"
)

// slugAttempts bounds the generate-and-check loop. Ten consecutive collisions
// in a ~60M slug space means something is badly wrong; the caller should
// retry the whole operation later.
const slugAttempts = 10

// InvitationInput carries the caller-supplied fields for create and update.
// A nil InviteToParty means the default (true). An empty Slug on create asks
// the service to allocate one.
type InvitationInput struct {
	Name          string
	Pronoun       string
	Message       string
	Slug          string
	InviteToParty *bool
}

// IInvitationService orchestrates slug allocation and invitation persistence.
type IInvitationService interface {
	Create(ctx context.Context, input InvitationInput) (*models.Invitation, error)
	GetBySlug(ctx context.Context, slug string) (*models.Invitation, error)
	GetByID(ctx context.Context, id uint) (*models.Invitation, error)
	// List returns all invitations, or the substring-search result when query
	// is non-empty. Newest-created first either way.
	List(ctx context.Context, query string) ([]models.Invitation, error)
	Update(ctx context.Context, id uint, input InvitationInput) error
	Delete(ctx context.Context, id uint) error
}

// InvitationService implements IInvitationService.
type InvitationService struct {
	repo repositories.IInvitationRepository

	// generateSlug is swappable so tests can force collisions.
	generateSlug func() string
}

// NewInvitationService builds the service on the injected repository.
func NewInvitationService(repo repositories.IInvitationRepository) IInvitationService {
	return &InvitationService{
		repo:         repo,
		generateSlug: slug.Generate,
	}
}

func validateInvitationInput(input InvitationInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvitationInvalid)
	}
	if strings.TrimSpace(input.Pronoun) == "" {
		return fmt.Errorf("%w: pronoun is required", ErrInvitationInvalid)
	}
	if strings.TrimSpace(input.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvitationInvalid)
	}
	return nil
}

func (input InvitationInput) toModel() models.Invitation {
	invitation := models.Invitation{
		Slug:          strings.TrimSpace(input.Slug),
		Name:          input.Name,
		Pronoun:       input.Pronoun,
		Message:       input.Message,
		InviteToParty: true,
	}
	if input.InviteToParty != nil {
		invitation.InviteToParty = *input.InviteToParty
	}
	return invitation
}

// Create inserts a new invitation. When no slug is supplied, candidates are
// generated and pre-checked up to slugAttempts times; the pre-check is an
// optimization only, and the store's unique index remains the authority, so a
// lost race at insert time still comes back as ErrDuplicateSlug.
func (s *InvitationService) Create(ctx context.Context, input InvitationInput) (*models.Invitation, error) {
	if err := validateInvitationInput(input); err != nil {
		return nil, err
	}

	invitation := input.toModel()
	if invitation.Slug == "" {
		allocated, err := s.allocateSlug(ctx)
		if err != nil {
			return nil, err
		}
		invitation.Slug = allocated
	}

	if err := s.repo.Create(ctx, &invitation); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	configslog.SLog.Infow("invitation created", "id", invitation.ID, "slug", invitation.Slug)
	return &invitation, nil
}

// allocateSlug generates candidates until one is absent from the store,
// giving up after slugAttempts consecutive collisions.
func (s *InvitationService) allocateSlug(ctx context.Context) (string, error) {
	for i := 0; i < slugAttempts; i++ {
		candidate := s.generateSlug()
		_, err := s.repo.FindBySlug(ctx, candidate)
		if errors.Is(err, repositories.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		// Occupied; try the next candidate.
	}
	configslog.Log.Warn("slug allocation exhausted", zap.Int("attempts", slugAttempts))
	return "", ErrSlugExhausted
}

// GetBySlug returns the invitation a guest's URL points at.
func (s *InvitationService) GetBySlug(ctx context.Context, slugValue string) (*models.Invitation, error) {
	invitation, err := s.repo.FindBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	return invitation, nil
}

// GetByID returns the invitation for an id.
func (s *InvitationService) GetByID(ctx context.Context, id uint) (*models.Invitation, error) {
	invitation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	return invitation, nil
}

// List returns all invitations or a substring search over name and slug.
func (s *InvitationService) List(ctx context.Context, query string) ([]models.Invitation, error) {
	if query == "" {
		return s.repo.FindAll(ctx)
	}
	return s.repo.Search(ctx, query)
}

// Update overwrites every mutable field, slug included. Renaming onto an
// occupied slug fails with ErrDuplicateSlug and leaves the row unchanged.
func (s *InvitationService) Update(ctx context.Context, id uint, input InvitationInput) error {
	if err := validateInvitationInput(input); err != nil {
		return err
	}
	if strings.TrimSpace(input.Slug) == "" {
		return fmt.Errorf("%w: slug is required on update", ErrInvitationInvalid)
	}

	invitation := input.toModel()
	updated, err := s.repo.Update(ctx, id, &invitation)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return ErrDuplicateSlug
		}
		return err
	}
	if !updated {
		return ErrInvitationNotFound
	}
	configslog.SLog.Infow("invitation updated", "id", id, "slug", invitation.Slug)
	return nil
}

// Delete removes the invitation. The guest's RSVP row, if any, survives as an
// orphan and stays visible in the joined admin listing.
func (s *InvitationService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInvitationNotFound
	}
	configslog.SLog.Infow("invitation deleted", "id", id)
	return nil
}

var _ IInvitationService = (*InvitationService)(nil)
