package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"invitelink/configs/configslog"
	"invitelink/models"
	"invitelink/repositories"
)

// RSVPServiceError is the error kind for RSVP operations.
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPNotFound RSVPServiceError = "rsvp not found"
	ErrRSVPInvalid  RSVPServiceError = "invalid rsvp data"
)

// RSVPInput carries a guest submission. Name, email and phone are optional.
type RSVPInput struct {
	Slug     string
	Name     string
	Email    string
	Phone    string
	Response models.RSVPAnswer
}

// IRSVPService validates and records guest responses.
type IRSVPService interface {
	Submit(ctx context.Context, input RSVPInput) (*models.RSVPResponse, error)
	GetBySlug(ctx context.Context, slug string) (*models.RSVPResponse, error)
	List(ctx context.Context) ([]models.RSVPResponse, error)
	ListWithInvitations(ctx context.Context) ([]models.RSVPWithInvitation, error)
}

// RSVPService implements IRSVPService. It reads the invitation store only to
// check existence; it never mutates invitations.
type RSVPService struct {
	repo        repositories.IRSVPRepository
	invitations repositories.IInvitationRepository
}

// NewRSVPService builds the service on the injected repositories.
func NewRSVPService(repo repositories.IRSVPRepository, invitations repositories.IInvitationRepository) IRSVPService {
	return &RSVPService{repo: repo, invitations: invitations}
}

// Submit records or overwrites the response for a slug. Validation failures
// and an unknown slug are rejected before any write; the write itself is a
// single atomic upsert, so a resubmission keeps the original created_at and
// exactly one row ever exists per slug.
func (s *RSVPService) Submit(ctx context.Context, input RSVPInput) (*models.RSVPResponse, error) {
	slugValue := strings.TrimSpace(input.Slug)
	if slugValue == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrRSVPInvalid)
	}
	if !input.Response.Valid() {
		return nil, fmt.Errorf("%w: response must be %q or %q", ErrRSVPInvalid, models.RSVPAnswerYes, models.RSVPAnswerNo)
	}

	if _, err := s.invitations.FindBySlug(ctx, slugValue); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}

	stored, err := s.repo.Upsert(ctx, &models.RSVPResponse{
		Slug:     slugValue,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Response: input.Response,
	})
	if err != nil {
		return nil, err
	}
	configslog.SLog.Infow("rsvp recorded", "slug", stored.Slug, "response", stored.Response)
	return stored, nil
}

// GetBySlug returns the response for a slug.
func (s *RSVPService) GetBySlug(ctx context.Context, slugValue string) (*models.RSVPResponse, error) {
	rsvp, err := s.repo.FindBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRSVPNotFound
		}
		return nil, err
	}
	return rsvp, nil
}

// List returns every response, newest first.
func (s *RSVPService) List(ctx context.Context) ([]models.RSVPResponse, error) {
	return s.repo.FindAll(ctx)
}

// ListWithInvitations returns the joined admin listing.
func (s *RSVPService) ListWithInvitations(ctx context.Context) ([]models.RSVPWithInvitation, error) {
	return s.repo.FindAllWithInvitations(ctx)
}

var _ IRSVPService = (*RSVPService)(nil)
