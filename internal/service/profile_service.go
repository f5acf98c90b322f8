package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/Careerly/internal/auth"
	"github.com/lshigami/Careerly/internal/dto"
	"github.com/lshigami/Careerly/internal/model"
	"github.com/lshigami/Careerly/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProfileService manages the career profile used to personalise prompts.
type ProfileService interface {
	GetProfile(ctx context.Context, caller auth.Caller) (*dto.ProfileResponseDTO, error)
	UpdateProfile(ctx context.Context, caller auth.Caller, req dto.UpdateProfileDTO) (*dto.ProfileResponseDTO, error)
}

type profileService struct {
	userRepo repository.UserRepository
}

func NewProfileService(userRepo repository.UserRepository) ProfileService {
	return &profileService{userRepo: userRepo}
}

// GetProfile returns the stored profile, or an empty one for a caller who
// never saved it.
func (s *profileService) GetProfile(ctx context.Context, caller auth.Caller) (*dto.ProfileResponseDTO, error) {
	if !caller.Authenticated() {
		return nil, ErrAuthenticationRequired
	}
	user, err := s.userRepo.FindByID(ctx, caller.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.ProfileResponseDTO{ID: caller.UserID, Skills: []string{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return toProfileResponse(user), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, caller auth.Caller, req dto.UpdateProfileDTO) (*dto.ProfileResponseDTO, error) {
	if !caller.Authenticated() {
		return nil, ErrAuthenticationRequired
	}

	skills := make([]string, 0, len(req.Skills))
	for _, skill := range req.Skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	user := model.User{
		ID:         caller.UserID,
		Industry:   req.Industry,
		Experience: req.Experience,
		Skills:     datatypes.NewJSONType(skills),
	}
	if err := s.userRepo.Upsert(ctx, &user); err != nil {
		log.Error().Err(err).Str("userID", caller.UserID).Msg("UpdateProfile: Failed to save profile")
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	saved, err := s.userRepo.FindByID(ctx, caller.UserID)
	if err != nil {
		log.Warn().Err(err).Str("userID", caller.UserID).Msg("UpdateProfile: Reload failed, answering from request")
		return toProfileResponse(&user), nil
	}
	return toProfileResponse(saved), nil
}

func toProfileResponse(u *model.User) *dto.ProfileResponseDTO {
	resp := &dto.ProfileResponseDTO{
		ID:         u.ID,
		Industry:   u.Industry,
		Experience: u.Experience,
		Skills:     u.Skills.Data(),
	}
	if resp.Skills == nil {
		resp.Skills = []string{}
	}
	if !u.CreatedAt.IsZero() {
		created, updated := u.CreatedAt, u.UpdatedAt
		resp.CreatedAt, resp.UpdatedAt = &created, &updated
	}
	return resp
}
