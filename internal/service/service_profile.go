package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/voy/internal/crypto"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/store"
	"github.com/MKhiriev/voy/internal/validators"
	"github.com/MKhiriev/voy/models"
)

// profileService keeps the government identifiers of the profile encrypted
// at rest with the field cipher, keyed by the owner's user id.
type profileService struct {
	profileRepository store.ProfileRepository
	cipher            crypto.Cipher
	validator         validators.Validator
	logger            *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, cipher crypto.Cipher, validator validators.Validator, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		cipher:            cipher,
		validator:         validator,
		logger:            logger,
	}
}

// GetProfile returns the profile with the protected numbers decrypted. A
// number that cannot be decrypted is shown as the protected placeholder.
func (s *profileService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	profile, err := s.profileRepository.GetProfile(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("failed to get profile")
		return models.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return s.reveal(crypto.WithKeyCache(ctx, crypto.NewKeyCache()), profile), nil
}

// UpdateProfile writes the provided fields. Protected numbers are encrypted
// before they reach the store; an empty number clears it.
func (s *profileService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Profile{}, fmt.Errorf("invalid profile update: %w", err)
	}

	ctx = crypto.WithKeyCache(ctx, crypto.NewKeyCache())
	for _, name := range models.ProtectedNumbers {
		field := update.Number(name)
		if *field == nil {
			continue
		}

		encrypted, err := s.cipher.Encrypt(ctx, **field, update.UserID)
		if err != nil {
			log.Err(err).Str("user_id", update.UserID).Str("field", string(name)).Msg("failed to protect number")
			return models.Profile{}, fmt.Errorf("failed to protect %s: %w", name, err)
		}
		*field = &encrypted
	}

	profile, err := s.profileRepository.UpdateProfile(ctx, update)
	if err != nil {
		log.Err(err).Str("user_id", update.UserID).Msg("failed to update profile")
		return models.Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.reveal(ctx, profile), nil
}

// UpdateNumber sets a single protected number.
func (s *profileService) UpdateNumber(ctx context.Context, userID string, update models.NumberUpdate) (models.Profile, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Profile{}, fmt.Errorf("invalid number update: %w", err)
	}

	profileUpdate := models.ProfileUpdate{UserID: userID}
	value := update.Value
	*profileUpdate.Number(update.Field) = &value

	return s.UpdateProfile(ctx, profileUpdate)
}

// reveal decrypts the protected numbers in place. Callers attach a key cache
// to ctx so that the key is derived once per profile.
func (s *profileService) reveal(ctx context.Context, profile models.Profile) models.Profile {
	for _, name := range models.ProtectedNumbers {
		field := profile.Number(name)
		if *field == nil {
			continue
		}
		plain := s.cipher.Decrypt(ctx, **field, profile.UserID)
		*field = &plain
	}
	return profile
}
