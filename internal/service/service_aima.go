package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/voy/internal/crypto"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/store"
	"github.com/MKhiriev/voy/internal/validators"
	"github.com/MKhiriev/voy/models"
)

// aimaService tracks the AIMA process. Every change loads the row, applies
// the change and saves the whole process back. Protocol numbers are stored
// through the field cipher.
type aimaService struct {
	aimaRepository store.AimaRepository
	cipher         crypto.Cipher
	validator      validators.Validator
	idGenerator    IDGenerator
	logger         *logger.Logger
}

func NewAimaService(
	aimaRepository store.AimaRepository,
	cipher crypto.Cipher,
	validator validators.Validator,
	idGenerator IDGenerator,
	logger *logger.Logger,
) AimaService {
	return &aimaService{
		aimaRepository: aimaRepository,
		cipher:         cipher,
		validator:      validator,
		idGenerator:    idGenerator,
		logger:         logger,
	}
}

func (s *aimaService) GetProcess(ctx context.Context, userID string) (*models.AimaProcess, error) {
	process, err := s.aimaRepository.GetAimaProcess(ctx, userID)
	if errors.Is(err, store.ErrAimaProcessNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get aima process: %w", err)
	}

	process = s.reveal(crypto.WithKeyCache(ctx, crypto.NewKeyCache()), process)
	return &process, nil
}

// UpdateProcess applies the provided fields, creating the process on the
// first write. An empty process type clears it.
func (s *aimaService) UpdateProcess(ctx context.Context, update models.AimaProcessUpdate) (models.AimaProcess, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.AimaProcess{}, fmt.Errorf("invalid aima process update: %w", err)
	}

	ctx = crypto.WithKeyCache(ctx, crypto.NewKeyCache())

	process, err := s.loadOrNew(ctx, update.UserID)
	if err != nil {
		return models.AimaProcess{}, err
	}

	if update.ProcessType != nil {
		process.ProcessType = nilIfBlank(*update.ProcessType)
	}
	if update.CompletedSteps != nil {
		process.CompletedSteps = slices.Clone(*update.CompletedSteps)
	}
	if update.ImportantDates != nil {
		process.ImportantDates = slices.Clone(*update.ImportantDates)
	}
	if update.Protocols != nil {
		protocols, protectErr := s.protect(ctx, update.UserID, *update.Protocols...)
		if protectErr != nil {
			return models.AimaProcess{}, protectErr
		}
		process.Protocols = protocols
	}
	if update.Notes != nil {
		process.Notes = nilIfBlank(*update.Notes)
	}

	return s.save(ctx, process)
}

// SelectProcessType starts the process over with processType.
func (s *aimaService) SelectProcessType(ctx context.Context, userID, processType string) (models.AimaProcess, error) {
	if err := s.validator.Validate(ctx, models.AimaProcessTypeSelect{ProcessType: processType}); err != nil {
		return models.AimaProcess{}, fmt.Errorf("invalid process type: %w", err)
	}

	ctx = crypto.WithKeyCache(ctx, crypto.NewKeyCache())

	process, err := s.loadOrNew(ctx, userID)
	if err != nil {
		return models.AimaProcess{}, err
	}

	process.ProcessType = nilIfBlank(processType)
	process.CompletedSteps = []string{}
	process.ImportantDates = []models.ImportantDate{}
	process.Protocols = []string{}

	return s.save(ctx, process)
}

// ToggleStep marks stepID completed, or not completed when it already was.
func (s *aimaService) ToggleStep(ctx context.Context, userID, stepID string) (models.AimaProcess, error) {
	if err := s.validator.Validate(ctx, models.AimaStepToggle{StepID: stepID}); err != nil {
		return models.AimaProcess{}, fmt.Errorf("invalid step: %w", err)
	}

	ctx = crypto.WithKeyCache(ctx, crypto.NewKeyCache())

	process, err := s.load(ctx, userID)
	if err != nil {
		return models.AimaProcess{}, err
	}

	stepID = strings.TrimSpace(stepID)
	if i := slices.Index(process.CompletedSteps, stepID); i >= 0 {
		process.CompletedSteps = slices.Delete(process.CompletedSteps, i, i+1)
	} else {
		process.CompletedSteps = append(process.CompletedSteps, stepID)
	}

	return s.save(ctx, process)
}

func (s *aimaService) AddImportantDate(ctx context.Context, userID string, date models.ImportantDate) (models.AimaProcess, error) {
	date.Label = strings.TrimSpace(date.Label)
	if err := s.validator.Validate(ctx, date); err != nil {
		return models.AimaProcess{}, fmt.Errorf("invalid important date: %w", err)
	}

	ctx = crypto.WithKeyCache(ctx, crypto.NewKeyCache())

	process, err := s.load(ctx, userID)
	if err != nil {
		return models.AimaProcess{}, err
	}

	process.ImportantDates = append(process.ImportantDates, date)
	return s.save(ctx, process)
}

func (s *aimaService) AddProtocol(ctx context.Context, userID, protocol string) (models.AimaProcess, error) {
	if err := s.validator.Validate(ctx, models.AimaProtocol{Protocol: protocol}); err != nil {
		return models.AimaProcess{}, fmt.Errorf("invalid protocol: %w", err)
	}

	ctx = crypto.WithKeyCache(ctx, crypto.NewKeyCache())

	process, err := s.load(ctx, userID)
	if err != nil {
		return models.AimaProcess{}, err
	}

	encrypted, err := s.protect(ctx, userID, strings.TrimSpace(protocol))
	if err != nil {
		return models.AimaProcess{}, err
	}

	process.Protocols = append(process.Protocols, encrypted...)
	return s.save(ctx, process)
}

// ClearProcess keeps the row but drops the process type and every list.
func (s *aimaService) ClearProcess(ctx context.Context, userID string) (models.AimaProcess, error) {
	ctx = crypto.WithKeyCache(ctx, crypto.NewKeyCache())

	process, err := s.load(ctx, userID)
	if err != nil {
		return models.AimaProcess{}, err
	}

	process.ProcessType = nil
	process.CompletedSteps = []string{}
	process.ImportantDates = []models.ImportantDate{}
	process.Protocols = []string{}

	return s.save(ctx, process)
}

func (s *aimaService) load(ctx context.Context, userID string) (models.AimaProcess, error) {
	process, err := s.aimaRepository.GetAimaProcess(ctx, userID)
	if err != nil {
		return models.AimaProcess{}, fmt.Errorf("failed to get aima process: %w", err)
	}
	return process, nil
}

func (s *aimaService) loadOrNew(ctx context.Context, userID string) (models.AimaProcess, error) {
	process, err := s.aimaRepository.GetAimaProcess(ctx, userID)
	if errors.Is(err, store.ErrAimaProcessNotFound) {
		return models.AimaProcess{
			ID:             s.idGenerator.Generate(),
			UserID:         userID,
			CompletedSteps: []string{},
			ImportantDates: []models.ImportantDate{},
			Protocols:      []string{},
		}, nil
	}
	if err != nil {
		return models.AimaProcess{}, fmt.Errorf("failed to get aima process: %w", err)
	}
	return process, nil
}

func (s *aimaService) save(ctx context.Context, process models.AimaProcess) (models.AimaProcess, error) {
	saved, err := s.aimaRepository.SaveAimaProcess(ctx, process)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", process.UserID).Msg("failed to save aima process")
		return models.AimaProcess{}, fmt.Errorf("failed to save aima process: %w", err)
	}
	return s.reveal(ctx, saved), nil
}

func (s *aimaService) protect(ctx context.Context, userID string, protocols ...string) ([]string, error) {
	encrypted := make([]string, 0, len(protocols))
	for _, protocol := range protocols {
		value, err := s.cipher.Encrypt(ctx, protocol, userID)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("failed to protect protocol")
			return nil, fmt.Errorf("failed to protect protocol: %w", err)
		}
		encrypted = append(encrypted, value)
	}
	return encrypted, nil
}

func (s *aimaService) reveal(ctx context.Context, process models.AimaProcess) models.AimaProcess {
	protocols := make([]string, 0, len(process.Protocols))
	for _, protocol := range process.Protocols {
		protocols = append(protocols, s.cipher.Decrypt(ctx, protocol, process.UserID))
	}
	process.Protocols = protocols
	return process
}

func nilIfBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
