package service

import (
	"fmt"

	"github.com/MKhiriev/voy/internal/catalog"
	"github.com/MKhiriev/voy/internal/config"
	"github.com/MKhiriev/voy/internal/crypto"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/store"
	"github.com/MKhiriev/voy/internal/utils"
	"github.com/MKhiriev/voy/internal/validators"
)

type Services struct {
	AuthService        AuthService
	ProfileService     ProfileService
	DocumentService    DocumentService
	NoteService        NoteService
	CategoryService    CategoryService
	QuickAccessService QuickAccessService
	ChecklistService   ChecklistService
	AimaService        AimaService
	CatalogService     CatalogService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	visaCatalog, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	validator := validators.NewDomainValidator()
	idGenerator := utils.NewUUIDGenerator()
	cipher := crypto.NewFieldCipher()

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, storages.LoginAttempts, validator, idGenerator,
			cfg.App, cfg.Limiter, logger),
		ProfileService:     NewProfileService(storages.ProfileRepository, cipher, validator, logger),
		DocumentService:    NewDocumentService(storages.DocumentRepository, storages.FileStorage, validator, idGenerator, logger),
		NoteService:        NewNoteService(storages.NoteRepository, validator, idGenerator, logger),
		CategoryService:    NewCategoryService(storages.CategoryRepository, validator, idGenerator, logger),
		QuickAccessService: NewQuickAccessService(storages.QuickAccessRepository, storages.DocumentRepository, validator, logger),
		ChecklistService:   NewChecklistService(storages.ChecklistRepository, validator, idGenerator, logger),
		AimaService:        NewAimaService(storages.AimaRepository, cipher, validator, idGenerator, logger),
		CatalogService:     NewCatalogService(visaCatalog, logger),
		AppInfoService:     appInfoService,
	}, nil
}
