package service

import (
	"fmt"

	"github.com/MKhiriev/skillscope/internal/config"
	"github.com/MKhiriev/skillscope/internal/logger"
	"github.com/MKhiriev/skillscope/internal/store"
	"github.com/MKhiriev/skillscope/models"
)

type ClientServices struct {
	AccountService    AccountService
	AuthFlow          *AuthFlow
	PreferenceService PreferenceService
	AppInfoService    AppInfoService
}

func NewClientServices(storages *store.ClientStorages, cfg config.ClientApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (*ClientServices, error) {
	hasher, err := NewPasswordHasher(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	accounts := NewAccountService(storages.Credentials, storages.Session, hasher, cfg.MinPasswordLength, logger)

	return &ClientServices{
		AccountService:    accounts,
		AuthFlow:          NewAuthFlow(accounts, logger),
		PreferenceService: NewPreferenceService(storages.Preferences),
		AppInfoService:    NewAppInfoService(buildInfo, logger),
	}, nil
}
