package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/skillscope/internal/logger"
	"github.com/MKhiriev/skillscope/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		info:   info,
		logger: logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.BuildVersion()
}

// About renders the one-line build summary shown in the dashboard footer.
func (s *appInfoService) About(ctx context.Context) string {
	return fmt.Sprintf("skillscope %s (commit %s, built %s)",
		s.info.BuildVersion(), s.info.BuildCommit(), s.info.BuildDate())
}
