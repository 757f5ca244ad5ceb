package providers

import (
	"github.com/samber/do/v2"

	"github.com/tilboerner/pico-multilanguage/internal/config"
	"github.com/tilboerner/pico-multilanguage/internal/logger"
	"github.com/tilboerner/pico-multilanguage/internal/service"
)

// ProvideSiteService provides the page pipeline service.
func ProvideSiteService(i do.Injector) (*service.SiteService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSiteService(cfg.Site.DefaultLanguage, log.Logger), nil
}
