package di

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilboerner/pico-multilanguage/internal/config"
	"github.com/tilboerner/pico-multilanguage/internal/service"
)

func TestNewContainer_ResolvesServices(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "error")

	injector := NewContainer([]string{
		"-env-file=" + filepath.Join(t.TempDir(), "missing.env"),
		"-default-language=de",
	})

	cfg, err := do.Invoke[*config.Config](injector)
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Site.DefaultLanguage)

	site, err := do.Invoke[*service.SiteService](injector)
	require.NoError(t, err)
	assert.Equal(t, "de", site.DefaultLanguage())
}

func TestBootstrap_InvalidConfig(t *testing.T) {
	t.Setenv("ENV", "")

	injector := NewContainer([]string{
		"-env-file=" + filepath.Join(t.TempDir(), "missing.env"),
		"-env=nowhere",
	})

	assert.Error(t, Bootstrap(injector))
}

func TestBootstrap_ProviderErrorIsReturned(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "error")

	injector := NewContainer([]string{
		"-env-file=" + filepath.Join(t.TempDir(), "missing.env"),
	})
	do.Override(injector, func(do.Injector) (*service.SiteService, error) {
		return nil, errors.New("site service unavailable")
	})

	var err error
	require.NotPanics(t, func() { err = Bootstrap(injector) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "site service unavailable")
}
