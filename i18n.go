package jsonschema

import (
	"embed"
	"sync"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

var (
	i18nBundleOnce sync.Once
	i18nBundle     *i18n.I18n
	i18nBundleErr  error
)

// I18n returns the package-wide internationalization bundle, loading the
// embedded "en" and "zh-Hans" translations for every ValidationError code
// on first use.
func I18n() (*i18n.I18n, error) {
	i18nBundleOnce.Do(func() {
		bundle := i18n.NewBundle(
			i18n.WithDefaultLocale("en"),
			i18n.WithLocales("en", "zh-Hans"),
		)
		i18nBundleErr = bundle.LoadFS(localesFS, "locales/*.json")
		i18nBundle = bundle
	})
	return i18nBundle, i18nBundleErr
}

// localizerAdapter adapts *i18n.Localizer to this package's Localizer
// interface so ValidationError.Localize doesn't import go-i18n directly.
type localizerAdapter struct {
	loc *i18n.Localizer
}

func (a localizerAdapter) Get(key string, vars map[string]any) string {
	return a.loc.Get(key, i18n.Vars(vars))
}

// NewLocalizer returns a Localizer for the given locale ("en", "zh-Hans"),
// suitable for passing to ValidationError.Localize.
func NewLocalizer(locale string) (Localizer, error) {
	bundle, err := I18n()
	if err != nil {
		return nil, err
	}
	return localizerAdapter{loc: bundle.NewLocalizer(locale)}, nil
}
