// Package app wires the site's services into one injector. The server and the
// CLI both resolve what they need from it.
package app

import (
	"log/slog"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"

	"github.com/nfrund/backstory/internal/config"
	"github.com/nfrund/backstory/internal/contact"
	"github.com/nfrund/backstory/internal/content"
	"github.com/nfrund/backstory/internal/domain"
	"github.com/nfrund/backstory/internal/pubsub"
	"github.com/nfrund/backstory/internal/relay"
	"github.com/nfrund/backstory/internal/rendering"
)

// Dependencies are the inputs the injector cannot build itself.
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger
	// Fs is where the content file is read from. Nil means the OS filesystem.
	Fs afero.Fs
	// Relay overrides the configured relay, for tests and dry runs.
	Relay domain.Relay
}

// New returns an injector with every service registered lazily.
func New(deps Dependencies) do.Injector {
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	i := do.New()
	do.ProvideValue(i, deps.Config)
	do.ProvideValue[config.Provider](i, deps.Config)
	do.ProvideValue(i, deps.Logger)
	do.ProvideValue(i, deps.Fs)

	do.Provide(i, provideContent)
	do.Provide(i, provideBus)
	do.Provide(i, provideRenderer)
	if deps.Relay != nil {
		do.ProvideValue(i, deps.Relay)
	} else {
		do.Provide(i, provideRelay)
	}
	do.Provide(i, provideContact)
	return i
}

func provideContent(i do.Injector) (*content.Store, error) {
	cfg := do.MustInvoke[config.Provider](i)
	logger := do.MustInvoke[*slog.Logger](i)
	return content.NewStore(do.MustInvoke[afero.Fs](i), cfg.GetContentPath(), logger.With("component", "content"))
}

func provideBus(do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(), nil
}

func provideRenderer(do.Injector) (rendering.Renderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideRelay(i do.Injector) (domain.Relay, error) {
	return relay.New(do.MustInvoke[config.Provider](i), do.MustInvoke[*slog.Logger](i))
}

func provideContact(i do.Injector) (*contact.Service, error) {
	cfg := do.MustInvoke[config.Provider](i)
	r, err := do.Invoke[domain.Relay](i)
	if err != nil {
		return nil, err
	}
	bus, err := do.Invoke[*pubsub.WatermillBridge](i)
	if err != nil {
		return nil, err
	}
	return contact.NewService(r, cfg.GetRelayProvider(),
		contact.Templates{Inquiry: cfg.GetRelayTemplateInquiry(), Quick: cfg.GetRelayTemplateQuick()},
		bus,
		contact.WithLogger(do.MustInvoke[*slog.Logger](i).With("component", "contact")),
	), nil
}
