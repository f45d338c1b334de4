package app

import (
	"context"
	"slices"

	"go.trai.ch/pkgver/internal/core/domain"
	"go.trai.ch/zerr"
)

// hookFunc handles one lifecycle event.
type hookFunc func(ctx context.Context, a *App, overrides domain.ConfigOverrides) error

// hooks maps every lifecycle event pkgver subscribes to onto its handler.
// Installs and updates both end with the same regeneration.
var hooks = map[domain.LifecycleEvent]hookFunc{
	domain.EventPostInstall: dumpVersionsHook,
	domain.EventPostUpdate:  dumpVersionsHook,
}

func dumpVersionsHook(ctx context.Context, a *App, overrides domain.ConfigOverrides) error {
	_, err := a.DumpVersions(ctx, overrides)
	return err
}

// Events returns the lifecycle events with a registered hook, sorted by name.
func (a *App) Events() []domain.LifecycleEvent {
	events := make([]domain.LifecycleEvent, 0, len(hooks))
	for event := range hooks {
		events = append(events, event)
	}
	slices.Sort(events)
	return events
}

// HandleEvent runs the hook registered for event.
func (a *App) HandleEvent(ctx context.Context, event string, overrides domain.ConfigOverrides) error {
	hook, ok := hooks[domain.LifecycleEvent(event)]
	if !ok {
		return zerr.With(domain.ErrUnknownEvent, "event", event)
	}
	return hook(ctx, a, overrides)
}
