// Package app implements the application layer for pkgver.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"go.trai.ch/pkgver/internal/adapters/detector"
	"go.trai.ch/pkgver/internal/adapters/fs"
	"go.trai.ch/pkgver/internal/adapters/logger"
	"go.trai.ch/pkgver/internal/adapters/telemetry"
	"go.trai.ch/pkgver/internal/adapters/watcher"
	"go.trai.ch/pkgver/internal/core/domain"
	"go.trai.ch/pkgver/internal/core/ports"
	"go.trai.ch/pkgver/internal/engine/installpath"
	"go.trai.ch/pkgver/internal/engine/versions"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Span names of the generation pipeline stages.
const (
	SpanReadLock      = "read_lock"
	SpanBuildVersions = "build_versions"
	SpanRender        = "render"
	SpanWrite         = "write"
)

// App represents the main application logic.
type App struct {
	configLoader   ports.ConfigLoader
	lockReader     ports.LockReader
	emitter        ports.Emitter
	writer         ports.ArtifactWriter
	logger         ports.Logger
	tracer         ports.Tracer
	watcher        ports.Watcher
	workDir        func() (string, error)
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reader ports.LockReader,
	emitter ports.Emitter,
	writer ports.ArtifactWriter,
	log ports.Logger,
	tracer ports.Tracer,
	w ports.Watcher,
) *App {
	return &App{
		configLoader:   loader,
		lockReader:     reader,
		emitter:        emitter,
		writer:         writer,
		logger:         log,
		tracer:         tracer,
		watcher:        w,
		workDir:        os.Getwd,
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithWorkDir makes the App resolve configuration from dir instead of the
// process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = func() (string, error) { return dir, nil }
	return a
}

// WithDebounceWindow sets how long Watch waits for a burst of changes to settle.
func (a *App) WithDebounceWindow(d time.Duration) *App {
	a.debounceWindow = d
	return a
}

// DumpVersions regenerates the version file.
//
// Projects that do not depend on the coordinator package directly get
// OutcomeNone: the target directory is not inspected and nothing is written.
func (a *App) DumpVersions(ctx context.Context, overrides domain.ConfigOverrides) (domain.WriteOutcome, error) {
	cfg, err := a.loadConfig(overrides)
	if err != nil {
		return domain.OutcomeNone, err
	}

	vm, err := a.resolveVersions(ctx, cfg)
	if err != nil {
		return domain.OutcomeNone, err
	}

	if !versions.ShouldGenerate(vm) {
		return domain.OutcomeNone, nil
	}

	path := artifactPath(cfg)
	content, err := a.render(ctx, cfg, vm)
	if err != nil {
		return domain.OutcomeNone, err
	}

	return a.write(ctx, path, content)
}

// Check renders the version file and compares it with the one on disk.
// It returns the artifact path when the file is up to date.
func (a *App) Check(ctx context.Context, overrides domain.ConfigOverrides) (string, error) {
	cfg, err := a.loadConfig(overrides)
	if err != nil {
		return "", err
	}

	vm, err := a.resolveVersions(ctx, cfg)
	if err != nil {
		return "", err
	}

	if !versions.ShouldGenerate(vm) {
		return "", domain.ErrNotDirectDependency
	}

	path := artifactPath(cfg)
	content, err := a.render(ctx, cfg, vm)
	if err != nil {
		return "", err
	}

	digest, ok, err := a.writer.Digest(path)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", zerr.With(domain.ErrArtifactMissing, "path", path)
	}
	if digest != fs.ContentDigest(content) {
		return "", zerr.With(domain.ErrArtifactStale, "path", path)
	}

	return path, nil
}

// Versions returns the version map the version file would be generated from.
func (a *App) Versions(ctx context.Context, overrides domain.ConfigOverrides) (*domain.VersionMap, error) {
	cfg, err := a.loadConfig(overrides)
	if err != nil {
		return nil, err
	}
	return a.resolveVersions(ctx, cfg)
}

// Lookup returns the version string recorded for packageName.
func (a *App) Lookup(ctx context.Context, overrides domain.ConfigOverrides, packageName string) (string, error) {
	vm, err := a.Versions(ctx, overrides)
	if err != nil {
		return "", err
	}

	version, ok := vm.Get(packageName)
	if !ok {
		return "", zerr.With(domain.ErrPackageNotInstalled, "package", packageName)
	}
	return version, nil
}

// Watch regenerates the version file whenever the lock file or the config
// file changes. It blocks until ctx is done.
//
// Regeneration failures are logged and do not stop watching.
func (a *App) Watch(ctx context.Context, overrides domain.ConfigOverrides) error {
	cfg, err := a.loadConfig(overrides)
	if err != nil {
		return err
	}

	files := []string{cfg.LockFile}
	if cfg.Source != "" {
		files = append(files, cfg.Source)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var mu sync.Mutex
	regenerate := func(paths []string) {
		mu.Lock()
		defer mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		if len(paths) > 0 {
			a.logger.Info(fmt.Sprintf("change detected in %s", strings.Join(paths, ", ")))
		}
		if _, err := a.DumpVersions(ctx, overrides); err != nil {
			a.logger.Error(err)
		}
	}

	regenerate(nil)

	if err := a.watcher.Start(ctx, files); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("watching %s", strings.Join(files, ", ")))

	debouncer := watcher.NewDebouncer(a.debounceWindow, regenerate)

	g, gctx := errgroup.WithContext(ctx)

	// Event pump. It ends when the watcher closes its event stream.
	g.Go(func() error {
		defer cancel()
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		debouncer.Flush()
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return a.watcher.Stop()
	})

	return g.Wait()
}

// ConfigureLogging selects the log format from a --log-format value.
// "auto" picks pretty output on a terminal and plain output otherwise.
func (a *App) ConfigureLogging(format string) error {
	mode, err := detector.ResolveMode(detector.DetectEnvironment(), format)
	if err != nil {
		return err
	}

	l, ok := a.logger.(interface{ SetFormat(f logger.Format) })
	if !ok {
		return nil
	}

	switch mode {
	case detector.ModeJSON:
		l.SetFormat(logger.FormatJSON)
	case detector.ModePlain:
		l.SetFormat(logger.FormatPlain)
	default:
		l.SetFormat(logger.FormatPretty)
	}
	return nil
}

// EnableTracing reports the duration of every pipeline stage through the logger.
// The returned function shuts the tracer provider down.
func (a *App) EnableTracing() func(context.Context) error {
	return telemetry.Install(a.logger)
}

func (a *App) loadConfig(overrides domain.ConfigOverrides) (*domain.Config, error) {
	cwd, err := a.workDir()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	cfg, err := a.configLoader.Load(cwd, overrides.ConfigPath)
	if err != nil {
		return nil, err
	}

	overrides.Apply(cfg)

	if cfg.Root.Name == "" {
		return nil, zerr.With(domain.ErrMissingRootName, "field", "root")
	}
	return cfg, nil
}

func (a *App) resolveVersions(ctx context.Context, cfg *domain.Config) (*domain.VersionMap, error) {
	_, span := a.tracer.Start(ctx, SpanReadLock)
	snapshot, err := a.lockReader.Read(cfg.LockFile)
	if err != nil {
		span.RecordError(err)
		span.End()
		return nil, err
	}
	span.SetAttribute("package_count", snapshot.Len())
	span.End()

	_, span = a.tracer.Start(ctx, SpanBuildVersions)
	vm := versions.Build(snapshot, &cfg.Root)
	span.SetAttribute("package_count", vm.Len())
	span.End()

	return vm, nil
}

func (a *App) render(ctx context.Context, cfg *domain.Config, vm *domain.VersionMap) ([]byte, error) {
	_, span := a.tracer.Start(ctx, SpanRender)
	defer span.End()

	content, err := a.emitter.Render(cfg.Root.Name, vm)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return content, nil
}

func (a *App) write(ctx context.Context, path string, content []byte) (domain.WriteOutcome, error) {
	_, span := a.tracer.Start(ctx, SpanWrite)
	defer span.End()

	span.SetAttribute("artifact_path", path)
	outcome, err := a.writer.Write(path, content)
	if err != nil {
		span.RecordError(err)
		return domain.OutcomeNone, err
	}
	span.SetAttribute("outcome", outcome)
	return outcome, nil
}

func artifactPath(cfg *domain.Config) string {
	return installpath.ArtifactPath(installpath.Resolve(cfg.VendorDir, &cfg.Root))
}
