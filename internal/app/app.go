// Package app implements the application layer for modres.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/modres/internal/adapters/linear"
	"go.trai.ch/modres/internal/adapters/telemetry"
	"go.trai.ch/modres/internal/core/domain"
	"go.trai.ch/modres/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.Resolver
	logger       ports.Logger
	tracer       ports.Tracer
	watcher      ports.Watcher
	stdout       io.Writer
	renderer     ports.Renderer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.Resolver,
	log ports.Logger,
	tracer ports.Tracer,
	watcher ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		logger:       log,
		tracer:       tracer,
		watcher:      watcher,
		stdout:       os.Stdout,
	}
}

// WithOutput sets the writer results are rendered to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithRenderer replaces the renderer chosen from ResolveOptions.Mode.
func (a *App) WithRenderer(r ports.Renderer) *App {
	a.renderer = r
	return a
}

// ResolveOptions configuration for the Resolve and Watch methods.
type ResolveOptions struct {
	// From is the directory specifiers are resolved from. Empty means the working directory.
	From string
	// Extra is layered on top of the loaded configuration.
	Extra          domain.ExtraOptions
	StrictManifest bool
	NoParentRetry  bool
	Mode           linear.Mode
	Verbose        bool
	Trace          bool
}

// verbositySetter is implemented by loggers whose level can change at runtime.
type verbositySetter interface {
	SetVerbose(enable bool)
}

// jsonSetter is implemented by loggers that can switch to structured output.
type jsonSetter interface {
	SetJSON(enable bool)
}

// Resolve resolves every specifier from opts.From and renders the results in input order.
// It fails with domain.ErrResolutionFailed, joined with each cause, when any specifier failed.
func (a *App) Resolve(ctx context.Context, specifiers []string, opts ResolveOptions) error {
	if len(specifiers) == 0 {
		return domain.ErrNoSpecifiers
	}

	from, err := a.prepare(opts)
	if err != nil {
		return err
	}

	shutdown := a.startTracing(ctx, opts)
	defer shutdown()

	return a.report(a.ResolveAll(ctx, from, specifiers), opts)
}

// ResolveAll resolves specifiers concurrently from the absolute directory from.
// Results keep the order of specifiers; failures are carried in each Resolution.
func (a *App) ResolveAll(ctx context.Context, from string, specifiers []string) []domain.Resolution {
	results := make([]domain.Resolution, len(specifiers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, specifier := range specifiers {
		g.Go(func() error {
			results[i] = a.resolveOne(ctx, domain.ResolutionRequest{Specifier: specifier, From: from})
			return nil
		})
	}

	_ = g.Wait()
	return results
}

func (a *App) resolveOne(ctx context.Context, req domain.ResolutionRequest) domain.Resolution {
	_, span := a.tracer.Start(ctx, "resolve")
	defer span.End()

	kind := a.resolver.Classify(req.Specifier)
	span.SetAttribute("specifier", req.Specifier)
	span.SetAttribute("from", req.From)
	span.SetAttribute("kind", string(kind))

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		return domain.NewResolution(req, kind, "", err)
	}

	path, err := a.resolver.Resolve(req.Specifier, req.From)
	if err != nil {
		span.RecordError(err)
		return domain.NewResolution(req, kind, "", err)
	}

	span.SetAttribute("path", path)
	return domain.NewResolution(req, kind, path, nil)
}

// Watch resolves specifiers once and again after every batch of changes under the project root,
// until ctx is done.
func (a *App) Watch(ctx context.Context, specifiers []string, opts ResolveOptions) error {
	if len(specifiers) == 0 {
		return domain.ErrNoSpecifiers
	}

	from, err := a.prepare(opts)
	if err != nil {
		return err
	}

	shutdown := a.startTracing(ctx, opts)
	defer shutdown()

	root, err := a.configLoader.DiscoverRoot(from)
	if err != nil {
		return zerr.Wrap(err, "failed to discover project root")
	}

	if err := a.watcher.Start(ctx, root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "root", root)
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info("watching " + root)

	if err := a.reportWatched(ctx, from, specifiers, opts); err != nil {
		return err
	}

	for batch := range a.watcher.Events() {
		if !affectsResolution(batch) {
			a.logger.Debug("change ignored", "paths", len(batch))
			continue
		}
		a.logger.Debug("change detected", "paths", len(batch))

		// Configuration may have changed with the batch; reloading also starts a fresh cache.
		if err := a.configure(from, opts); err != nil {
			a.logger.Error(err)
			continue
		}

		if err := a.reportWatched(ctx, from, specifiers, opts); err != nil {
			return err
		}
	}

	return nil
}

// affectsResolution reports whether batch can change a resolution result.
// Content writes only matter for manifests and the configuration file.
func affectsResolution(batch ports.WatchBatch) bool {
	for _, e := range batch {
		if e.Op != ports.OpWrite {
			return true
		}
		switch filepath.Base(e.Path) {
		case domain.ManifestName, domain.ConfigFileName:
			return true
		}
	}
	return false
}

// reportWatched renders one round of results. Failed resolutions do not end the watch.
func (a *App) reportWatched(ctx context.Context, from string, specifiers []string, opts ResolveOptions) error {
	err := a.report(a.ResolveAll(ctx, from, specifiers), opts)
	if err != nil && !errors.Is(err, domain.ErrResolutionFailed) {
		return err
	}
	return nil
}

// prepare applies logging options, determines the absolute starting directory
// and configures the resolver for it.
func (a *App) prepare(opts ResolveOptions) (string, error) {
	if v, ok := a.logger.(verbositySetter); ok {
		v.SetVerbose(opts.Verbose || opts.Trace)
	}
	if j, ok := a.logger.(jsonSetter); ok {
		j.SetJSON(opts.Mode == linear.ModeJSON)
	}

	from := opts.From
	if from == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrWorkingDirUnavailable.Error())
		}
		from = wd
	}

	from, err := filepath.Abs(from)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrWorkingDirUnavailable.Error()), "from", opts.From)
	}

	if err := a.configure(from, opts); err != nil {
		return "", err
	}
	return from, nil
}

// configure loads the configuration for from, layers the command line options on top
// and hands the result to the resolver.
func (a *App) configure(from string, opts ResolveOptions) error {
	options, err := a.configLoader.Load(from)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	options = options.Extend(opts.Extra)
	if opts.StrictManifest {
		options.ManifestPolicy = domain.ManifestStrict
	}
	if opts.NoParentRetry {
		options.RetryFromParent = false
	}

	a.resolver.Reconfigure(options)
	return nil
}

// startTracing installs a span processor that logs finished spans when tracing is requested.
func (a *App) startTracing(ctx context.Context, opts ResolveOptions) func() {
	if !opts.Trace {
		return func() {}
	}
	tp := telemetry.Install(telemetry.NewLogProcessor(a.logger))
	return func() {
		_ = tp.Shutdown(context.WithoutCancel(ctx))
	}
}

// report renders results and collects their failures.
func (a *App) report(results []domain.Resolution, opts ResolveOptions) error {
	renderer := a.renderer
	if renderer == nil {
		renderer = linear.NewRenderer(a.stdout, opts.Mode)
	}

	if err := renderer.Render(results); err != nil {
		return zerr.Wrap(err, "failed to render results")
	}

	errs := []error{domain.ErrResolutionFailed}
	for _, r := range results {
		if r.OK() {
			continue
		}
		// Plain output carries paths only, so failures go to the log.
		if opts.Mode == linear.ModePlain {
			a.logger.Error(r.Err)
		}
		errs = append(errs, r.Err)
	}

	if len(errs) > 1 {
		return errors.Join(errs...)
	}
	return nil
}
