package cli

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/daylist/internal/app"
	"github.com/llehouerou/daylist/internal/audio"
	"github.com/llehouerou/daylist/internal/catalog"
	"github.com/llehouerou/daylist/internal/config"
	"github.com/llehouerou/daylist/internal/dispatch"
	"github.com/llehouerou/daylist/internal/keymap"
	"github.com/llehouerou/daylist/internal/logpane"
	"github.com/llehouerou/daylist/internal/player"
	"github.com/llehouerou/daylist/internal/state"
	"github.com/llehouerou/daylist/internal/stderr"
	"github.com/llehouerou/daylist/internal/ui"
)

// errNoCatalog is returned when no catalog URL is configured.
var errNoCatalog = errors.New("catalog.url is not configured")

// run starts the worker and the TUI and returns when the user quits.
func run(ctx context.Context, cfg *config.Config) error {
	if !cfg.HasCatalog() {
		return errNoCatalog
	}

	logger, logs, logFile, err := logpane.Setup(logpane.Options{
		Level: cfg.Log.Level,
		Lines: cfg.Log.Lines,
		File:  cfg.Log.File,
	})
	if err != nil {
		return err
	}
	defer logFile.Close()

	if err := stderr.Start(logger); err != nil {
		logger.WithError(err).Warn("Failed to capture stderr")
	}
	defer stderr.Stop()

	index, err := openIndex()
	if err != nil {
		return err
	}
	defer index.Close()

	cache := catalog.NewCache(afero.NewOsFs(), cfg.Cache.Dir, cfg.Cache.Format, index, logger)
	client := catalog.NewClient(catalog.Options{
		BaseURL: cfg.Catalog.URL,
		Token:   cfg.Catalog.Token,
		Timeout: cfg.Catalog.Timeout,
	}, cache)

	device := audio.NewSpeaker()
	defer device.Close()

	queue := dispatch.New(cfg.Queue.Size)
	shared := app.NewShared(app.New(player.New(device), queue, keymap.Default(), logger))
	worker := app.NewWorker(shared, client, cache, logger)
	defer shared.Do((*app.App).Close)

	// Quitting the UI cancels ctx, which aborts any download in flight.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				stderr.WriteOriginal(fmt.Sprintf("worker panic: %v\n%s", r, debug.Stack()))
				err = fmt.Errorf("worker panic: %v", r)
			}
		}()
		err = queue.Run(gctx, worker.Handle)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		defer cancel()
		defer queue.Close()

		p := tea.NewProgram(ui.New(shared, logs, cfg.UI.Tick), tea.WithAltScreen(), tea.WithContext(gctx))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run ui: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func openIndex() (*state.Manager, error) {
	path, err := config.IndexPath()
	if err != nil {
		return nil, fmt.Errorf("locate index: %w", err)
	}
	index, err := state.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	return index, nil
}
