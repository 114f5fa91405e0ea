// Package dstats wires the pipeline together: read the data package, compute
// the statistics, write the report, and optionally keep serving it.
package dstats

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/calpyte/dstats/internal/archive"
	"github.com/calpyte/dstats/internal/dstats/conf"
	httpsvc "github.com/calpyte/dstats/internal/dstats/http"
	"github.com/calpyte/dstats/internal/model"
	"github.com/calpyte/dstats/internal/report"
	"github.com/calpyte/dstats/internal/stats"
	"github.com/calpyte/dstats/pkg/util"
)

type App struct {
	conf        *conf.Config
	archivePath string
	outputPath  string

	svc *httpsvc.Service

	// recomputeMu serializes watch-triggered recomputes; overlapping
	// debounce timers may fire while a prior pass is still running.
	recomputeMu sync.Mutex
	fingerprint uint64
}

func New(cfg *conf.Config, archivePath string) *App {
	output := cfg.Output
	if output == "" {
		output = util.DefaultOutputPath(archivePath)
	}
	return &App{
		conf:        cfg,
		archivePath: archivePath,
		outputPath:  output,
	}
}

// Run executes one full pipeline pass and, in serve mode, keeps the process
// alive serving the result.
func (a *App) Run() error {
	export, st, err := a.compute()
	if err != nil {
		return err
	}

	if err := a.writeReport(st, &export.User); err != nil {
		return err
	}

	if !a.conf.Serve {
		return nil
	}

	a.svc = httpsvc.NewService(a.conf.HTTPAddr)
	a.svc.Update(export.User, export.Channels, st)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.conf.Watch {
		go a.watch(ctx)
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-sig:
		case <-ctx.Done():
		}
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := a.svc.Stop(shutdownCtx); err != nil {
			log.Err(err).Msg("shutdown failed")
		}
	}()

	return a.svc.Start()
}

// compute runs extraction and aggregation once and remembers the archive
// fingerprint so watch events for unchanged content are skipped.
func (a *App) compute() (*archive.Export, *model.Stats, error) {
	if fp, err := util.FileFingerprint(a.archivePath); err == nil {
		a.fingerprint = fp
	}

	log.Info().Msgf("reading %s", a.archivePath)
	export, err := archive.Read(a.archivePath)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Msgf("found %d channels, %d messages", len(export.Channels), len(export.Messages))

	st := stats.Compute(export.Channels, export.Messages)
	return export, st, nil
}

func (a *App) writeReport(st *model.Stats, user *model.User) error {
	if err := util.PrepareDir(filepath.Dir(a.outputPath)); err != nil {
		return err
	}
	f, err := os.Create(a.outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := report.Render(f, st, user); err != nil {
		return err
	}
	if info, err := f.Stat(); err == nil {
		log.Info().Msgf("written to %s (%d KB)", a.outputPath, info.Size()/1024)
	}
	return nil
}

// watch recomputes on archive changes. The parent directory is watched
// because exports are typically replaced wholesale rather than written in
// place; a content fingerprint filters spurious events.
func (a *App) watch(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Err(err).Msg("cannot start archive watcher")
		return
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(a.archivePath)); err != nil {
		log.Err(err).Msg("cannot watch archive directory")
		return
	}

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(a.archivePath) {
				continue
			}
			if !(event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Rename)) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(500*time.Millisecond, a.recompute)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Err(err).Msg("archive watcher error")
		}
	}
}

func (a *App) recompute() {
	a.recomputeMu.Lock()
	defer a.recomputeMu.Unlock()

	fp, err := util.FileFingerprint(a.archivePath)
	if err != nil {
		log.Err(err).Msg("cannot fingerprint archive")
		return
	}
	if fp == a.fingerprint {
		log.Debug().Msg("archive content unchanged, skipping recompute")
		return
	}

	export, st, err := a.compute()
	if err != nil {
		log.Err(err).Msg("recompute failed")
		return
	}
	a.svc.Update(export.User, export.Channels, st)
	if err := a.writeReport(st, &export.User); err != nil {
		log.Err(err).Msg("rewrite report failed")
	}
}
