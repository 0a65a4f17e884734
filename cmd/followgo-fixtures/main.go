// followgo-fixtures serves fixture data over the backend HTTP API so the UI
// can be developed without network access. The fixture file is reloaded
// whenever it changes on disk.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"
	"github.com/rootisgod/followgo/internal/config"
	"github.com/rootisgod/followgo/internal/fixtureserver"
	"github.com/rootisgod/followgo/internal/social"
	"github.com/rsms/go-log"
)

func main() {
	optDebug := flag.Bool("debug", false, "Enable debug logging")
	optAddr := flag.String("addr", "", "Listen address (default from FOLLOWGO_FIXTURE_ADDR)")
	optFixtures := flag.String("fixtures", "", "YAML fixture file (default: built-in demo data)")
	flag.Parse()

	log.RootLogger.EnableFeatures(log.FMilliseconds)
	if *optDebug {
		log.RootLogger.Level = log.LevelDebug
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("config: %v", err)
		os.Exit(1)
	}
	addr := *optAddr
	if addr == "" {
		addr = cfg.Backend.FixtureAddr
	}
	fixtures := *optFixtures
	if fixtures == "" {
		fixtures = cfg.Backend.FixturesFile
	}

	fx := social.DemoFixtures()
	if fixtures != "" {
		if fx, err = social.LoadFixtures(fixtures); err != nil {
			log.Error("%v", err)
			os.Exit(1)
		}
	}
	backend := social.NewMemoryBackend(fx)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if fixtures != "" {
		go watchFixtures(ctx, fixtures, backend, log.SubLogger("[watch]"))
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: fixtureserver.New(backend, log.SubLogger("[http]")).Router(),
	}
	go func() {
		log.Info("serving fixtures on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown: %v", err)
	}
	log.Sync()
}

// watchFixtures reloads the fixture file into backend on every write. The
// parent directory is watched so editors that replace the file are handled.
func watchFixtures(ctx context.Context, filename string, backend *social.MemoryBackend, logger *log.Logger) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("hot reload disabled: %v", err)
		return
	}
	defer w.Close()

	abs, err := filepath.Abs(filename)
	if err != nil {
		abs = filename
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		logger.Warn("hot reload disabled: %v", err)
		return
	}

	// editors emit bursts of events; reload once per burst
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(100 * time.Millisecond)
		case <-pending:
			pending = nil
			fx, err := social.LoadFixtures(abs)
			if err != nil {
				logger.Warn("keeping previous fixtures: %v", err)
				continue
			}
			backend.Replace(fx)
			logger.Info("reloaded %s (%d accounts)", filename, len(fx.Accounts))
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("%v", err)
		}
	}
}
