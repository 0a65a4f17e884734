// followgo is a terminal viewer for the following, followers and lists of
// the accounts a backend tracks.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rootisgod/followgo/internal/config"
	"github.com/rootisgod/followgo/internal/social"
	"github.com/rsms/go-log"
)

func main() {
	optDebug := flag.Bool("debug", false, "Enable debug logging")
	optVersion := flag.Bool("version", false, "Print version information and exit")
	optFixtures := flag.String("fixtures", "", "Browse this YAML fixture file instead of a backend")
	flag.Parse()

	if *optVersion {
		fmt.Println(GetVersion())
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fatalf("%v", err)
	}
	if *optFixtures != "" {
		cfg.Backend.URL = ""
		cfg.Backend.FixturesFile = *optFixtures
	}

	logFile, err := openLog(cfg.Log.File, *optDebug)
	if err != nil {
		fatalf("opening log: %v", err)
	}
	err = run(cfg)
	if err != nil {
		log.Error("%v", err)
	} else {
		log.Info("bye")
	}
	closeLog(logFile)
	if err != nil {
		fatalf("%v", err)
	}
}

func run(cfg *config.Config) error {
	backend, err := newBackend(cfg)
	if err != nil {
		return err
	}
	setTheme(themeIndex(cfg.UI.Theme))

	m := newRootModel(cfg, backend, log.SubLogger("[ui]"))
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// openLog points the root logger at path. The terminal belongs to the UI.
func openLog(path string, debug bool) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.RootLogger.SetWriter(f)
	log.RootLogger.EnableFeatures(log.FMilliseconds)
	if debug {
		log.RootLogger.Level = log.LevelDebug
		log.RootLogger.EnableFeatures(log.FSync)
	}
	log.Info("%s starting", GetVersion())
	return f, nil
}

// closeLog flushes the root logger and closes its file. It runs before any
// exit so the last lines are not lost.
func closeLog(f *os.File) {
	log.Sync()
	f.Close()
}

// newBackend talks to the configured backend URL, or serves fixtures from
// memory when there is none.
func newBackend(cfg *config.Config) (social.Backend, error) {
	if cfg.Backend.URL != "" {
		log.Info("using backend %s", cfg.Backend.URL)
		return social.NewClient(cfg.Backend.URL, cfg.Backend.Timeout), nil
	}
	if cfg.Backend.FixturesFile == "" {
		log.Info("no backend configured, using demo data")
		return social.NewMemoryBackend(social.DemoFixtures()), nil
	}
	fx, err := social.LoadFixtures(cfg.Backend.FixturesFile)
	if err != nil {
		return nil, err
	}
	log.Info("serving fixtures from %s", cfg.Backend.FixturesFile)
	return social.NewMemoryBackend(fx), nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, appName+": "+format+"\n", args...)
	os.Exit(1)
}
