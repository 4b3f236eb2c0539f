package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bobmcallan/genie/internal/catalog"
	"github.com/bobmcallan/genie/internal/common"
	"github.com/bobmcallan/genie/internal/console"
	"github.com/bobmcallan/genie/internal/models"
)

// App holds the loaded configuration, catalog and console for one
// interactive session.
type App struct {
	Config  *common.Config
	Logger  *common.Logger
	Catalog *models.Catalog
	Session *models.Session

	out    *console.SyncWriter
	prompt *console.Prompter
	tw     *console.Typewriter
	money  *common.Formatter

	logFile *os.File
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// ResolveConfigPaths returns the config files to load. Explicit paths win;
// otherwise GENIE_CONFIG, then genie.toml next to the binary, then
// config/genie.toml for development.
func ResolveConfigPaths(explicit []string) []string {
	if len(explicit) > 0 {
		return explicit
	}
	if p := os.Getenv("GENIE_CONFIG"); p != "" {
		return []string{p}
	}
	p := filepath.Join(getBinaryDir(), "genie.toml")
	if _, err := os.Stat(p); err == nil {
		return []string{p}
	}
	return []string{"config/genie.toml"}
}

// Options selects the config files and command-line overrides for NewApp.
type Options struct {
	ConfigPaths []string
	LogLevel    string // overrides logging.level when set
}

// NewApp loads configuration and the instrument catalog and wires the
// console to in and out.
func NewApp(opts Options, in io.Reader, out io.Writer) (*App, error) {
	cfg, err := common.LoadConfig(ResolveConfigPaths(opts.ConfigPaths)...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = strings.ToLower(opts.LogLevel)
	}

	logger, logFile, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	a := New(cfg, logger, cat, in, out)
	a.logFile = logFile
	return a, nil
}

// newLogger builds the logger described by cfg.Logging. A file path
// gets JSON lines in that file; otherwise production logs JSON to stderr
// and everything else uses the console writer.
func newLogger(cfg *common.Config) (*common.Logger, *os.File, error) {
	if cfg.Logging.FilePath != "" {
		f, err := os.OpenFile(cfg.Logging.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", cfg.Logging.FilePath, err)
		}
		return common.NewLoggerWithOutput(cfg.Logging.Level, f), f, nil
	}
	if cfg.IsProduction() {
		return common.NewLoggerWithOutput(cfg.Logging.Level, os.Stderr), nil, nil
	}
	return common.NewLogger(cfg.Logging.Level), nil, nil
}

// Close releases the log file, if one was opened.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

// New assembles an App from already-loaded parts.
func New(cfg *common.Config, logger *common.Logger, cat *models.Catalog, in io.Reader, out io.Writer) *App {
	session := models.NewSession()

	delay := cfg.Console.GetTypewriterDelay()
	if !cfg.Console.Typewriter {
		delay = 0
	}

	sw := console.NewSyncWriter(out)

	return &App{
		Config:  cfg,
		Logger:  logger.WithSession(session.ID),
		Catalog: cat,
		Session: session,
		out:     sw,
		prompt:  console.NewPrompter(in, sw),
		tw:      console.NewTypewriter(sw, delay),
		money:   common.NewFormatter(cfg.Display.CurrencySymbol),
	}
}

// SetRisk preselects the risk tier so Run skips the appetite prompt.
func (a *App) SetRisk(r models.RiskTier) {
	a.Session.Risk = r
}

// DisableTypewriter prints all further text without pacing.
func (a *App) DisableTypewriter() {
	a.Config.Console.Typewriter = false
	a.tw = console.NewTypewriter(a.out, 0)
}
