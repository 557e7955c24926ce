package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/RevCBH/refinery/internal/approval"
	"github.com/RevCBH/refinery/internal/config"
	"github.com/RevCBH/refinery/internal/logging"
	"github.com/RevCBH/refinery/internal/present"
	"github.com/RevCBH/refinery/internal/refine"
	"github.com/RevCBH/refinery/internal/session"
	"github.com/RevCBH/refinery/internal/suggest"
)

// Runtime holds all wired components for a refinement run
type Runtime struct {
	Config    *config.Config
	Store     *session.Store
	Loop      *refine.Loop
	Presenter *present.Presenter
	Logger    *logging.Logger
}

// wireRuntime assembles all components for the run and resume commands
func (a *App) wireRuntime() (*Runtime, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}

	store, err := session.NewStore(cfg.SessionDir)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	styles := present.Styles{}
	if a.useColor(cfg) {
		styles = present.DefaultStyles()
	}
	presenter := present.NewPresenter(os.Stdout, styles)
	prompter := present.NewTerminalPrompter(os.Stdin, os.Stdout)

	var echo io.Writer
	if a.verbose {
		echo = os.Stderr
	}
	logger := logging.New(cfg.LogFile, echo)

	approver := approval.New(approval.Options{
		AutoAcceptThreshold:    cfg.AutoAcceptThreshold,
		BatchMode:              cfg.BatchMode,
		BatchThreshold:         cfg.BatchThreshold,
		QuickExitMinDecisions:  3,
		QuickExitRejectionRate: 0.7,
		SmartBatchThreshold:    0.8,
	}, prompter, presenter)

	loop := refine.New(refine.Options{
		MaxIterations:        cfg.MaxIterations,
		ConvergenceThreshold: cfg.ConvergenceThreshold,
		RemainingIssuesFloor: 2,
	}, suggest.NewGenerator(), approver, prompter, presenter, store, logger)

	return &Runtime{
		Config:    cfg,
		Store:     store,
		Loop:      loop,
		Presenter: presenter,
		Logger:    logger,
	}, nil
}

func (a *App) useColor(cfg *config.Config) bool {
	if a.noColor || cfg.Color == "never" {
		return false
	}
	if cfg.Color == "always" {
		return true
	}
	return present.StdoutIsTerminal()
}
