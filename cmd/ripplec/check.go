package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ripplang/ripplec/internal/checker"
	"github.com/ripplang/ripplec/internal/config"
	"github.com/ripplang/ripplec/internal/diag"
	"github.com/ripplang/ripplec/internal/diagfmt"
)

var checkCmd = &cobra.Command{
	Use:   "check <fixture.json>",
	Short: "Run the semantic checker against a JSON program fixture",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	maxDiags, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("max-diagnostics flag: %w", err)
	}
	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("color flag: %w", err)
	}
	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return fmt.Errorf("config flag: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if maxDiags > 0 {
		cfg.MessageLimit = maxDiags
	}

	prog, err := loadProgram(args[0])
	if err != nil {
		return err
	}
	fixture, err := build(prog, cfg)
	if err != nil {
		return err
	}

	bag := diag.NewBag(cfg.MessageLimit)
	reporter := diag.NewDedupReporter(bag)
	result := checker.CheckAll(cmd.Context(), checker.Options{
		Table:    fixture.Table,
		Module:   fixture.Module,
		Interner: fixture.Strs,
		Config:   cfg,
		Reporter: reporter,
	})

	opts := resolveRenderOptions(colorMode)
	if err := diagfmt.Pretty(os.Stdout, bag.Items(), opts); err != nil {
		return fmt.Errorf("render diagnostics: %w", err)
	}

	if bag.HasErrors() || result.Aborted {
		return errCheckFailed
	}
	return nil
}

var errCheckFailed = fmt.Errorf("check: diagnostics contained at least one error")

func resolveRenderOptions(mode string) diagfmt.Options {
	switch mode {
	case "on":
		return diagfmt.Options{Color: true, PathOf: pathOf}
	case "off":
		return diagfmt.Options{Color: false, PathOf: pathOf}
	default:
		opts := diagfmt.AutoOptions(os.Stdout, pathOf)
		return opts
	}
}

func pathOf(id uint32) string {
	return fmt.Sprintf("fixture#%d", id)
}
