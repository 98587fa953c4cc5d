/*
* Copyright (c) 2026-present Concerto project contributors
 */
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tech-bash/concerto/pkg/logger"
	"github.com/tech-bash/concerto/pkg/modelmgr"
	"github.com/tech-bash/concerto/pkg/parser"
	"github.com/tech-bash/concerto/pkg/printer"
	"github.com/tech-bash/concerto/pkg/registry"
)

func newRootCmd() *cobra.Command {
	var verbose, trace bool
	root := &cobra.Command{
		Use:           "concerto",
		Short:         "Work with namespaced model files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case trace:
				logger.SetLogLevel(logger.LogLevelTrace)
			case verbose:
				logger.SetLogLevel(logger.LogLevelVerbose)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVar(&trace, "trace", false, "enable extremely verbose output")
	root.AddCommand(newValidateCmd(), newResolveCmd(), newExportCmd())
	return root
}

// loadRegistry registers every .cto file under dir, validating each model
// structurally, then runs the whole-registry consistency check.
func loadRegistry(dir string) (*registry.Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	reg := registry.New()
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || strings.ToLower(filepath.Ext(entry.Name())) != parser.ModelFileExt {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if _, err := reg.AddModelFile(entry.Name(), string(content), "", true); err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		loaded++
	}
	if loaded == 0 {
		return nil, parser.ErrDirContainsNoModelFiles
	}
	if err := reg.ValidateAll(); err != nil {
		return nil, err
	}
	return reg, nil
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <dir>",
		Short: "Validate every model file in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(args[0])
			if err != nil {
				return err
			}
			logger.Info("validated", reg.Len(), "models")
			return nil
		},
	}
}

func newResolveCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "resolve <dir>",
		Short: "Resolve type references across a directory of models",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(args[0])
			if err != nil {
				return err
			}
			models, err := modelmgr.ExportAll(reg, true, false)
			if err != nil {
				return err
			}
			if out != "" {
				return modelmgr.WriteModelsDir(models, out)
			}
			for _, m := range models.Models {
				fmt.Fprintln(cmd.OutOrStdout(), printer.Print(m))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write resolved models to this directory")
	return cmd
}

func newExportCmd() *cobra.Command {
	var resolve bool
	cmd := &cobra.Command{
		Use:   "export <dir>",
		Short: "Export a directory of models as a JSON collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(args[0])
			if err != nil {
				return err
			}
			models, err := modelmgr.ExportAll(reg, resolve, false)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(models, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&resolve, "resolve", false, "qualify type references before exporting")
	return cmd
}
