package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ngmap/internal/config"
	"ngmap/internal/errors"
	"ngmap/internal/output"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ngmap configuration",
	Long:  "View and create the project configuration stored in .ngmap/config.json",
}

var configShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Show the effective configuration",
	Long: `Display the configuration in effect for a project: defaults, overlaid by
.ngmap/config.json, overlaid by NGMAP_* environment variables.

Examples:
  ngmap config show
  NGMAP_ANALYSIS_MAXDEPTH=4 ngmap config show ./shop`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file",
	Long: `Create .ngmap/config.json with the default settings.

Examples:
  ngmap config init
  ngmap config init ./shop --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing configuration file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func projectRoot(args []string) (string, error) {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	root, err := filepath.Abs(target)
	if err != nil {
		return "", errors.NewError(errors.PathNotFound, "cannot resolve path "+target, err)
	}
	if st, err := os.Stat(root); err != nil || !st.IsDir() {
		return "", errors.NewError(errors.PathNotFound, "path does not exist: "+target, err).
			WithDetails(map[string]string{"path": target})
	}
	return root, nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	root, err := projectRoot(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(root)
	if err != nil {
		return errors.NewError(errors.ConfigInvalid, "failed to load "+config.Path(root), err)
	}

	data, err := output.DeterministicEncodeIndented(cfg, "  ")
	if err != nil {
		return errors.NewError(errors.InternalError, "failed to encode configuration", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	if err := cfg.Validate(); err != nil {
		return errors.NewError(errors.ConfigInvalid, "invalid configuration", err)
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	root, err := projectRoot(args)
	if err != nil {
		return err
	}

	path := config.Path(root)
	if _, err := os.Stat(path); err == nil && !configForce {
		return errors.NewError(errors.ConfigInvalid, path+" already exists (use --force to overwrite)", nil)
	}

	if err := config.DefaultConfig().Save(root); err != nil {
		return errors.NewError(errors.OutputFailed, "failed to write "+path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
