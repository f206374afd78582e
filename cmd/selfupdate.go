package cmd

import (
	"context"
	"fmt"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const githubRepoSlug = "srivera/folio"

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update folio to the latest version",
		Long: `Checks for the latest release of folio on GitHub and
updates the current binary if a newer version is found.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	currentVersion := rootCmd.Version
	if currentVersion == "" || currentVersion == "dev" {
		return fmt.Errorf("cannot self-update a development version")
	}

	ctx := context.Background()
	out := rootCmd.OutOrStdout()
	if cmd != nil {
		ctx = commandContext(cmd)
		out = cmd.OutOrStdout()
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
	})
	if err != nil {
		return fmt.Errorf("failed to create updater: %w", err)
	}

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(githubRepoSlug))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s could not be found on github", githubRepoSlug)
	}

	if latest.LessOrEqual(currentVersion) {
		fmt.Fprintf(out, "Current version (%s) is the latest\n", currentVersion)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}
	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Fprintf(out, "Successfully updated to version %s\n", latest.Version())
	return nil
}
