package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"codetally/internal/config"
	"codetally/internal/domain"
	"codetally/internal/services"
)

// promptScanTarget asks for the folder to scan and the branch scope
func promptScanTarget(root, branch *string) error {
	if *root == "" {
		*root = "."
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Folder to scan").
				Description("Every git repository below it is analyzed").
				Value(root).
				Validate(validateFolder),
			huh.NewInput().
				Title("Branch").
				Description("Leave empty to analyze all branches").
				Value(branch).
				Validate(validateBranch),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errCancelled
		}
		return fmt.Errorf("failed to read scan target: %w", err)
	}
	return nil
}

func validateFolder(value string) error {
	_, err := services.CheckPath(config.ExpandPath(value))
	return err
}

func validateBranch(value string) error {
	_, err := domain.ParseBranchScope(value)
	return err
}
