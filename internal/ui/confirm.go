package ui

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/dataidea/dataidea-cli/internal/apperr"
)

// ConfirmExternalDownload asks before opening a dataset hosted outside DataIdea.
// Declining returns apperr.ErrCancelled.
func ConfirmExternalDownload(title, rawURL string) error {
	confirm := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("External download").
				Description(ExternalNotice(title, rawURL)).
				Value(&confirm).
				Affirmative("Continue to download").
				Negative("Cancel"),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return apperr.ErrCancelled
		}
		return err
	}
	if !confirm {
		return apperr.ErrCancelled
	}
	return nil
}
