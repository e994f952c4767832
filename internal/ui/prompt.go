package ui

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// ConfirmPrompt asks a yes/no confirmation question
func ConfirmPrompt(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	result, err := prompt.Run()
	if err != nil {
		// promptui reports "no" as ErrAbort
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		if errors.Is(err, promptui.ErrInterrupt) {
			return false, fmt.Errorf("operation cancelled by user")
		}
		return false, err
	}

	return result == "y" || result == "Y", nil
}
