package utils

import (
	"io"

	"github.com/manifoldco/promptui"
)

// Confirm asks a yes/no question and defaults to no. Nil streams mean the process terminal.
func Confirm(message string, stdin io.ReadCloser, stdout io.WriteCloser) bool {
	prompt := promptui.Prompt{
		Label:     message,
		IsConfirm: true,
		Stdin:     stdin,
		Stdout:    stdout,
	}

	// promptui reports an explicit "n" as ErrAbort, which reads as a refusal like any other error.
	answer, err := prompt.Run()

	return err == nil && (answer == "y" || answer == "Y")
}
