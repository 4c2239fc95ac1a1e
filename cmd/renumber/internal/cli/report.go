package cli

import (
	"errors"

	"github.com/arthur-debert/renumber/pkg/ui"
	"github.com/spf13/cobra"
)

// ReportedError marks an error that was already rendered to the user
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// Report renders err on the command's error stream in the given format and
// returns it marked as reported. Rendering failures return err unmarked.
func Report(cmd *cobra.Command, format ui.Format, err error) error {
	r, rerr := ui.NewRenderer(format, cmd.ErrOrStderr())
	if rerr != nil {
		return err
	}
	if rerr := r.RenderError(err); rerr != nil {
		return err
	}
	return &ReportedError{Err: err}
}

// IsReported reports whether err was already rendered
func IsReported(err error) bool {
	var reported *ReportedError
	return errors.As(err, &reported)
}
