package cli

import (
	"github.com/spf13/cobra"

	"github.com/ytget/user-form/internal/model"
	"github.com/ytget/user-form/internal/store"
)

// ValidateOptions holds flags for the validate command.
type ValidateOptions struct {
	*RootOptions
	Record model.Record
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a record without writing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateRecord(opts, cmd)
		},
	}

	recordFlags(cmd, &opts.Record)

	return cmd
}

func validateRecord(opts *ValidateOptions, cmd *cobra.Command) error {
	out := opts.formatter(cmd)

	if err := store.NewStore(opts.File).Validate(opts.Record); err != nil {
		opts.logger().Debug("record invalid", "error", err)
		return reportRecordError(out, err, opts.Record)
	}

	return out.Success("ok", map[string]any{"line": opts.Record.Line()})
}
