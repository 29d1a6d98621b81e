package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/user-form/internal/model"
	"github.com/ytget/user-form/internal/store"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Record model.Record
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Validate a record and append it to the records file",
		Long: `Validate a record and append it to the records file.

Example:
  recordctl add --name "Jane Doe" --id 998877 --gender Female --province Gauteng --dob 1990-05-02`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return addRecord(opts, cmd)
		},
	}

	recordFlags(cmd, &opts.Record)

	return cmd
}

func addRecord(opts *AddOptions, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	s := store.NewStore(opts.File)
	log := opts.logger().With("file", s.Path())

	if err := s.Save(opts.Record); err != nil {
		log.Warn("record not saved", "error", err)
		return reportRecordError(out, err, opts.Record)
	}

	log.Debug("record appended", "id_number", opts.Record.IDNumber)
	return out.Success(
		fmt.Sprintf("appended 1 record to %s", s.Path()),
		map[string]any{"file": s.Path(), "appended": 1, "line": opts.Record.Line()},
	)
}
