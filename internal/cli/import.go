package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ytget/user-form/internal/model"
	"github.com/ytget/user-form/internal/store"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
}

// ImportResult reports how far an import got.
type ImportResult struct {
	File     string `json:"file"`
	Appended int    `json:"appended"`
	Total    int    `json:"total"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <records.yaml>",
		Short: "Append every record of a YAML list",
		Long: `Append every record of a YAML list, in file order.

The input is a list of mappings with the keys full_name, id_number, gender,
province and date_of_birth. Import stops at the first record that cannot be
saved; records appended before it stay in the records file.

Example:
  - full_name: Jane Doe
    id_number: "998877"
    gender: Female
    province: Gauteng
    date_of_birth: "1990-05-02"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return importRecords(opts, args[0], cmd)
		},
	}

	return cmd
}

// LoadRecords reads a YAML list of records
func LoadRecords(path string) ([]model.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var records []model.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

func importRecords(opts *ImportOptions, input string, cmd *cobra.Command) error {
	out := opts.formatter(cmd)
	log := opts.logger().With("input", input, "file", opts.File)

	records, err := LoadRecords(input)
	if err != nil {
		out.Error(CodeInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load records", err)
	}

	s := store.NewStore(opts.File)
	result := ImportResult{File: s.Path(), Total: len(records)}

	for i, r := range records {
		if err := s.Save(r); err != nil {
			log.Warn("import stopped", "index", i, "appended", result.Appended, "error", err)
			return reportRecordError(out, fmt.Errorf("record %d: %w", i+1, err), result)
		}
		result.Appended++
		log.Debug("record appended", "index", i)
	}

	return out.Success(
		fmt.Sprintf("appended %d of %d records to %s", result.Appended, result.Total, result.File),
		result,
	)
}
