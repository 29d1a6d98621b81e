package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ytget/user-form/internal/model"
)

// recordFlags binds one flag per record field
func recordFlags(cmd *cobra.Command, r *model.Record) {
	cmd.Flags().StringVar(&r.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&r.IDNumber, "id", "", "ID number")
	cmd.Flags().StringVar(&r.Gender, "gender", "", "gender ("+model.GenderMale+"|"+model.GenderFemale+")")
	cmd.Flags().StringVar(&r.Province, "province", "", "home province")
	cmd.Flags().StringVar(&r.DateOfBirth, "dob", "", "date of birth (YYYY-MM-DD)")
}

// reportRecordError prints err and returns it with an exit code: validation
// failures exit with ExitInvalid, anything else with ExitCommandError.
func reportRecordError(out *OutputFormatter, err error, details any) error {
	var missing *model.MissingFieldError
	switch {
	case errors.As(err, &missing):
		out.Error(CodeMissingField, err.Error(), map[string]any{"field": missing.Field, "record": details})
		return WrapExitError(ExitInvalid, "record rejected", err)
	case errors.Is(err, model.ErrInvalidDate):
		out.Error(CodeInvalidDate, err.Error(), details)
		return WrapExitError(ExitInvalid, "record rejected", err)
	default:
		out.Error(CodeIO, err.Error(), details)
		return WrapExitError(ExitCommandError, "failed to append record", err)
	}
}
