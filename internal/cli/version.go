package cli

import (
	"fmt"

	goversion "github.com/caarlos0/go-version"
	"github.com/spf13/cobra"
)

// Application details shown by the version command
const (
	AppName        = "recordctl"
	AppDescription = "Validate and append personal records to a flat file"
	AppWebsite     = "https://github.com/ytget/user-form"
)

// BuildInfo carries values injected with -ldflags
type BuildInfo struct {
	Version   string
	Commit    string
	Date      string
	BuiltBy   string
	TreeState string
}

// NewVersionCommand creates the version command.
func NewVersionCommand(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), BuildVersion(build).String())
			return err
		},
	}
}

// BuildVersion assembles version info, keeping module defaults for empty values
func BuildVersion(build BuildInfo) goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(AppName, AppDescription, AppWebsite),
		func(i *goversion.Info) {
			if build.Commit != "" {
				i.GitCommit = build.Commit
			}
			if build.Version != "" {
				i.GitVersion = build.Version
			}
			if build.TreeState != "" {
				i.GitTreeState = build.TreeState
			}
			if build.Date != "" {
				i.BuildDate = build.Date
			}
			if build.BuiltBy != "" {
				i.BuiltBy = build.BuiltBy
			}
		},
	)
}
