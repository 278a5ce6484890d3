// properties.go implements "sqlmate ssms properties".

package ssms

import (
	"fmt"

	"github.com/jpl-au/sqlmate/cmd"
	"github.com/jpl-au/sqlmate/extension"
	"github.com/jpl-au/sqlmate/internal/launch"
	"github.com/jpl-au/sqlmate/internal/telemetry"
	"github.com/spf13/cobra"
)

func (e *Extension) newPropertiesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "properties",
		Short: "Open the server properties dialog",
		Long: `Open the SSMS server properties dialog for a connection profile.

  sqlmate ssms properties
  sqlmate ssms properties -c prod
  sqlmate ssms properties --urn "Server/Database[@Name='db']"

With sql authentication the profile password is written to the tool's
input stream; it never appears on the command line.`,
		Args: cobra.NoArgs,
		RunE: e.runProperties,
	}
	c.Flags().String(extension.FlagURN, "", "Object URN to target inside the dialog")
	c.Flags().Bool(extension.FlagNoWait, false, "Return as soon as the process is spawned")
	return c
}

func (e *Extension) runProperties(c *cobra.Command, _ []string) error {
	urn, _ := c.Flags().GetString(extension.FlagURN)
	noWait, _ := c.Flags().GetBool(extension.FlagNoWait)

	profile, err := e.resolveProfile()
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	// First use pays the download; afterwards this is a stat call.
	tool := e.resolveTool(c.Context())
	if !tool.OK() {
		return cmd.PrintJSONError(fmt.Errorf("SsmsMin unavailable: %w", tool.Err))
	}

	lp := params(profile, urn)

	telemetry.Event("LaunchSsmsDialog").
		Prop("action", lp.Action).
		Write(nil)

	done := make(chan struct{})
	launcher := launch.Launcher{Runner: launch.ShellRunner{}}
	var exitCode int
	launcher.Launch(tool.Path, lp, func(code int, stderr string) {
		// Exit details go to telemetry only; the dialog reports its own
		// problems to the user.
		telemetry.Event("LaunchSsmsDialogResult").
			Prop("action", lp.Action).
			Prop("returnCode", code).
			Prop("error", stderr).
			Write(nil)
		exitCode = code
		close(done)
	})

	if noWait {
		fmt.Fprintln(cmd.Out(), "launched SsmsMin")
		return nil
	}

	<-done
	fmt.Fprintf(cmd.Out(), "SsmsMin exited (code %d)\n", exitCode)
	return nil
}
