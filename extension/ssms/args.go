// args.go implements "sqlmate ssms args", a dry run of the flag grammar.
//
// The preview never resolves or spawns the tool, so it works on any
// platform. Useful for checking what a profile turns into before launching
// on a Windows host.

package ssms

import (
	"fmt"

	"github.com/jpl-au/sqlmate/cmd"
	"github.com/jpl-au/sqlmate/extension"
	"github.com/spf13/cobra"
)

func (e *Extension) newArgsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "args",
		Short: "Print the SsmsMin flags for a profile without launching",
		Args:  cobra.NoArgs,
		RunE:  e.runArgs,
	}
	c.Flags().String(extension.FlagURN, "", "Object URN to target")
	return c
}

func (e *Extension) runArgs(c *cobra.Command, _ []string) error {
	urn, _ := c.Flags().GetString(extension.FlagURN)

	profile, err := e.resolveProfile()
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	lp := params(profile, urn)
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{
			"args":  lp.CommandArgs(),
			"stdin": lp.Stdin() != nil,
		})
	}
	fmt.Fprintf(cmd.Out(), "SsmsMin%s\n", lp.CommandArgs())
	if lp.Stdin() != nil {
		fmt.Fprintln(cmd.Out(), "(password written to stdin)")
	}
	return nil
}
