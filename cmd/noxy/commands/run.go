package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/noxy/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [sessions...] [-- posargs...]",
		Short: "Run sessions, or every session when none are named",
		Long: "Run sessions, or every session when none are named.\n\n" +
			"A name may also be a tag: \"tests\" selects every tests-<python> session.\n" +
			"Arguments after \"--\" are passed to the sessions, e.g. --iris=github:main or -v.\n\n" +
			environmentHelp,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, posargs := args, []string(nil)
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				names, posargs = args[:dash], args[dash:]
			}

			noReuse, _ := cmd.Flags().GetBool("no-reuse-existing-virtualenvs")
			installOnly, _ := cmd.Flags().GetBool("install-only")
			return c.app.Run(cmd.Context(), names, app.RunOptions{
				Options:         globalOptions(cmd),
				NoReuseExisting: noReuse,
				InstallOnly:     installOnly,
				PosArgs:         posargs,
			})
		},
	}
	cmd.Flags().BoolP("no-reuse-existing-virtualenvs", "R", false, "Recreate session environments instead of reusing them")
	cmd.Flags().Bool("install-only", false, "Only install dependencies, skipping the session commands")
	return cmd
}
