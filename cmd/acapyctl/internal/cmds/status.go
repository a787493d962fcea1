package cmds

import (
	"github.com/spf13/cobra"

	"github.com/i2y/acapyclient/pkg/api/server"
)

type CmdStatus struct {
	Global *CmdGlobal

	flagReady bool
	flagLive  bool
}

func (c *CmdStatus) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "status"
	cmd.Short = "Show agent status"
	cmd.Long = `Description:
  Show the agent's version and status

  Use --ready or --live to query the readiness and liveliness probes instead.
`

	cmd.RunE = c.Run
	cmd.Flags().BoolVar(&c.flagReady, "ready", false, "Query the readiness probe")
	cmd.Flags().BoolVar(&c.flagLive, "live", false, "Query the liveliness probe")
	cmd.MarkFlagsMutuallyExclusive("ready", "live")

	return cmd
}

func (c *CmdStatus) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.Global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	ctx := cmd.Context()
	switch {
	case c.flagReady:
		ready, err := payload(server.GetReadyDetailed(ctx, c.Global.client))
		if err != nil {
			return err
		}

		return printJSON(cmd, ready)
	case c.flagLive:
		live, err := payload(server.GetLiveDetailed(ctx, c.Global.client))
		if err != nil {
			return err
		}

		return printJSON(cmd, live)
	}

	status, err := payload(server.GetStatusDetailed(ctx, c.Global.client))
	if err != nil {
		return err
	}

	return printJSON(cmd, status)
}
