package cmds

import (
	"github.com/spf13/cobra"

	"github.com/i2y/acapyclient/pkg/api/basicmessage"
	"github.com/i2y/acapyclient/pkg/api/trustping"
	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

// Send a basic message.
type CmdMessage struct {
	Global *CmdGlobal
}

func (c *CmdMessage) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "message <conn_id> <content>"
	cmd.Short = "Send basic message"
	cmd.Long = `Description:
  Send a basic message over a connection
`

	cmd.RunE = c.Run

	return cmd
}

func (c *CmdMessage) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.Global.CheckArgs(cmd, args, 2, 2)
	if exit {
		return err
	}

	body := models.SendMessage{Content: types.Some(args[1])}
	_, err = payload(basicmessage.SendMessageDetailed(cmd.Context(), c.Global.client, args[0], body))
	if err != nil {
		return err
	}

	cmd.Printf("Message sent to connection %q.\n", args[0])
	return nil
}

// Send a trust ping.
type CmdPing struct {
	Global *CmdGlobal

	flagComment string
}

func (c *CmdPing) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "ping <conn_id>"
	cmd.Short = "Send trust ping"
	cmd.Long = `Description:
  Send a trust ping over a connection and print the thread id
`

	cmd.RunE = c.Run
	cmd.Flags().StringVar(&c.flagComment, "comment", "", "Comment to include in the ping")

	return cmd
}

func (c *CmdPing) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.Global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	body := models.PingRequest{}
	if cmd.Flags().Changed("comment") {
		body.Comment = types.Some(c.flagComment)
	}

	resp, err := payload(trustping.SendPingDetailed(cmd.Context(), c.Global.client, args[0], body))
	if err != nil {
		return err
	}

	cmd.Printf("Ping sent, thread id %q.\n", resp.ThreadID.OrElse(""))
	return nil
}
