package cmds

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/i2y/acapyclient/pkg/api/connection"
	"github.com/i2y/acapyclient/pkg/models"
	"github.com/i2y/acapyclient/pkg/types"
)

type CmdConnection struct {
	Global *CmdGlobal
}

func (c *CmdConnection) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "connection"
	cmd.Aliases = []string{"connections"}
	cmd.Short = "Interact with agent connections"
	cmd.Long = `Description:
  Interact with agent-to-agent connections

  List, inspect and remove connection records and exchange invitations.
`

	// List
	listCmd := cmdConnectionList{global: c.Global}
	cmd.AddCommand(listCmd.Command())

	// Show
	showCmd := cmdConnectionShow{global: c.Global}
	cmd.AddCommand(showCmd.Command())

	// Remove
	removeCmd := cmdConnectionRemove{global: c.Global}
	cmd.AddCommand(removeCmd.Command())

	// Invite
	inviteCmd := cmdConnectionInvite{global: c.Global}
	cmd.AddCommand(inviteCmd.Command())

	// Receive
	receiveCmd := cmdConnectionReceive{global: c.Global}
	cmd.AddCommand(receiveCmd.Command())

	// Metadata
	metadataCmd := cmdConnectionMetadata{global: c.Global}
	cmd.AddCommand(metadataCmd.Command())

	// Workaround for subcommand usage errors. See: https://github.com/spf13/cobra/issues/706
	cmd.Args = cobra.NoArgs
	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Usage() }

	return cmd
}

// List the connections.
type cmdConnectionList struct {
	global *CmdGlobal

	flagState  string
	flagAlias  string
	flagFormat string
}

func (c *cmdConnectionList) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "list"
	cmd.Short = "List connections"
	cmd.Long = `Description:
  List the agent's connection records
`

	cmd.RunE = c.Run
	cmd.Flags().StringVar(&c.flagState, "state", "", "Only show connections in this state")
	cmd.Flags().StringVar(&c.flagAlias, "alias", "", "Only show connections with this alias")
	cmd.Flags().StringVarP(&c.flagFormat, "format", "f", "table", "Format (table|json)")

	return cmd
}

func (c *cmdConnectionList) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	params := connection.GetConnectionsParams{}
	if cmd.Flags().Changed("state") {
		state, err := models.ParseConnectionState(c.flagState)
		if err != nil {
			return err
		}

		params.State = types.Some(state)
	}

	if cmd.Flags().Changed("alias") {
		params.Alias = types.Some(c.flagAlias)
	}

	list, err := payload(connection.GetConnectionsDetailed(cmd.Context(), c.global.client, params))
	if err != nil {
		return err
	}

	records := list.Results.OrElse(nil)
	switch c.flagFormat {
	case "json":
		return printJSON(cmd, records)
	case "table":
		return renderConnections(cmd.OutOrStdout(), records)
	default:
		return fmt.Errorf("Invalid format %q", c.flagFormat)
	}
}

func renderConnections(w io.Writer, records []models.ConnRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONNECTION ID\tSTATE\tALIAS\tTHEIR LABEL\tTHEIR ROLE")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.ConnectionID,
			r.State,
			r.Alias.OrElse(""),
			r.TheirLabel.OrElse(""),
			r.TheirRole.OrElse(""),
		)
	}

	return tw.Flush()
}

// Show a connection.
type cmdConnectionShow struct {
	global *CmdGlobal
}

func (c *cmdConnectionShow) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "show <conn_id>"
	cmd.Short = "Show connection"
	cmd.Long = `Description:
  Show a single connection record
`

	cmd.RunE = c.Run

	return cmd
}

func (c *cmdConnectionShow) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	record, err := payload(connection.GetConnectionDetailed(cmd.Context(), c.global.client, args[0]))
	if err != nil {
		return err
	}

	return printJSON(cmd, record)
}

// Remove a connection.
type cmdConnectionRemove struct {
	global *CmdGlobal
}

func (c *cmdConnectionRemove) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "remove <conn_id>"
	cmd.Short = "Remove connection"
	cmd.Long = `Description:
  Remove a connection record
`

	cmd.RunE = c.Run

	return cmd
}

func (c *cmdConnectionRemove) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	_, err = payload(connection.DeleteConnectionDetailed(cmd.Context(), c.global.client, args[0]))
	if err != nil {
		return err
	}

	cmd.Printf("Successfully removed connection %q.\n", args[0])
	return nil
}

// Create an invitation.
type cmdConnectionInvite struct {
	global *CmdGlobal

	flagAlias      string
	flagAutoAccept bool
	flagMultiUse   bool
	flagPublic     bool
}

func (c *cmdConnectionInvite) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "invite"
	cmd.Short = "Create invitation"
	cmd.Long = `Description:
  Create a new connection invitation and print it
`

	cmd.RunE = c.Run
	cmd.Flags().StringVar(&c.flagAlias, "alias", "", "Alias for the new connection")
	cmd.Flags().BoolVar(&c.flagAutoAccept, "auto-accept", false, "Auto-accept the connection request")
	cmd.Flags().BoolVar(&c.flagMultiUse, "multi-use", false, "Create a multi-use invitation")
	cmd.Flags().BoolVar(&c.flagPublic, "public", false, "Create an invitation from the public DID")

	return cmd
}

func (c *cmdConnectionInvite) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	params := connection.CreateInvitationParams{}
	if cmd.Flags().Changed("alias") {
		params.Alias = types.Some(c.flagAlias)
	}

	if cmd.Flags().Changed("auto-accept") {
		params.AutoAccept = types.Some(c.flagAutoAccept)
	}

	if cmd.Flags().Changed("multi-use") {
		params.MultiUse = types.Some(c.flagMultiUse)
	}

	if cmd.Flags().Changed("public") {
		params.Public = types.Some(c.flagPublic)
	}

	result, err := payload(connection.CreateInvitationDetailed(cmd.Context(), c.global.client, params))
	if err != nil {
		return err
	}

	return printJSON(cmd, result)
}

// Receive an invitation.
type cmdConnectionReceive struct {
	global *CmdGlobal

	flagAlias      string
	flagAutoAccept bool
}

func (c *cmdConnectionReceive) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "receive <file|->"
	cmd.Short = "Receive invitation"
	cmd.Long = `Description:
  Receive a connection invitation

  The invitation JSON is read from the named file, or from stdin when "-" is given.
`

	cmd.RunE = c.Run
	cmd.Flags().StringVar(&c.flagAlias, "alias", "", "Alias for the new connection")
	cmd.Flags().BoolVar(&c.flagAutoAccept, "auto-accept", false, "Auto-accept the invitation")

	return cmd
}

func (c *cmdConnectionReceive) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	var data []byte
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}

	if err != nil {
		return err
	}

	var invitation models.ReceiveInvitationRequest
	err = json.Unmarshal(data, &invitation)
	if err != nil {
		return fmt.Errorf("Failed to parse invitation: %w", err)
	}

	params := connection.ReceiveInvitationParams{}
	if cmd.Flags().Changed("alias") {
		params.Alias = types.Some(c.flagAlias)
	}

	if cmd.Flags().Changed("auto-accept") {
		params.AutoAccept = types.Some(c.flagAutoAccept)
	}

	record, err := payload(connection.ReceiveInvitationDetailed(cmd.Context(), c.global.client, invitation, params))
	if err != nil {
		return err
	}

	return printJSON(cmd, record)
}

// Show connection metadata.
type cmdConnectionMetadata struct {
	global *CmdGlobal

	flagKey string
}

func (c *cmdConnectionMetadata) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "metadata <conn_id>"
	cmd.Short = "Show connection metadata"
	cmd.Long = `Description:
  Show the metadata stored on a connection
`

	cmd.RunE = c.Run
	cmd.Flags().StringVar(&c.flagKey, "key", "", "Only show this metadata key")

	return cmd
}

func (c *cmdConnectionMetadata) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.global.CheckArgs(cmd, args, 1, 1)
	if exit {
		return err
	}

	key := types.Unset[string]()
	if cmd.Flags().Changed("key") {
		key = types.Some(c.flagKey)
	}

	metadata, err := payload(connection.GetMetadataDetailed(cmd.Context(), c.global.client, args[0], key))
	if err != nil {
		return err
	}

	return printJSON(cmd, metadata)
}
