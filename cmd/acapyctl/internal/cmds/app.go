package cmds

import (
	"github.com/spf13/cobra"
)

// NewApp assembles the acapyctl command tree.
func NewApp() *cobra.Command {
	app := &cobra.Command{}
	app.Use = "acapyctl"
	app.Short = "Command line client for the agent admin API"
	app.Long = `Description:
  Command line client for the agent admin API

  The agent is located with ACAPY_ADMIN_URL (or --admin-url). For help with
  any of the commands below, simply call them with --help.
`

	app.SilenceUsage = true
	app.SilenceErrors = true
	app.CompletionOptions = cobra.CompletionOptions{HiddenDefaultCmd: true}

	// Global flags
	globalCmd := &CmdGlobal{Cmd: app}

	app.PersistentFlags().StringVar(&globalCmd.FlagAdminURL, "admin-url", "", "Admin API base URL")
	app.PersistentFlags().StringVar(&globalCmd.FlagAPIKey, "api-key", "", "Admin API key")
	app.PersistentFlags().BoolVar(&globalCmd.FlagDebug, "debug", false, "Show debug logs")

	// Wrappers
	app.PersistentPreRunE = globalCmd.PreRun
	app.PersistentPostRunE = globalCmd.PostRun

	// status sub-command
	statusCmd := CmdStatus{Global: globalCmd}
	app.AddCommand(statusCmd.Command())

	// connection sub-command
	connectionCmd := CmdConnection{Global: globalCmd}
	app.AddCommand(connectionCmd.Command())

	// message sub-command
	messageCmd := CmdMessage{Global: globalCmd}
	app.AddCommand(messageCmd.Command())

	// ping sub-command
	pingCmd := CmdPing{Global: globalCmd}
	app.AddCommand(pingCmd.Command())

	// call sub-command
	callCmd := CmdCall{Global: globalCmd}
	app.AddCommand(callCmd.Command())

	// operations sub-command
	operationsCmd := CmdOperations{Global: globalCmd}
	app.AddCommand(operationsCmd.Command())

	// drift sub-command
	driftCmd := CmdDrift{Global: globalCmd}
	app.AddCommand(driftCmd.Command())

	return app
}
