package cmds

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/i2y/acapyclient/internal/adapter/outbound/swagger"
	"github.com/i2y/acapyclient/internal/usecase"
)

// Compare the known operations with the agent's API document.
type CmdDrift struct {
	Global *CmdGlobal

	flagSource string
	flagStrict bool
}

func (c *CmdDrift) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "drift"
	cmd.Short = "Compare known operations with the agent"
	cmd.Long = `Description:
  Compare the operations this client knows with the agent's API document

  The document is read from the agent's Swagger endpoint unless --source names
  another URL or a local file.
`

	cmd.RunE = c.Run
	cmd.Flags().StringVar(&c.flagSource, "source", "", "API document URL or file")
	cmd.Flags().BoolVar(&c.flagStrict, "strict", false, "Fail when the agent lacks a known operation")

	return cmd
}

func (c *CmdDrift) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.Global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	source := c.flagSource
	if source == "" {
		source = c.Global.config.SwaggerURL()
	}

	cat, err := c.Global.catalog(cmd)
	if err != nil {
		return err
	}

	fetcher := swagger.NewFetcher(&http.Client{Timeout: c.Global.config.Timeout}, c.Global.client.Headers(), c.Global.logger, c.Global.config.SwaggerPath)
	report, err := usecase.NewCheckDriftUseCase(cat, fetcher, c.Global.logger).Execute(cmd.Context(), source)
	if err != nil {
		return err
	}

	err = printJSON(cmd, report)
	if err != nil {
		return err
	}

	if c.flagStrict && !report.InSync() {
		return fmt.Errorf("Agent lacks %d known operations", len(report.MissingOnServer))
	}

	return nil
}
