package cmds

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/i2y/acapyclient/internal/adapter/outbound/acapyinvoker"
	"github.com/i2y/acapyclient/internal/adapter/outbound/memcatalog"
	"github.com/i2y/acapyclient/internal/usecase"
	"github.com/i2y/acapyclient/pkg/api"
	"github.com/i2y/acapyclient/pkg/client"
)

// catalog returns an endpoint catalog holding every typed wrapper.
func (c *CmdGlobal) catalog(cmd *cobra.Command) (*memcatalog.Catalog, error) {
	cat := memcatalog.New(c.logger)
	err := cat.Register(cmd.Context(), api.Endpoints())
	if err != nil {
		return nil, err
	}

	return cat, nil
}

// Call any known operation.
type CmdCall struct {
	Global *CmdGlobal

	flagBody string
}

func (c *CmdCall) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "call <operation> [<key>=<value>...]"
	cmd.Short = "Call an admin API operation"
	cmd.Long = `Description:
  Call an admin API operation by name

  Arguments are given as key=value pairs and are sent as strings. Use
  key:=value to send a JSON value in the request body instead. Path and
  query parameters are taken from the pairs by name and always keep their
  literal text, the remaining pairs form the request body unless --body is
  given.
`
	cmd.Example = `  acapyctl call get_connections state=active
  acapyctl call send_basic_message conn_id=abc content=hello
  acapyctl call set_connection_metadata conn_id=abc 'metadata:={"tier": 2}'`

	cmd.RunE = c.Run
	cmd.Flags().StringVar(&c.flagBody, "body", "", "Request body as a JSON object")

	return cmd
}

func (c *CmdCall) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.Global.CheckArgs(cmd, args, 1, -1)
	if exit {
		return err
	}

	cat, err := c.Global.catalog(cmd)
	if err != nil {
		return err
	}

	ep, err := cat.Find(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	params, err := parseArgs(*ep, args[1:])
	if err != nil {
		return err
	}

	if c.flagBody != "" {
		var body map[string]any
		err = json.Unmarshal([]byte(c.flagBody), &body)
		if err != nil {
			return fmt.Errorf("Invalid --body: %w", err)
		}

		params[acapyinvoker.BodyParam] = body
	}

	uc := usecase.NewInvokeEndpointUseCase(cat, acapyinvoker.New(c.Global.client, c.Global.logger), c.Global.logger)
	resp, err := uc.Execute(cmd.Context(), args[0], params)
	if err != nil {
		return err
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("Agent returned status %d: %s", resp.StatusCode, resp.ErrorDetail())
	}

	if resp.Parsed == nil {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(resp.Content))
		return err
	}

	return printJSON(cmd, *resp.Parsed)
}

// parseArgs turns key=value and key:=json pairs into invocation parameters.
// Path and query parameters of ep keep their literal text.
func parseArgs(ep client.Endpoint, args []string) (map[string]any, error) {
	literal := make(map[string]bool, len(ep.Query))
	for _, name := range slices.Concat(ep.PathParams(), ep.Query) {
		literal[name] = true
	}

	params := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" || key == ":" {
			return nil, fmt.Errorf("Invalid argument %q, expected key=value", arg)
		}

		name, isJSON := strings.CutSuffix(key, ":")
		switch {
		case literal[name] || !isJSON:
			params[name] = value
		case gjson.Valid(value):
			params[name] = gjson.Parse(value).Value()
		default:
			return nil, fmt.Errorf("Invalid JSON in argument %q", arg)
		}
	}

	return params, nil
}

// List known operations.
type CmdOperations struct {
	Global *CmdGlobal

	flagTag string
}

func (c *CmdOperations) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "operations"
	cmd.Short = "List known operations"
	cmd.Long = `Description:
  List the admin API operations this client has typed wrappers for
`

	cmd.RunE = c.Run
	cmd.Flags().StringVar(&c.flagTag, "tag", "", "Only show operations with this tag")

	return cmd
}

func (c *CmdOperations) Run(cmd *cobra.Command, args []string) error {
	// Quick checks.
	exit, err := c.Global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	cat, err := c.Global.catalog(cmd)
	if err != nil {
		return err
	}

	endpoints, err := cat.List(cmd.Context())
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OPERATION\tTAG\tMETHOD\tPATH\tQUERY")
	for _, ep := range endpoints {
		if c.flagTag != "" && ep.Tag != c.flagTag {
			continue
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", ep.Name, ep.Tag, ep.Method, ep.Path, strings.Join(ep.Query, ","))
	}

	return tw.Flush()
}
