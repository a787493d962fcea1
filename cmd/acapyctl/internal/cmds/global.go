package cmds

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/i2y/acapyclient/configs"
	"github.com/i2y/acapyclient/internal/telemetry"
	"github.com/i2y/acapyclient/pkg/client"
	"github.com/i2y/acapyclient/pkg/types"
)

type CmdGlobal struct {
	Cmd *cobra.Command

	config *configs.Config
	logger *slog.Logger
	client *client.Client

	shutdownTelemetry telemetry.ShutdownFunc

	FlagAdminURL string
	FlagAPIKey   string
	FlagDebug    bool
}

// PreRun loads the configuration, applies flag overrides and builds the
// admin API client shared by all sub-commands.
func (c *CmdGlobal) PreRun(cmd *cobra.Command, args []string) error {
	cfg, err := configs.Load()
	if err != nil {
		return err
	}

	if c.FlagAdminURL != "" {
		cfg.AdminURL = c.FlagAdminURL
	}

	if c.FlagAPIKey != "" {
		cfg.APIKey = c.FlagAPIKey
	}

	if c.FlagDebug {
		cfg.LogLevel = "debug"
	}

	c.config = cfg
	c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.ParsedLogLevel()}))

	c.shutdownTelemetry, err = telemetry.InitProvider(cmd.Context(), telemetry.Settings{
		ServiceName: "acapyctl",
		Endpoint:    cfg.OtelExporterOtlpEndpoint,
		Insecure:    cfg.OtelExporterOtlpInsecure,
	}, c.logger)
	if err != nil {
		return err
	}

	c.client = client.New(cfg.AdminURL, cfg.ClientOptions(c.logger)...)

	return nil
}

// PostRun flushes telemetry recorded by the sub-command.
func (c *CmdGlobal) PostRun(cmd *cobra.Command, args []string) error {
	if c.shutdownTelemetry == nil {
		return nil
	}

	err := c.shutdownTelemetry(context.WithoutCancel(cmd.Context()))
	if err != nil {
		c.logger.Warn("Failed to flush telemetry", slog.Any("error", err))
	}

	return nil
}

func (c *CmdGlobal) CheckArgs(cmd *cobra.Command, args []string, minArgs int, maxArgs int) (bool, error) {
	if len(args) < minArgs || (maxArgs != -1 && len(args) > maxArgs) {
		_ = cmd.Help()

		return true, fmt.Errorf("Invalid number of arguments")
	}

	return false, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

// payload turns a response the operation does not document into an error.
func payload[T any](resp *types.Response[T], err error) (*T, error) {
	if err != nil {
		return nil, err
	}

	if resp.Parsed == nil {
		return nil, fmt.Errorf("Agent returned status %d: %s", resp.StatusCode, resp.ErrorDetail())
	}

	return resp.Parsed, nil
}
