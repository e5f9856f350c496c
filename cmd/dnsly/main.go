// Command dnsly looks up DNS records for a domain and prints the results
// as a table or as JSON. It also ships an HTTP API exposing the same
// lookups (dnsly serve).
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jroosing/dnsly/internal/api"
	"github.com/jroosing/dnsly/internal/config"
	"github.com/jroosing/dnsly/internal/logging"
	"github.com/jroosing/dnsly/internal/lookup"
	"github.com/jroosing/dnsly/internal/output"
)

const version = "1.0.0"

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:      "dnsly",
		Usage:     "DNS insight made simple",
		Version:   version,
		ArgsUsage: "<domain>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "DNS record type(s) to query (comma-separated or ALL)",
				Value:   "A",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format (text or json)",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable verbose output",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Quiet mode (no banner, no progress)",
			},
			&cli.StringFlag{
				Name:  "server",
				Usage: "Nameserver IP to query instead of the system resolver",
			},
			&cli.IntFlag{
				Name:  "timeout",
				Usage: "Query timeout in seconds",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to JSON configuration file (or set DNSLY_CONFIG)",
			},
		},
		Action: lookupAction,
		Commands: []*cli.Command{
			serveCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "✗ Unexpected error: %v\n", err)
		os.Exit(1)
	}
}

func lookupAction(c *cli.Context) error {
	if c.NArg() != 1 {
		_ = cli.ShowAppHelp(c)
		return cli.Exit("", 1)
	}
	domain := c.Args().First()

	format, err := output.ParseFormat(c.String("output"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("✗ %v", err), 1)
	}

	types, err := parseTypes(c.String("type"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		fmt.Fprintf(os.Stderr, "Valid types: %s\n", validTypeList())
		return cli.Exit("", 1)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("✗ %v", err), 1)
	}

	quiet := c.Bool("quiet")
	verbose := c.Bool("verbose")
	logger := logging.Configure(logging.Config{
		Level:   cfg.Logging.Level,
		JSON:    cfg.Logging.JSON,
		Verbose: verbose,
		Quiet:   quiet,
	})

	client, err := lookup.NewClient(lookup.ClientConfig{
		Servers:     cfg.Resolver.Servers,
		Port:        cfg.Resolver.Port,
		Timeout:     cfg.Resolver.Timeout(),
		TCPFallback: cfg.Resolver.TCPFallback,
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("✗ %v", err), 1)
	}
	dispatcher := lookup.NewDispatcher(client, logger)
	logger.Debug("resolver ready", "server", client.Addr(), "timeout", cfg.Resolver.Timeout())

	showProgress := !quiet && format == output.FormatText
	if showProgress {
		output.Banner(os.Stdout, version)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := output.NewRenderer(os.Stdout, verbose)
	failed := false
	for _, rt := range types {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "⚠ Operation cancelled by user")
			return cli.Exit("", 1)
		}

		if showProgress && len(types) > 1 {
			fmt.Printf("\n→ Querying %s records...\n", rt)
		}
		var spinner *output.Spinner
		if showProgress && len(types) == 1 {
			spinner = output.NewSpinner(os.Stdout, fmt.Sprintf("Querying %s records...", rt))
			spinner.Start()
		}

		res := dispatcher.Lookup(ctx, domain, rt)

		if spinner != nil {
			spinner.Stop()
		}
		if err := renderer.Render(res, format); err != nil {
			return cli.Exit(fmt.Sprintf("✗ %v", err), 1)
		}
		if !res.Success {
			failed = true
		}
	}

	if failed {
		return cli.Exit("", 1)
	}
	return nil
}

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Run the dnsly HTTP API server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to JSON configuration file (or set DNSLY_CONFIG)",
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "Override bind host",
		},
		&cli.IntFlag{
			Name:  "port",
			Usage: "Override bind port",
		},
		&cli.StringFlag{
			Name:  "api-key",
			Usage: "Require this API key on every request",
		},
		&cli.BoolFlag{
			Name:  "json-logs",
			Usage: "Enable JSON structured logging",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	},
	Action: serveAction,
}

func serveAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load config: %v", err), 1)
	}
	if c.IsSet("host") {
		cfg.API.Host = c.String("host")
	}
	if c.IsSet("port") {
		cfg.API.Port = c.Int("port")
	}
	if c.IsSet("api-key") {
		cfg.API.APIKey = c.String("api-key")
	}
	if c.Bool("json-logs") {
		cfg.Logging.JSON = true
	}
	if c.Bool("debug") {
		cfg.Logging.Level = "DEBUG"
	}

	logger := logging.Configure(logging.Config{
		Level: cfg.Logging.Level,
		JSON:  cfg.Logging.JSON,
	})

	client, err := lookup.NewClient(lookup.ClientConfig{
		Servers:     cfg.Resolver.Servers,
		Port:        cfg.Resolver.Port,
		Timeout:     cfg.Resolver.Timeout(),
		TCPFallback: cfg.Resolver.TCPFallback,
	})
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to build resolver: %v", err), 1)
	}
	dispatcher := lookup.NewDispatcher(client, logger)

	srv := api.New(cfg, dispatcher, logger)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("dnsly API listening",
		"addr", srv.Addr(),
		"resolver", client.Addr(),
		"auth", cfg.API.APIKey != "",
	)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return cli.Exit(fmt.Sprintf("server exited with error: %v", err), 1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return cli.Exit(fmt.Sprintf("shutdown failed: %v", err), 1)
		}
	}
	return nil
}

// loadConfig reads the config file named by --config (or DNSLY_CONFIG) and
// applies resolver flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(config.ResolveConfigPath(c.String("config")))
	if err != nil {
		return nil, err
	}
	if c.IsSet("server") {
		cfg.Resolver.Servers = []string{c.String("server")}
	}
	if c.IsSet("timeout") {
		cfg.Resolver.TimeoutSeconds = c.Int("timeout")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseTypes expands the --type value into record types, preserving order.
// ALL expands to every type except PTR.
func parseTypes(raw string) ([]lookup.RecordType, error) {
	if strings.EqualFold(strings.TrimSpace(raw), "ALL") {
		return lookup.AllTypes(), nil
	}
	var types []lookup.RecordType
	for _, part := range strings.Split(raw, ",") {
		rt, err := lookup.ParseRecordType(part)
		if err != nil {
			return nil, err
		}
		types = append(types, rt)
	}
	return types, nil
}

func validTypeList() string {
	names := make([]string, 0, len(lookup.AllTypes())+1)
	for _, rt := range lookup.AllTypes() {
		names = append(names, string(rt))
	}
	names = append(names, string(lookup.TypePTR))
	return strings.Join(names, ", ")
}
