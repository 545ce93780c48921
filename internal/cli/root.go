package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	client "github.com/peteraglen/pwnboard-go-client"
	"github.com/peteraglen/pwnboard-go-client/internal/config"
	"github.com/peteraglen/pwnboard-go-client/internal/logger"
)

// Version information, set at build time via -ldflags.
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// annotationClient marks commands that talk to the Pwnboard server and need
// configuration and a client.
const annotationClient = "pwnboard/client"

type app struct {
	envPath string
	logOut  io.Writer
	log     *zap.SugaredLogger
	client  *client.Client
}

// NewRootCmd builds the pwnboard command tree. Logs are written to stderr.
func NewRootCmd() *cobra.Command {
	return newRootCmd(os.Stderr)
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	a := &app{logOut: logOut}

	rootCmd := &cobra.Command{
		Use:   "pwnboard",
		Short: "Report box access, credentials and events to a Pwnboard server",
		Long: `pwnboard sends reports to a Pwnboard scoreboard during an exercise.

The server is taken from --uri or the PWNBOARD_URI environment variable,
which may also be set in a .env file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(_ *cobra.Command, _ []string) { a.teardown() },
	}

	flags := rootCmd.PersistentFlags()
	flags.String("uri", "", "Pwnboard base URI, without trailing slash")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.Duration("timeout", 10*time.Second, "Request timeout")
	flags.String("user-agent", "", "User-Agent header sent with each request")
	flags.StringVar(&a.envPath, "env", "./.env", "Path to .env file")

	rootCmd.AddCommand(newBoxAccessCmd(a))
	rootCmd.AddCommand(newCredentialCmd(a))
	rootCmd.AddCommand(newLogCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if _, ok := cmd.Annotations[annotationClient]; !ok {
		return nil
	}

	cfg, err := config.Load(a.envPath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	a.log = logger.New(cfg.LogLevel, zapcore.AddSync(a.logOut))

	c, err := client.New(cfg.URI,
		client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		client.WithRequestLogger(a.log),
		client.WithUserAgent(cfg.UserAgent),
	)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	a.client = c
	a.log.Debugw("client ready", "uri", cfg.URI, "timeout", cfg.Timeout)

	return nil
}

func (a *app) teardown() {
	a.client.Close()

	if a.log != nil {
		_ = a.log.Sync()
	}
}

// report prints the response status and body. The library returns error
// statuses as plain responses; the CLI turns them into a failing exit code.
func (a *app) report(cmd *cobra.Command, resp *resty.Response, err error) error {
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", resp.StatusCode(), resp.String())

	if resp.IsError() {
		a.log.Warnw("pwnboard rejected report", "status", resp.StatusCode(), "url", resp.Request.URL)
		return fmt.Errorf("pwnboard returned HTTP %d", resp.StatusCode())
	}

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of pwnboard",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pwnboard version %s (commit: %s)\n", Version, GitCommit)
		},
	}
}
