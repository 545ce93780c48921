package cli

import (
	"github.com/spf13/cobra"

	client "github.com/peteraglen/pwnboard-go-client"
)

// Optional report fields are sent only when their flag is given on the
// command line, so an explicitly empty value still reaches the server.

func newBoxAccessCmd(a *app) *cobra.Command {
	var (
		ips        []string
		accessType string
		message    string
	)

	cmd := &cobra.Command{
		Use:         "boxaccess IP APPLICATION",
		Aliases:     []string{"access"},
		Short:       "Report access to a box",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{annotationClient: ""},
		RunE:        func(cmd *cobra.Command, args []string) error {
			var opts []client.BoxAccessOption

			if cmd.Flags().Changed("ips") {
				opts = append(opts, client.WithIPs(ips...))
			}
			if cmd.Flags().Changed("access-type") {
				opts = append(opts, client.WithAccessType(accessType))
			}
			if cmd.Flags().Changed("message") {
				opts = append(opts, client.WithAccessMessage(message))
			}

			resp, err := a.client.ReportBoxAccess(cmd.Context(), args[0], args[1], opts...)
			return a.report(cmd, resp, err)
		},
	}

	cmd.Flags().StringSliceVar(&ips, "ips", nil, "Further addresses of the box (comma separated)")
	cmd.Flags().StringVar(&accessType, "access-type", "", "How the box was accessed")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Free-form message")

	return cmd
}

func newCredentialCmd(a *app) *cobra.Command {
	var (
		username string
		message  string
	)

	cmd := &cobra.Command{
		Use:         "credential IP SERVICE PASSWORD",
		Aliases:     []string{"cred"},
		Short:       "Report a captured credential",
		Args:        cobra.ExactArgs(3),
		Annotations: map[string]string{annotationClient: ""},
		RunE:        func(cmd *cobra.Command, args []string) error {
			var opts []client.CredentialOption

			if cmd.Flags().Changed("username") {
				opts = append(opts, client.WithUsername(username))
			}
			if cmd.Flags().Changed("message") {
				opts = append(opts, client.WithCredentialMessage(message))
			}

			resp, err := a.client.ReportCredential(cmd.Context(), args[0], args[1], args[2], opts...)
			return a.report(cmd, resp, err)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username for the credential")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Free-form message")

	return cmd
}

func newLogCmd(a *app) *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:         "log IP SERVICE MESSAGE",
		Short:       "Send a log event for a service",
		Args:        cobra.ExactArgs(3),
		Annotations: map[string]string{annotationClient: ""},
		RunE:        func(cmd *cobra.Command, args []string) error {
			var opts []client.LogOption

			if cmd.Flags().Changed("level") {
				l, err := client.ParseLogLevel(level)
				if err != nil {
					return err
				}
				opts = append(opts, client.WithLevel(l))
			}

			resp, err := a.client.Log(cmd.Context(), args[0], args[2], args[1], opts...)
			return a.report(cmd, resp, err)
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "", "Event level (loot, info, warn, error)")

	return cmd
}
