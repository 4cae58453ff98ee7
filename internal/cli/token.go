package cli

import (
	"io"

	"session-booking/internal/pkg/clock"
	"session-booking/internal/pkg/jwt"

	"github.com/spf13/cobra"
)

func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage API access tokens",
	}
	cmd.AddCommand(newTokenIssueCommand(rootOpts))
	return cmd
}

func newTokenIssueCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		clientID string
		role     string
	)
	cmd := &cobra.Command{
		Use:   "issue --client-id ID [--role client|admin]",
		Short: "Mint an access token for a front-end service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.LoadConfig()
			if err != nil {
				return err
			}
			key, err := jwt.DeriveKey(cfg.JWT.Secret, jwt.AccessTokenKeyLabel)
			if err != nil {
				return err
			}
			token, err := jwt.NewService(key, cfg.JWT.Duration, cfg.JWT.Issuer, clock.NewRealClock()).
				GenerateToken(clientID, jwt.Role(role))
			if err != nil {
				return err
			}
			out := map[string]string{"clientId": clientID, "role": role, "token": token}
			return output(cmd.OutOrStdout(), rootOpts.Format, out, func(w io.Writer) {
				printf(w, "%s\n", token)
			})
		},
	}
	cmd.Flags().StringVar(&clientID, "client-id", "", "client identifier carried in the token")
	cmd.Flags().StringVar(&role, "role", string(jwt.RoleClient), "client or admin")
	_ = cmd.MarkFlagRequired("client-id")
	return cmd
}
