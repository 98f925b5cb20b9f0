package main

import (
	"fmt"
	"time"

	"github.com/jekabolt/grbpwr-stats/config"
	"github.com/jekabolt/grbpwr-stats/internal/auth/jwt"
	"github.com/spf13/cobra"
)

// tokenCmd issues a bearer token for local testing of the report endpoints.
func tokenCmd() *cobra.Command {
	var (
		sub  string
		shop string
		ttl  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed JWT for the statistics API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("cannot load a config %v", err.Error())
			}
			if sub == "" && shop == "" {
				return fmt.Errorf("either --sub or --shop is required")
			}
			if ttl == 0 {
				ttl = cfg.Auth.JWTTTL
			}
			token, err := jwt.NewToken(jwt.New(cfg.Auth.JWTSecret), ttl, sub, shop)
			if err != nil {
				return fmt.Errorf("cannot issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&sub, "sub", "", "token subject (shop owner id)")
	cmd.Flags().StringVar(&shop, "shop", "", "shop id claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to auth.jwt_ttl)")
	return cmd
}
