package main

import (
	"context"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/umbra-sharding/umbra/pkg"
	"github.com/umbra-sharding/umbra/pkg/config"
	"github.com/umbra-sharding/umbra/pkg/conn"
	"github.com/umbra-sharding/umbra/pkg/umbralog"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "umbra",
	Short: "umbra",
	Long:  "umbra is a shadow-database statement routing middleware",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "/etc/umbra/config.yaml", "path to config file")
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print umbra version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(pkg.UmbraVersionRevision)
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "load the config and print parsed datasource metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(cfgPath); err != nil {
			return err
		}
		cfg := config.Get()
		if err := umbralog.UpdateZeroLogLevel(cfg.LogLevel); err != nil {
			return err
		}

		for _, tgt := range []struct {
			role string
			ds   *config.DataSourceCfg
		}{
			{"shadow", cfg.DataSources.Shadow},
			{"actual", cfg.DataSources.Actual},
		} {
			md, err := tgt.ds.Metadata()
			if err != nil {
				return err
			}
			fmt.Printf("%s: host=%s port=%d catalog=%s schema=%s\n",
				tgt.role, md.HostName(), md.Port(), md.Catalog(), md.Schema())
		}
		return nil
	},
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "open both physical targets and ping them",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(cfgPath); err != nil {
			return err
		}
		cfg := config.Get()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		open := func(ds *config.DataSourceCfg) (conn.DBConn, error) {
			md, err := ds.Metadata()
			if err != nil {
				return nil, err
			}
			dsn := fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=disable",
				md.HostName(), md.Port(), md.Catalog(), ds.ConnUsr, ds.Passwd)
			return conn.NewSQLConn("postgres", dsn, md.HostName())
		}

		shadow, err := open(cfg.DataSources.Shadow)
		if err != nil {
			return err
		}
		defer func() { _ = shadow.Close() }()

		actual, err := open(cfg.DataSources.Actual)
		if err != nil {
			return err
		}
		defer func() { _ = actual.Close() }()

		pair := conn.NewPair(shadow, actual)
		for _, tgt := range []struct {
			role string
			c    conn.DBConn
		}{
			{"shadow", pair.ShadowConn()},
			{"actual", pair.ActualConn()},
		} {
			if err := tgt.c.Ping(ctx); err != nil {
				return fmt.Errorf("ping %s target %s: %w", tgt.role, tgt.c.Hostname(), err)
			}
			umbralog.Zero.Info().Str("role", tgt.role).Str("host", tgt.c.Hostname()).Msg("target reachable")
		}
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		umbralog.Zero.Fatal().Err(err).Msg("umbra failed")
	}
}
