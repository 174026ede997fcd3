package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/myhalal/directory/internal/store"
)

var migrateSkipSeed bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schema and seed the initial catalog",
	Long:  "Creates the places and blacklist tables if missing, then loads the bundled catalog into an empty places table.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		if err := st.Migrate(ctx); err != nil {
			return eris.Wrap(err, "migrate store")
		}
		zap.L().Info("schema up to date", zap.String("driver", cfg.Store.Driver))

		if migrateSkipSeed {
			return nil
		}

		seeded, err := st.EnsureSeeded(ctx, store.SeedPlaces)
		if err != nil {
			return eris.Wrap(err, "seed catalog")
		}
		if seeded {
			zap.L().Info("seeded catalog", zap.Int("places", len(store.SeedPlaces)))
		} else {
			zap.L().Info("catalog already populated, seed skipped")
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateSkipSeed, "no-seed", false, "create the schema without seeding the catalog")
	rootCmd.AddCommand(migrateCmd)
}
