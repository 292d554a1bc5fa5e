package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tbourn/nc-news/internal/repo"
	"github.com/tbourn/nc-news/internal/seed"
)

var dataset string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Drop, recreate and seed the database",
	Long: `Drops every table, recreates the schema and inserts one of the embedded
datasets. All existing data is lost.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := seed.Load(dataset)
		if err != nil {
			return err
		}
		db, err := repo.Open(storeOptions(cfg))
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer closeDB(db)

		if err := seed.Run(cmd.Context(), db, ds); err != nil {
			return err
		}
		log.Info().
			Str("dataset", dataset).
			Int("topics", len(ds.Topics)).
			Int("users", len(ds.Users)).
			Int("articles", len(ds.Articles)).
			Int("comments", len(ds.Comments)).
			Msg("database seeded")
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&dataset, "dataset", seed.Development, "dataset to load: test or development")
}
