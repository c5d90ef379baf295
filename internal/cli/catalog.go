package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/langgame/internal/catalogdb"
)

func catalogCmd(gf *globalFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "catalog",
		Short: "Build the catalog and print per-language word counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap(*gf)
			if err != nil {
				return err
			}
			cat, err := prepareCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tBASE\tNAME\tWORDS")
			for _, s := range cat.Stats() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", s.Code, s.Base, s.Name, s.Words)
			}
			fmt.Fprintf(tw, "\n%d languages\n", cat.Len())
			return tw.Flush()
		},
	}
	c.AddCommand(exportCmd(gf))
	return c
}

func exportCmd(gf *globalFlags) *cobra.Command {
	var dbPath string

	c := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog to a SQLite database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap(*gf)
			if err != nil {
				return err
			}
			cat, err := prepareCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			db, err := catalogdb.Open(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := catalogdb.Migrate(db); err != nil {
				return err
			}
			if err := catalogdb.Export(cmd.Context(), db, cat); err != nil {
				return fmt.Errorf("export: %w", err)
			}

			log.Info().Str("db", dbPath).Int("languages", cat.Len()).Msg("catalog exported")
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d languages to %s\n", cat.Len(), dbPath)
			return nil
		},
	}

	c.Flags().StringVar(&dbPath, "db", "", "SQLite database path (required)")
	_ = c.MarkFlagRequired("db")
	return c
}
