package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/table-booker/internal/config"
	"github.com/example/table-booker/internal/gateway"
	"github.com/example/table-booker/internal/listview"
)

func newRestaurantsCmd() *cobra.Command {
	var query string
	var sortKey string

	cmd := &cobra.Command{
		Use:   "restaurants",
		Short: "List restaurants, optionally filtered and sorted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			key := listview.SortKey(sortKey)
			if key != listview.SortByName && key != listview.SortByRating {
				return fmt.Errorf("unknown sort key: %s (want name or rating)", sortKey)
			}

			ctx, cancel := context.WithTimeout(context.Background(), cfg.GatewayTimeout)
			defer cancel()

			gw := gateway.New(cfg.GatewayBaseURL, cfg.GatewayTimeout)
			rs, err := gw.FetchRestaurants(ctx)
			if err != nil {
				return fmt.Errorf("failed to load restaurants, please try again later: %w", err)
			}

			for _, r := range listview.DeriveView(rs, query, key) {
				fmt.Printf("%s\t%.1f\t%s\t%s\n", r.ID, r.Rating, r.Name, r.ShortDescription)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "case-insensitive name filter")
	cmd.Flags().StringVar(&sortKey, "sort", "name", "sort key: name or rating")
	return cmd
}
