package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/table-booker/internal/config"
	"github.com/example/table-booker/internal/gateway"
	"github.com/example/table-booker/internal/internaltypes"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <restaurant-id>",
		Short: "Show detail for one restaurant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), cfg.GatewayTimeout)
			defer cancel()

			gw := gateway.New(cfg.GatewayBaseURL, cfg.GatewayTimeout)
			d, err := gw.FetchRestaurantDetail(ctx, args[0])
			if errors.Is(err, internaltypes.ErrNotFound) {
				fmt.Println("No details available.")
				return nil
			}
			if err != nil {
				return errors.New("failed to load restaurant details")
			}

			fmt.Printf("%s - Restaurant Details\n", d.Name)
			fmt.Printf("Cuisine: %s\n", orNA(d.Cuisine))
			fmt.Printf("Address: %s\n", orNA(d.Address))
			fmt.Printf("Opening Hours (Weekday): %s\n", orNA(d.OpeningHours.Weekday))
			fmt.Printf("Opening Hours (Weekend): %s\n", orNA(d.OpeningHours.Weekend))
			fmt.Printf("Review Score: %.1f\n", d.ReviewScore)
			fmt.Printf("Contact: %s\n", orNA(d.ContactEmail))
			return nil
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return "Not available"
	}
	return s
}
