package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/table-booker/internal/booking"
	"github.com/example/table-booker/internal/config"
	"github.com/example/table-booker/internal/dining"
	"github.com/example/table-booker/internal/gateway"
	"github.com/example/table-booker/internal/session"
)

func newBookCmd() *cobra.Command {
	var draft dining.BookingDraft

	cmd := &cobra.Command{
		Use:   "book <restaurant-id>",
		Short: "Request a table booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), cfg.GatewayTimeout)
			defer cancel()

			gw := gateway.New(cfg.GatewayBaseURL, cfg.GatewayTimeout)

			settled := make(chan struct{}, 1)
			sess := session.New(gw, cfg.DebounceWindow, func() {
				select {
				case settled <- struct{}{}:
				default:
				}
			})
			defer sess.Close()

			sess.Selection.Select(ctx, args[0])
			wf := sess.Selection.Workflow
			wf.UpdateDraft(func(d *dining.BookingDraft) { *d = draft })

			if !wf.Submit(ctx) {
				return errors.New("a booking attempt is already in flight")
			}
			for wf.Phase() == booking.PhaseSubmitting {
				select {
				case <-settled:
				case <-ctx.Done():
					return ctx.Err()
				}
			}

			if wf.Phase() == booking.PhaseSucceeded {
				fmt.Println(booking.MsgSubmitSucceeded)
				return nil
			}
			return errors.New(wf.Reason())
		},
	}

	cmd.Flags().StringVar(&draft.Name, "name", "", "guest name")
	cmd.Flags().StringVar(&draft.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&draft.Phone, "phone", "", "contact phone, digits only")
	cmd.Flags().StringVar(&draft.Date, "date", "", "booking date, YYYY-MM-DD")
	cmd.Flags().StringVar(&draft.Time, "time", "", "booking time, HH:MM")
	cmd.Flags().IntVar(&draft.Guests, "guests", 1, "party size (1-12)")
	return cmd
}
