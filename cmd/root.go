package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "tablebook",
		Short: "Browse restaurants and book a table against a remote booking service",
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newRestaurantsCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newBookCmd())
	root.AddCommand(newFixtureCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
