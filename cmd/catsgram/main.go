package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title           Catsgram API
// @version         1.0
// @description     Users and their posts with sorted, paginated listing.

// @host      localhost:8080
// @BasePath  /

// @tag.name users
// @tag.description User registration and profile updates

// @tag.name posts
// @tag.description Publishing, editing and listing posts

func main() {
	serve := serveCmd()

	rootCmd := &cobra.Command{
		Use:           "catsgram",
		Short:         "Catsgram backend",
		RunE:          serve.RunE,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(serve, migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
