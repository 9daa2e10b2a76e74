// Package cli defines the roam command tree. Routing is the implicit
// default command: `roam "Los Angeles"` routes, while `roam garage ...` and
// `roam places ...` manage the profile stores.
package cli

import (
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"

	"roam/internal/config"
	"roam/internal/ports"
	"roam/internal/services"
)

// App bundles the wired dependencies the commands close over. main builds
// one from concrete adapters; tests build one from temp-dir stores and a
// mock provider.
type App struct {
	Config   *config.Config
	Garage   ports.GarageStore
	Places   ports.AddressBook
	Composer *services.Composer

	// NewProvider constructs the vendor API client lazily so the credential
	// is only resolved for commands that route.
	NewProvider func(apiKey string) (ports.RouteProvider, error)

	Out io.Writer
	Now func() time.Time
}

const rootLong = `Roam: the personal routing commander.

Calculate routes, manage your vehicle fleet, and save favorite places.

Examples:
  roam "Los Angeles"
  roam "Work" --with tesla
  roam "Las Vegas" -m two_wheeler -H --weather`

// NewRootCmd builds the command tree around the app's dependencies.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "roam <destination>",
		Short:         "Personal routing commander",
		Long:          rootLong,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Operational logging stays out of report output unless asked for.
			if !verbose {
				log.SetOutput(io.Discard)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return app.runRoute(cmd, args)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log external API timings to stderr.")

	registerRouteFlags(root)
	root.AddCommand(newGarageCmd(app))
	root.AddCommand(newPlacesCmd(app))

	return root
}
