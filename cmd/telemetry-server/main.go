package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleetworks/vehicle-telemetry/internal/api"
	"github.com/fleetworks/vehicle-telemetry/internal/db"
	"github.com/fleetworks/vehicle-telemetry/internal/log"
)

var (
	dbPath   string
	database *db.Database
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "telemetry-server",
		Short: "Reference vehicle telemetry server",
		Long: `A reference implementation of the vehicle telemetry API: stores sensor
readings and vehicle statuses in SQLite and serves the endpoints consumed by
the telemetry client.`,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "vehicle_data.db", "Path to SQLite database")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(registerCmd())
	rootCmd.AddCommand(vehiclesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openDB() error {
	var err error
	database, err = db.New(dbPath)
	return err
}

func serveCmd() *cobra.Command {
	var port int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the telemetry API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.LevelDebug)
			}
			if err := openDB(); err != nil {
				return fmt.Errorf("database error: %w", err)
			}
			defer database.Close()

			server := api.NewServer(database)
			addr := fmt.Sprintf(":%d", port)
			log.Info("Serving telemetry API on %s (database: %s)", addr, dbPath)
			return http.ListenAndServe(addr, server.Router())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8000, "Server port")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debugging messages")
	return cmd
}

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register SERIAL",
		Short: "Register a vehicle directly in the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openDB(); err != nil {
				return fmt.Errorf("database error: %w", err)
			}
			defer database.Close()

			if err := database.RegisterVehicle(args[0]); err != nil {
				return err
			}
			fmt.Printf("Registered vehicle %s\n", args[0])
			return nil
		},
	}
}

func vehiclesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vehicles",
		Short: "List registered vehicles and their statuses",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openDB(); err != nil {
				return fmt.Errorf("database error: %w", err)
			}
			defer database.Close()

			serials, err := database.Vehicles()
			if err != nil {
				return err
			}
			for _, serial := range serials {
				status, err := database.VehicleStatus(serial)
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%s\n", serial, status)
			}
			return nil
		},
	}
}
