package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/de-tools/profit-atlas/pkg/server"
	reportsvc "github.com/de-tools/profit-atlas/pkg/services/report"
	"github.com/de-tools/profit-atlas/pkg/store/costcfg"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultRatesURL = "https://api.frankfurter.app/latest?from=EUR&to=USD"

var (
	cfgPath   string
	costsPath string
	ratesURL  string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Profit Atlas",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.profitatlas", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the source profiles file (default is $HOME/.profitatlas)")
	rootCmd.Flags().StringVar(&costsPath, "costs", "costs.yaml",
		"Path to the cost configuration YAML file")
	rootCmd.Flags().StringVar(&ratesURL, "rates-url", defaultRatesURL,
		"EUR/USD rate endpoint")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	reports, err := reportsvc.NewFactory(ratesURL).Create(ctx, cfgPath, costsPath)
	if err != nil {
		return err
	}

	logger.Info().Msgf("Source profiles found at `%s` successfully loaded.", cfgPath)

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Reports: reports,
			Config:  costcfg.NewStore(costsPath),
			Logger:  logger,
		},
	})

	return api.Start()
}
