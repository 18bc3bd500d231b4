package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "finctl",
		Short: "Fortuna personal finance from the terminal",
		Long: `finctl talks to the Fortuna finance API with the same client layer as the
web app: sign in once, then inspect recurring expenses, spending per category
and the monthly dashboard.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.finctl.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "base URL of the finance API")
	rootCmd.PersistentFlags().Duration("timeout", 15*time.Second, "API request timeout")
	rootCmd.PersistentFlags().String("session-file", "", "where the sign-in is kept (default: $XDG_DATA_HOME/fortuna/session.json)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	// Bind flags to viper
	_ = viper.BindPFlag("api_url", rootCmd.PersistentFlags().Lookup("api-url"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("session_file", rootCmd.PersistentFlags().Lookup("session-file"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	// Add commands
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(recurringCmd())
	rootCmd.AddCommand(expensesCmd())
	rootCmd.AddCommand(dashboardCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".finctl")
		viper.SetConfigType("yaml")
	}

	// Environment variables (FINCTL_API_URL, FINCTL_TIMEOUT, ...)
	viper.SetEnvPrefix("FINCTL")
	viper.AutomaticEnv()

	// Config file not found is OK, flags and env still apply
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return setupLogging(viper.GetString("log_level"))
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", level)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	return nil
}

// sessionFilePath resolves the configured session file
func sessionFilePath() (string, error) {
	if path := viper.GetString("session_file"); path != "" {
		return filepath.Clean(os.ExpandEnv(path)), nil
	}
	return defaultSessionFile()
}
