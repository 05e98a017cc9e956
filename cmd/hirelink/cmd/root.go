package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "hirelink",
	Short: "HireLink is a local applicant-tracking tool",
	Long: `hirelink is a single-user applicant-tracking tool. Candidates apply
to open positions through a multi-step submission workflow; recruiters move
candidates through the hiring pipeline (Applied, Reviewed, Interview
Scheduled, Offer Sent), score and annotate them, schedule interviews and
draft offer letters.

All data lives in a local data directory; nothing leaves the machine.

Common workflows:

  List open positions:
    hirelink jobs

  Submit an application:
    hirelink apply 1 --name "Jane Doe" --email jane@x.com --phone 555-123-4567 \
      --years 3 --skills go,sql --resume resume.pdf

  Review the pipeline:
    hirelink list --stage applied

  Move a candidate along:
    hirelink move APP_123 reviewed
    hirelink schedule APP_123 --date 2026-09-15 --time 14:00
    hirelink offer APP_123 --job-title "Senior Frontend Engineer" --salary 120000 --start-date 2026-10-01

Configuration:
  Settings come from flags, a config file or environment variables:
    HIRELINK_DATA_DIR     data directory (default: ~/.hirelink)
    HIRELINK_STORAGE      storage driver, "file" or "sqlite" (default: file)
    HIRELINK_LOG_LEVEL    debug, info, warn or error (default: info)`,
}

func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".hirelink"
		viper.AddConfigPath(home)
		viper.SetConfigName(".hirelink")
		viper.SetConfigType("yaml")
	}

	// Read environment variables that match "HIRELINK_VARNAME"
	viper.SetEnvPrefix("HIRELINK")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hirelink.yaml)")

	rootCmd.PersistentFlags().String("data-dir", "", "data directory (default is $HOME/.hirelink)")
	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))

	rootCmd.PersistentFlags().String("storage", "", "storage driver: file or sqlite")
	viper.BindPFlag("storage", rootCmd.PersistentFlags().Lookup("storage"))

	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}
