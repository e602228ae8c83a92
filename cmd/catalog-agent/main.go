package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JoannaDrx/Catalog/pkg/version"
)

var configFilePath string
var debug bool

var rootCmd = &cobra.Command{
	Use:     "catalog-agent",
	Short:   "Maintain the project data catalog",
	Long:    "Catalog agent crawls an object-store prefix, classifies the artifacts it finds into datasets and arrays, and maintains the persisted catalog downstream consumers read.",
	Version: fmt.Sprintf("gitVersion=%s, gitCommit=%s", version.GitVersion, version.GitCommit),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")

	rootCmd.AddCommand(newCreateCommand())
	rootCmd.AddCommand(newUpdateCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newDownloadCommand())
}
