package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"asvsearch/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "asvsearch",
	Short: "ASV Sequence Search - compare DNA sequences against a reference database",
	Long: `asvsearch compares amplicon sequence variants (ASVs) against a reference
database of labeled sequences using k-mer frequency vectorization and cosine
similarity.

Example usage:
  asvsearch build ./refs          # Build the reference database from FASTA files
  asvsearch query -s ATCGATCG...  # Rank references against a sequence
  asvsearch serve                 # Run the HTTP API
  asvsearch info                  # Show database summary`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./asv.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
