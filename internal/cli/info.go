package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"asvsearch/internal/adapter/analyzer"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show reference database summary",
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output as JSON")
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	rootDir := GetRootDir()

	vectorizer := analyzer.NewKmerVectorizer(cfg.Kmer.Size)
	db, err := loadDatabase(cfg, rootDir, vectorizer)
	if err != nil {
		return err
	}

	info := db.Info()

	if infoJSON {
		output, _ := json.MarshalIndent(info, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Reference database:\n")
	fmt.Printf("  Sequences:        %d\n", info.TotalSequences)
	fmt.Printf("  Samples:          %d (%s)\n", info.UniqueSamples, strings.Join(info.SampleIDs, ", "))
	fmt.Printf("  Distinct taxa:    %d\n", info.DistinctTaxa)
	fmt.Printf("  K-mer size:       %d\n", info.KmerSize)
	fmt.Printf("  Vector dimension: %d\n", info.VectorDimension)
	return nil
}
