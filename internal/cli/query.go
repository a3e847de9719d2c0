package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"asvsearch/internal/adapter/analyzer"
	"asvsearch/internal/adapter/fasta"
	"asvsearch/internal/adapter/search"
	"asvsearch/internal/usecase"
)

var (
	querySequence string
	queryFasta    string
	queryTopK     int
	queryJSON     bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Rank reference sequences against a query",
	Long: `Compare a sequence (or every sequence in a FASTA file) against the
reference database and print the most similar records.

Examples:
  asvsearch query -s TACGTAGGTGGCAAGCGTTGTCC...
  asvsearch query -f queries.fasta --top-k 3 --json`,
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVarP(&querySequence, "sequence", "s", "", "query sequence")
	queryCmd.Flags().StringVarP(&queryFasta, "fasta", "f", "", "FASTA file of query sequences")
	queryCmd.Flags().IntVarP(&queryTopK, "top-k", "k", 0, "number of results (default from config)")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output as JSON")
}

func runQuery(cmd *cobra.Command, args []string) error {
	if querySequence == "" && queryFasta == "" {
		return fmt.Errorf("either --sequence or --fasta is required")
	}
	if querySequence != "" && queryFasta != "" {
		return fmt.Errorf("cannot specify both --sequence and --fasta")
	}

	cfg := GetConfig()
	rootDir := GetRootDir()

	vectorizer := analyzer.NewKmerVectorizer(cfg.Kmer.Size)
	db, err := loadDatabase(cfg, rootDir, vectorizer)
	if err != nil {
		return err
	}

	queryUC := usecase.NewQueryUseCase(
		db,
		vectorizer,
		search.NewCosineRanker(cfg.Search.MaxTopK),
		cfg.Search.DefaultTopK,
		cfg.Search.MinScoreThreshold,
	)

	if querySequence != "" {
		result, err := queryUC.Query(querySequence, queryTopK)
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}

		if queryJSON {
			output, _ := json.MarshalIndent(result, "", "  ")
			fmt.Println(string(output))
			return nil
		}

		fmt.Printf("Found %d matches for %d-base query\n\n", result.MatchesFound, result.QueryLength)
		for i, r := range result.Results {
			fmt.Printf("--- [%d] %s/%s (score: %.4f) ---\n", i+1, r.SampleID, r.SequenceID, r.SimilarityScore)
			if r.Taxonomy != "" {
				fmt.Printf("    %s\n", r.Taxonomy)
			}
		}
		return nil
	}

	records, err := fasta.ParseFile(queryFasta)
	if err != nil {
		return err
	}

	batch, err := queryUC.QueryBatch(records, queryTopK)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if queryJSON {
		output, _ := json.MarshalIndent(batch, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	for _, entry := range batch.Results {
		fmt.Printf("%s (%d bases):\n", entry.QuerySequenceID, entry.QueryLength)
		for i, m := range entry.Matches {
			fmt.Printf("  [%d] %s/%s (score: %.4f)", i+1, m.SampleID, m.SequenceID, m.SimilarityScore)
			if m.Taxonomy != "" {
				fmt.Printf("  %s", m.Taxonomy)
			}
			fmt.Println()
		}
		fmt.Println()
	}
	return nil
}
