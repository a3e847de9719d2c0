package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"asvsearch/internal/adapter/analyzer"
	"asvsearch/internal/adapter/search"
	"asvsearch/internal/server"
	"asvsearch/internal/usecase"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Start the ASV comparison HTTP API. The reference database is loaded from
.asv/reference.db when present, otherwise the bundled sample records are
used.

Examples:
  asvsearch serve
  asvsearch serve --port 9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
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

	port := cfg.Server.Port
	if servePort != "" {
		port = servePort
	}

	slog.Info("starting ASV comparison API",
		"port", port,
		"reference_sequences", db.Len(),
		"kmer_size", cfg.Kmer.Size,
	)

	app := server.New(queryUC, cfg.Server.CORSOrigins)
	if err := app.Listen(":" + port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
