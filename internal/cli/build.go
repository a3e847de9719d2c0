package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"asvsearch/config"
	"asvsearch/internal/adapter/analyzer"
	"asvsearch/internal/adapter/fasta"
	"asvsearch/internal/adapter/fs"
	"asvsearch/internal/adapter/refdb"
	"asvsearch/internal/adapter/store"
)

var buildTaxonomyFile string

var buildCmd = &cobra.Command{
	Use:   "build [path]",
	Short: "Build the reference database from FASTA files",
	Long: `Scan a directory for FASTA files, vectorize every sequence and persist the
resulting reference database under .asv/reference.db. Later serve/query/info
invocations load the precomputed vectors instead of rebuilding.

A taxonomy mapping file (YAML, sequence id to taxonomy string) can be given
with --taxonomy or configured as reference.taxonomy_file.

Examples:
  asvsearch build ./references
  asvsearch build ./references --taxonomy taxonomy.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildTaxonomyFile, "taxonomy", "", "YAML file mapping sequence ids to taxonomy strings")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	rootDir := GetRootDir()

	path := rootDir
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	taxonomyFile := buildTaxonomyFile
	if taxonomyFile == "" {
		taxonomyFile = cfg.Reference.TaxonomyFile
	}
	taxonomy := map[string]string{}
	if taxonomyFile != "" {
		taxonomy, err = fasta.LoadTaxonomy(taxonomyFile)
		if err != nil {
			return err
		}
	}

	walker := fs.NewWalker(cfg.Reference.Includes, cfg.Reference.Excludes)

	fmt.Printf("Scanning %s...\n", path)
	files, err := walker.Walk(path)
	if err != nil {
		return fmt.Errorf("failed to scan for FASTA files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no FASTA files found under %s", path)
	}

	var samples []refdb.SampleRecord
	for _, file := range files {
		records, err := fasta.ParseFile(file)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		for _, rec := range records {
			samples = append(samples, refdb.SampleRecord{
				SampleID:   cfg.Reference.SampleID,
				SequenceID: rec.ID,
				Sequence:   rec.Sequence,
				Taxonomy:   taxonomy[rec.ID],
			})
		}
	}

	bar := progressbar.NewOptions(len(samples),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Vectorizing[reset]"),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	vectorizer := analyzer.NewKmerVectorizer(cfg.Kmer.Size)
	db, err := refdb.NewWithProgress(vectorizer, samples, func(done, total int) {
		bar.Set(done)
	})
	if err != nil {
		return fmt.Errorf("failed to build database: %w", err)
	}

	if err := config.EnsureDataDir(rootDir); err != nil {
		return fmt.Errorf("failed to create .asv directory: %w", err)
	}

	st, err := store.NewBoltStore(config.DBPath(rootDir))
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.PutRecords(db.Records()); err != nil {
		return fmt.Errorf("failed to persist reference records: %w", err)
	}
	if err := st.PutKmerSize(cfg.Kmer.Size); err != nil {
		return err
	}

	dbInfo := db.Info()
	fmt.Printf("\nBuild complete:\n")
	fmt.Printf("  FASTA files:      %d\n", len(files))
	fmt.Printf("  Sequences:        %d\n", dbInfo.TotalSequences)
	fmt.Printf("  Distinct taxa:    %d\n", dbInfo.DistinctTaxa)
	fmt.Printf("  Vector dimension: %d\n", dbInfo.VectorDimension)
	fmt.Printf("\nDatabase stored at: %s\n", config.DBPath(rootDir))
	return nil
}
