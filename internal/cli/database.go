package cli

import (
	"fmt"
	"os"

	"asvsearch/config"
	"asvsearch/internal/adapter/refdb"
	"asvsearch/internal/adapter/store"
	"asvsearch/internal/port"
)

// loadDatabase returns the reference database for read commands: the
// prebuilt store when one exists, otherwise a database built from the
// bundled sample records (the original service behaved the same way when no
// saved database was found).
func loadDatabase(cfg *config.Config, rootDir string, v port.Vectorizer) (*refdb.Database, error) {
	dbPath := config.DBPath(rootDir)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return refdb.New(v, refdb.BuiltinSamples())
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference db: %w", err)
	}
	defer st.Close()

	storedK, err := st.KmerSize()
	if err != nil {
		return nil, err
	}
	if storedK != 0 && storedK != cfg.Kmer.Size {
		return nil, fmt.Errorf("reference db was built with k=%d but config uses k=%d; run 'asvsearch build' again", storedK, cfg.Kmer.Size)
	}

	records, err := st.LoadRecords()
	if err != nil {
		return nil, fmt.Errorf("failed to load reference records: %w", err)
	}
	if len(records) == 0 {
		return refdb.New(v, refdb.BuiltinSamples())
	}

	return refdb.FromRecords(records, cfg.Kmer.Size), nil
}
