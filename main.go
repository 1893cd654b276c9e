package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "crossword-solver",
		Short: "Analytics service for crossword solver benchmarking",
		Long: `crossword-solver scores solver output against reference puzzles,
records per-run metrics in a local DuckDB database and serves
aggregated statistics and algorithm rankings over HTTP.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print aggregated statistics and insights for stored runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport()
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored run records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear()
		},
	}

	rootCmd.AddCommand(serveCmd, reportCmd, clearCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openStorage(cfg *Config) (*DuckDBStorage, error) {
	storage, err := NewDuckDBStorage(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Printf("DuckDB storage initialized at: %s", cfg.DBPath)
	return storage, nil
}

func runServe() error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	storage, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	// ClickHouse mirror is optional: skip entirely when unconfigured.
	var mirror *MetricsMirror
	if cfg.ClickHouse.Host != "" {
		conn, err := OpenClickHouse(cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("failed to connect to ClickHouse: %w", err)
		}
		if err := conn.Ping(context.Background()); err != nil {
			log.Printf("Warning: ClickHouse ping failed: %v", err)
		} else {
			log.Println("Successfully connected to ClickHouse")
		}

		mirror, err = NewMetricsMirror(context.Background(), conn)
		if err != nil {
			return fmt.Errorf("failed to prepare ClickHouse mirror: %w", err)
		}
	} else {
		log.Println("CLICKHOUSE_HOST not set, metrics mirror disabled")
	}

	backend := NewBackendClient(cfg.BackendURL, cfg.BackendTimeout)
	log.Printf("Using solver backend at %s", cfg.BackendURL)

	server := NewServer(storage, backend, mirror)

	log.Printf("Starting server on http://localhost:%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, server.Router()); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func runReport() error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	storage, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	records, err := storage.GetAll()
	if err != nil {
		return err
	}
	records = DeduplicateRecords(records)
	if len(records) == 0 {
		fmt.Println("No run records stored yet.")
		return nil
	}

	fmt.Printf("%d run record(s)\n\n", len(records))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "ALGORITHM\tRUNS\tAVG TIME (s)\tAVG MEMORY (KB)\tAVG ACCURACY\tAVG WORD ACC\tSIZES")
	summaries := AggregateByAlgorithm(records)
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%.4f\t%.1f\t%.1f%%\t%.1f%%\t%v\n",
			s.Algorithm, s.Count, s.AvgExecutionTime, s.AvgMemoryUsage,
			s.AvgAccuracy*100, s.AvgWordAccuracy*100, s.Sizes)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "SIZE\tRUNS\tAVG TIME (s)\tAVG MEMORY (KB)\tAVG ACCURACY")
	for _, s := range AggregateBySize(records) {
		fmt.Fprintf(w, "%dx%d\t%d\t%.4f\t%.1f\t%.1f%%\n",
			s.Size, s.Size, s.Count, s.AvgExecutionTime, s.AvgMemoryUsage, s.AvgAccuracy*100)
	}
	fmt.Fprintln(w)
	w.Flush()

	ranking := RankAlgorithms(summaries)
	for _, insight := range Insights(ranking, len(summaries)) {
		if insight != "" {
			fmt.Println("- " + insight)
		}
	}
	return nil
}

func runClear() error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	storage, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer storage.Close()

	if err := storage.Clear(); err != nil {
		return err
	}
	fmt.Println("All run records deleted.")
	return nil
}
