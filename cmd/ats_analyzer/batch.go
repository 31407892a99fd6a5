package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch <resume-dir>",
	Short: "Score every resume in a directory",
	Long:  "Score all supported resumes (PDF, DOCX, LaTeX, plain text) in a directory concurrently against the same optional job description. One failing file never aborts the batch.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

var (
	batchJobFile     string
	batchJobURL      string
	batchOutputDir   string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchJobFile, "job", "j", "", "Path to a job description text file")
	batchCmd.Flags().StringVar(&batchJobURL, "job-url", "", "URL of a job posting to fetch the description from")
	batchCmd.Flags().StringVar(&batchOutputDir, "out-dir", "", "Directory for per-resume JSON reports (default: no reports written)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum number of resumes scored at once")

	rootCmd.AddCommand(batchCmd)
}

// batchResult is the outcome for one resume in the batch.
type batchResult struct {
	Filename string
	Report   *types.ScoringReport
	Err      error
}

func runBatch(_ *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if batchJobFile != "" {
		settings.Job = batchJobFile
	}
	if batchJobURL != "" {
		settings.JobURL = batchJobURL
	}
	if settings.Job != "" && settings.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}
	if batchConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1")
	}

	log, err := buildLogger(settings)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	ctx := context.Background()

	client, err := newLLMClient(ctx, settings, log)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close() //nolint:errcheck
	}

	jobDescription, err := loadJobDescription(ctx, settings, log)
	if err != nil {
		return err
	}

	files, err := listResumeFiles(args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no supported resume files found in %s", args[0])
	}

	if batchOutputDir != "" {
		if err := os.MkdirAll(batchOutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	var (
		mu      sync.Mutex
		results []batchResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for _, path := range files {
		g.Go(func() error {
			res := batchResult{Filename: filepath.Base(path)}

			doc, err := readDocument(path)
			if err != nil {
				res.Err = err
			} else {
				res.Report, _, _, res.Err = scoreDocument(gctx, doc, jobDescription, client, log)
			}

			if res.Err == nil && batchOutputDir != "" {
				res.Err = writeBatchReport(batchOutputDir, res.Filename, res.Report)
			}

			mu.Lock()
			results = append(results, res)
			mu.Unlock()

			// Per-file failures are reported in the summary, never
			// propagated to the group.
			return nil
		})
	}

	_ = g.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Filename < results[j].Filename })

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			_, _ = fmt.Fprintf(os.Stdout, "%-40s ERROR: %v\n", res.Filename, res.Err)
			continue
		}
		_, _ = fmt.Fprintf(os.Stdout, "%-40s %5.1f/100  %s\n", res.Filename, res.Report.TotalScore, res.Report.Rating)
	}

	_, _ = fmt.Fprintf(os.Stdout, "\nScored %d of %d resumes\n", len(results)-failed, len(results))
	if failed > 0 {
		return fmt.Errorf("%d of %d resumes failed", failed, len(results))
	}
	return nil
}

// listResumeFiles returns the supported resume files directly inside dir,
// sorted by name.
func listResumeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if contentTypeForExt(filepath.Ext(entry.Name())) == "" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func writeBatchReport(dir, filename string, report *types.ScoringReport) error {
	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	outPath := filepath.Join(dir, base+".report.json")
	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
