package publish

import (
	"context"
	"flag"
	"fmt"
	"os"

	"salsite/internal/s3uri"
	"salsite/internal/shared/config"
	"salsite/internal/shared/s3client"
	"salsite/internal/shared/ui"
	"salsite/internal/storage"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("sync", flag.ContinueOnError)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: salsite sync [flags] [<local-dir>] [s3://bucket]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Upload an already-generated site directory to the topic bucket.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  salsite sync")
	fmt.Fprintln(os.Stderr, "  salsite sync -v website s3://sal-topic-registry")
	fmt.Fprintln(os.Stderr, "  salsite sync -cli /tmp/website")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	fs.PrintDefaults()
}

func Run(args []string) int {
	fs := newFlagSet()
	verbose := fs.Bool("v", false, "Echo upload activity")
	useCLI := fs.Bool("cli", false, "Shell out to the aws CLI instead of using the SDK")

	opts := &config.Options{}
	config.AddFlags(fs, opts)

	fs.Usage = func() {
		printUsage(fs)
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}

	siteCfg := config.DefaultSite()
	localDir := siteCfg.OutputDir
	bucket := siteCfg.Bucket

	if fs.NArg() > 0 {
		localDir = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		b, err := s3uri.ParseBucket(fs.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		bucket = b
	}

	stat, err := os.Stat(localDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if !stat.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: %s is not a directory\n", localDir)
		return 1
	}

	level := 0
	if *verbose {
		level = 1
	}

	ctx := context.Background()

	var backend storage.Backend
	if *useCLI {
		backend = &storage.CLI{Verbose: level}
	} else {
		client, err := s3client.New(ctx, *opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load AWS config: %v\n", err)
			return 1
		}
		sdk := storage.NewSDK(client)
		sdk.Verbose = level
		backend = sdk
	}

	if err := backend.SyncDir(ctx, localDir, bucket); err != nil {
		fmt.Fprintln(os.Stderr, ui.Errorf("Sync failed: %v", err))
		return 1
	}

	fmt.Println(ui.Successf("✓ Synchronized %s to s3://%s", localDir, bucket))
	return 0
}
