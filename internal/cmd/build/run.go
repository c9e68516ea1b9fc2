package build

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"salsite/internal/registry"
	"salsite/internal/shared/config"
	"salsite/internal/shared/s3client"
	"salsite/internal/shared/ui"
	"salsite/internal/site"
	"salsite/internal/storage"
)

// verbosity is a repeatable boolean flag: each -v bumps the level.
type verbosity int

func (v *verbosity) String() string {
	return strconv.Itoa(int(*v))
}

func (v *verbosity) Set(string) error {
	*v++
	return nil
}

func (v *verbosity) IsBoolFlag() bool {
	return true
}

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("build", flag.ContinueOnError)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "Usage: salsite build [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Generate the SAL Topics registry index pages from the bucket listing.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  salsite build")
	fmt.Fprintln(os.Stderr, "  salsite build -sync -v")
	fmt.Fprintln(os.Stderr, "  salsite build -base http://docs.example.com -out /tmp/website")
	fmt.Fprintln(os.Stderr, "  salsite build -cli -sync")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	fs.PrintDefaults()
}

func Run(args []string) int {
	fs := newFlagSet()
	var verbose verbosity
	fs.Var(&verbose, "v", "Increase diagnostic detail (repeatable, up to 4 levels)")
	doSync := fs.Bool("sync", false, "Synchronize the website directory with the S3 bucket after generation")
	base := fs.String("base", "", "Alternative base URL for stylesheet links (defaults to the bucket website endpoint)")
	bucket := fs.String("bucket", "", "S3 bucket holding the topic documents (defaults to "+config.DefaultBucket+")")
	out := fs.String("out", "", "Output directory for the generated site (defaults to ./website)")
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
	if *bucket != "" {
		siteCfg.Bucket = *bucket
		siteCfg.WebsiteBase = config.WebsiteEndpoint(*bucket)
	}
	if *base != "" {
		siteCfg.WebsiteBase = *base
	}
	if *out != "" {
		siteCfg.OutputDir = *out
	}

	ctx := context.Background()

	backend, err := newBackend(ctx, *useCLI, *opts, int(verbose))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load AWS config: %v\n", err)
		return 1
	}

	return execute(ctx, backend, siteCfg, int(verbose), *doSync)
}

func execute(ctx context.Context, backend storage.Backend, siteCfg config.Site, verbose int, doSync bool) int {
	keys, err := backend.ListKeys(ctx, siteCfg.Bucket)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Errorf("Listing s3://%s failed: %v", siteCfg.Bucket, err))
		return 1
	}

	artifacts := registry.Build(keys, siteCfg.Excludes, verbose)
	if verbose > 1 {
		fmt.Println(artifacts)
	}

	builder := site.Builder{
		Root:      siteCfg.OutputDir,
		BaseURL:   siteCfg.WebsiteBase,
		FontsURL:  siteCfg.FontsURL,
		IndexFile: siteCfg.IndexFile,
	}
	if err := builder.Build(artifacts); err != nil {
		fmt.Fprintln(os.Stderr, ui.Errorf("Site generation failed: %v", err))
		return 1
	}

	fmt.Printf("Generated index pages for %d versions under %s\n", len(artifacts), siteCfg.OutputDir)

	if doSync {
		if err := backend.SyncDir(ctx, siteCfg.OutputDir, siteCfg.Bucket); err != nil {
			fmt.Fprintln(os.Stderr, ui.Errorf("Sync failed: %v", err))
			return 1
		}
		fmt.Println(ui.Successf("✓ Synchronized %s to s3://%s", siteCfg.OutputDir, siteCfg.Bucket))
	}

	return 0
}

func newBackend(ctx context.Context, useCLI bool, opts config.Options, verbose int) (storage.Backend, error) {
	if useCLI {
		return &storage.CLI{Verbose: verbose}, nil
	}

	client, err := s3client.New(ctx, opts)
	if err != nil {
		return nil, err
	}

	sdk := storage.NewSDK(client)
	sdk.Verbose = verbose
	return sdk, nil
}
