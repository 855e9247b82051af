// Command folio checks that OCR-derived layout geometry of scanned document
// pages stays within the bounds of the corresponding page images, and
// computes per-page layout statistics. It writes one JSON report per page to
// the output file and logs batch totals.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/tsawler/folio"
	"github.com/tsawler/folio/iiif"
)

var cli struct {
	Path   string `arg:"" help:"Page bundle file or directory of bundles (.jsonl, .jsonl.bz2, .jsonl.xz)." type:"path"`
	Output string `short:"o" default:"output.jsonl" help:"Path to the output JSONL file."`

	GitVersion   string `name:"git-version" help:"Version tag to include in each report."`
	GallicaV3    bool   `name:"iiif-gallica-v3" help:"Patch Gallica IIIF links to the v3 presentation server."`
	Shuffle      bool   `help:"Randomize the order of bundle files."`
	FacsimileDir string `name:"facsimile-dir" type:"existingdir" help:"Resolve dimensions from image files under this directory instead of IIIF."`

	LogFile  string `name:"log-file" help:"Write log to FILE."`
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Logging level."`
}

func main() {
	// A missing .env file is fine; it only supplies optional defaults.
	_ = godotenv.Load()

	kctx := kong.Parse(&cli,
		kong.Name("folio"),
		kong.Description("Check that all lines in page bundles are within the page image boundaries."),
	)

	if err := setupLogging(cli.LogLevel, cli.LogFile); err != nil {
		kctx.FatalIfErrorf(err)
	}
	logrus.Infof("Options: %+v", cli)

	if err := run(); err != nil {
		logrus.Errorf("Error processing file: %v", err)
		os.Exit(1)
	}
	logrus.Info("Finished processing all pages.")
}

func run() error {
	out, err := os.Create(cli.Output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	checker := folio.Check(cli.Path)
	if cli.Shuffle {
		checker = checker.Shuffle()
	}
	if cli.GallicaV3 {
		checker = checker.GallicaV3()
	}
	if cli.GitVersion != "" {
		checker = checker.GitVersion(cli.GitVersion)
	}
	if cli.FacsimileDir != "" {
		checker = checker.Provider(iiif.FileProvider{Root: cli.FacsimileDir})
	}

	_, err = checker.Run(context.Background(), out)
	return err
}

func setupLogging(level, file string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		logrus.SetOutput(f)
	}
	return nil
}
