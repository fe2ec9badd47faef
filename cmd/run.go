// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/hashicorp/go-untar"
)

// CLI are the cli parameters for the untar binary
type CLI struct {
	Directory string `short:"d" placeholder:"DIR" default:"." help:"Extract files into DIR."`
	Quiet     bool   `short:"q" help:"Suppress output."`
	Version   bool   `short:"v" help:"Show version."`
	Help      bool   `short:"h" help:"Show help."`
	File      string `arg:"" name:"file" optional:"" help:"Archive to extract (.tar, .tar.gz, .tgz, .tar.xz, .tar.bz2, .zip)."`
}

// Run the entrypoint into go-untar as a cli tool
func Run(version, commit, date string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, fmt.Sprintf("%s (commit %s, built at %s)", version, commit, date))
	stop()
	os.Exit(code)
}

// run parses args, performs the extraction and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, version string) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("untar"),
		kong.Description("Extract tar/tar.gz/tgz/tar.xz/tar.bz2/zip packages"),
		kong.NoDefaultHelp(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	if cli.Version {
		fmt.Fprintf(stdout, "untar %s\n", version)
		return 0
	}

	if cli.Help {
		_ = kctx.PrintUsage(false)
		return 0
	}

	if len(cli.File) == 0 {
		fmt.Fprintln(stderr, "Error: No archive file specified")
		_ = kctx.PrintUsage(false)
		return 1
	}

	// warnings, e.g. permissions that could not be restored, are shown in quiet mode as well
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	progress := stdout
	if cli.Quiet {
		progress = io.Discard
	}

	cfg := untar.NewConfig(
		untar.WithLogger(logger),
		untar.WithProgress(progress),
	)

	if err := untar.Unpack(ctx, cli.File, cli.Directory, cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		if !cli.Quiet {
			fmt.Fprintf(stderr, "%+v\n", err)
		}
		return 1
	}

	if !cli.Quiet {
		fmt.Fprintf(stdout, "Done: %s\n", cli.File)
	}
	return 0
}
