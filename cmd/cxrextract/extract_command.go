package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"cxrextract/internal/collect"
	"cxrextract/internal/config"
	"cxrextract/internal/cxrmeta"
	"cxrextract/internal/extract"
	"cxrextract/internal/fileutil"
	"cxrextract/internal/logging"
	"cxrextract/internal/selection"
	"cxrextract/internal/sequence"
	"cxrextract/internal/services/coronaimage"
)

const lockFileName = ".cxrextract.lock"

type extractOptions struct {
	output    string
	prefix    string
	format    string
	overwrite bool
	imageCmd  string
	sequences []string
	frames    []int
	layers    []string
	allLayers bool
	noInput   bool
}

func newExtractCommand(ctx *commandContext) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <path>",
		Short: "Extract render elements from CXR files under the given path",
		Long: `Extract discovers <name>.<NNNN>.cxr frame sequences under the given file or
directory, lets you choose sequences and render elements, and drives
CoronaImageCmd to convert each selection into viewable images.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, ctx, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "Output root directory (default: next to the source frames)")
	flags.StringVar(&opts.prefix, "prefix", "", "Prefix for per-sequence output directories")
	flags.StringVar(&opts.format, "format", "", "Output image format: exr or jpg")
	flags.BoolVar(&opts.overwrite, "overwrite", false, "Regenerate outputs that already exist")
	flags.StringVar(&opts.imageCmd, "image-cmd", "", "CoronaImageCmd binary name or path")
	flags.StringSliceVar(&opts.sequences, "sequences", nil, "Process only these sequences (skips the interactive picker)")
	flags.IntSliceVar(&opts.frames, "frames", nil, "Process only these frame numbers")
	flags.StringSliceVar(&opts.layers, "layers", nil, "Extract only these render elements from every selected sequence")
	flags.BoolVar(&opts.allLayers, "all-layers", false, "Extract every render element from every selected sequence")
	flags.BoolVar(&opts.noInput, "no-input", false, "Never prompt; requires --all-layers or --layers")

	return cmd
}

func runExtract(cmd *cobra.Command, cmdCtx *commandContext, inputPath string, opts *extractOptions) error {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}
	if err := applyExtractOverrides(cfg, opts); err != nil {
		return err
	}

	logger, err := cmdCtx.ensureLogger()
	if err != nil {
		return err
	}
	logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

	inputPath, err = config.ExpandPath(inputPath)
	if err != nil {
		return err
	}

	collector := collect.New(cxrmeta.NewReader(), logger)
	entries := collector.Collect(inputPath)
	if len(entries) == 0 {
		return fmt.Errorf("no CXR sequence files found under %s", inputPath)
	}

	selector, err := chooseSelector(cmd, logger, opts)
	if err != nil {
		return err
	}

	selected, err := selector.SelectFiles(entries)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return errors.New("no files selected")
	}

	groups := sequence.Group(selected)
	layerChoices, err := selector.SelectLayers(groups)
	if err != nil {
		return err
	}
	if len(layerChoices) == 0 {
		return errors.New("no render elements selected")
	}

	outputRoot, err := resolveOutputRoot(cfg, inputPath, entries)
	if err != nil {
		return err
	}
	if err := fileutil.EnsureDir(outputRoot); err != nil {
		return fmt.Errorf("create output root %s: %w", outputRoot, err)
	}

	// One run per output root at a time; concurrent runs would race on the
	// skip-existing checks.
	runLock := flock.New(filepath.Join(outputRoot, lockFileName))
	locked, err := runLock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another extraction is already running in %s", outputRoot)
	}
	defer runLock.Unlock() //nolint:errcheck

	client, err := coronaimage.New(cfg.Tool.ImageCmd, logger)
	if err != nil {
		return err
	}
	extractor, err := extract.New(client, cfg.Output.Format, cfg.Output.Overwrite, logger)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(layerChoices))
	for _, name := range sequence.Names(groups) {
		if _, ok := layerChoices[name]; ok {
			names = append(names, name)
		}
	}

	bar := newSequenceBar(cmd, len(names))
	var failed []string
	for _, name := range names {
		err := extractor.ExtractSequence(cmd.Context(), groups[name], layerChoices[name], outputRoot, cfg.Output.Prefix)
		if err != nil {
			logger.Error("sequence extraction failed",
				logging.String(logging.FieldSequence, name),
				logging.Error(err))
			failed = append(failed, name)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Processed %d sequence(s) into %s\n", len(names)-len(failed), outputRoot)
	if len(failed) > 0 {
		return fmt.Errorf("extraction failed for %s", strings.Join(failed, ", "))
	}
	return nil
}

// applyExtractOverrides layers command-line flags over the loaded config and
// re-validates the result.
func applyExtractOverrides(cfg *config.Config, opts *extractOptions) error {
	if opts.imageCmd != "" {
		cfg.Tool.ImageCmd = strings.TrimSpace(opts.imageCmd)
	}
	if opts.output != "" {
		expanded, err := config.ExpandPath(opts.output)
		if err != nil {
			return err
		}
		cfg.Output.Dir = expanded
	}
	if opts.prefix != "" {
		cfg.Output.Prefix = strings.TrimSpace(opts.prefix)
	}
	if opts.format != "" {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(opts.format))
	}
	if opts.overwrite {
		cfg.Output.Overwrite = true
	}
	return cfg.Validate()
}

// chooseSelector picks the interactive terminal selector when stdin is a TTY
// and no preset flags were given; everything else runs non-interactively.
func chooseSelector(cmd *cobra.Command, logger *slog.Logger, opts *extractOptions) (selection.Selector, error) {
	presetRequested := opts.noInput || opts.allLayers ||
		len(opts.layers) > 0 || len(opts.sequences) > 0 || len(opts.frames) > 0
	interactive := !presetRequested && stdinIsTerminal()

	if interactive {
		return selection.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), logger), nil
	}
	if opts.allLayers && len(opts.layers) > 0 {
		return nil, errors.New("--all-layers and --layers are mutually exclusive")
	}
	if !opts.allLayers && len(opts.layers) == 0 {
		return nil, errors.New("non-interactive runs need --all-layers or --layers")
	}
	return &selection.Preset{
		Sequences: opts.sequences,
		Frames:    opts.frames,
		All:       opts.allLayers,
		Layers:    opts.layers,
	}, nil
}

// resolveOutputRoot prefers the configured directory and otherwise places
// outputs next to the collected frames.
func resolveOutputRoot(cfg *config.Config, inputPath string, entries []sequence.Entry) (string, error) {
	if cfg.Output.Dir != "" {
		return cfg.Output.Dir, nil
	}
	if info, err := os.Stat(inputPath); err == nil && !info.IsDir() {
		return filepath.Dir(inputPath), nil
	}
	if len(entries) > 0 {
		return entries[0].DirectoryPath, nil
	}
	return inputPath, nil
}

func newSequenceBar(cmd *cobra.Command, total int) *progressbar.ProgressBar {
	if total <= 1 || !stderrIsTerminal() {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("extracting"),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
