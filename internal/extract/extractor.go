package extract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"cxrextract/internal/fileutil"
	"cxrextract/internal/logging"
	"cxrextract/internal/selection"
	"cxrextract/internal/sequence"
	"cxrextract/internal/services"
	"cxrextract/internal/services/coronaimage"
)

// wildcardOutputName tags outputs produced by an all-elements extraction.
const wildcardOutputName = "ALL"

// Extractor turns a selected sequence into conversion batches and hands them
// to the CoronaImageCmd client.
type Extractor struct {
	client    coronaimage.Client
	format    string
	overwrite bool
	logger    *slog.Logger
}

// New constructs an extractor writing outputs in the given format. When
// overwrite is false, frames whose output already exists and is non-empty are
// skipped.
func New(client coronaimage.Client, format string, overwrite bool, logger *slog.Logger) (*Extractor, error) {
	if client == nil {
		return nil, fmt.Errorf("conversion client required")
	}
	if format == "" {
		return nil, fmt.Errorf("output format required")
	}
	return &Extractor{
		client:    client,
		format:    format,
		overwrite: overwrite,
		logger:    logging.NewComponentLogger(logger, "extract"),
	}, nil
}

// ExtractSequence processes one sequence's frames with the chosen layers.
// Wildcard selections run as a single invocation; explicit layer lists run
// one invocation per layer, stopping at the first failure. A nil return means
// every requested output exists.
func (e *Extractor) ExtractSequence(ctx context.Context, frames []sequence.Entry, sel selection.LayerSelection, outputDir, prefix string) error {
	if len(frames) == 0 {
		return services.Wrap(services.ErrValidation, "extract", "sequence", "no frames to process", nil)
	}

	name := frames[0].SequenceName
	folder := name
	if prefix != "" {
		folder = prefix + "_" + name
	}
	seqDir := filepath.Join(outputDir, folder)
	if err := fileutil.EnsureDir(seqDir); err != nil {
		return services.Wrap(services.ErrConfiguration, "extract", "prepare",
			"create output directory "+seqDir, err)
	}

	logger := e.logger.With(logging.String(logging.FieldSequence, name))

	if sel.All() {
		return e.extractLayer(ctx, logger, frames, coronaimage.WildcardElement, wildcardOutputName, seqDir)
	}
	for _, layer := range sel.Names() {
		if err := e.extractLayer(ctx, logger, frames, layer, layer, seqDir); err != nil {
			return err
		}
	}
	return nil
}

// extractLayer converts every frame still missing its output. An empty batch
// after skip filtering is a success, not an invocation.
func (e *Extractor) extractLayer(ctx context.Context, logger *slog.Logger, frames []sequence.Entry, element, outputName, seqDir string) error {
	name := frames[0].SequenceName
	pairs := make([]coronaimage.Pair, 0, len(frames))
	for _, frame := range frames {
		output := filepath.Join(seqDir, fmt.Sprintf("%s_%s.%04d.%s", name, outputName, frame.FrameNumber, e.format))
		if !e.overwrite && fileutil.NonEmptyFile(output) {
			logger.Debug("output exists, skipping frame",
				logging.String(logging.FieldLayer, element),
				logging.Int(logging.FieldFrame, frame.FrameNumber),
				logging.String("output", output))
			continue
		}
		pairs = append(pairs, coronaimage.Pair{Input: frame.FullPath(), Output: output})
	}

	if len(pairs) == 0 {
		logger.Info("all outputs already exist",
			logging.String(logging.FieldLayer, element))
		return nil
	}

	logger.Info("extracting element",
		logging.String(logging.FieldLayer, element),
		logging.Int("frames", len(pairs)))
	if err := e.client.Extract(ctx, element, pairs); err != nil {
		logger.Error("element extraction failed",
			logging.String(logging.FieldLayer, element),
			logging.Error(err))
		return err
	}
	return nil
}
