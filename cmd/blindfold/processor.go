// processor.go - Input/output handling and the conversion loop
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lgbarn/blindfold-chess-go/internal/config"
	"github.com/lgbarn/blindfold-chess-go/internal/convert"
	"github.com/lgbarn/blindfold-chess-go/internal/logging"
	"github.com/lgbarn/blindfold-chess-go/internal/output"
	"github.com/lgbarn/blindfold-chess-go/internal/parser"
)

// stdioName selects standard input or output in place of a file name.
const stdioName = "-"

// runStats counts what one run produced.
type runStats struct {
	games     int
	exercises int
}

// run converts inputPath into outputPath and reports success.
func run(cmd *cobra.Command, cfg *config.Config, inputPath, outputPath string) error {
	logger := logging.WithRun(logging.New(cfg.Log, cmd.ErrOrStderr()))
	defer logger.Sync() //nolint:errcheck // nothing useful to do with a sync failure
	cfg.Logger = logger

	logger.Info("converting",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Bool("side_lines", cfg.IncludeSideLines),
		zap.Bool("comments", cfg.IncludeComments),
		zap.String("format", cfg.Format))

	stats, err := convertFile(cmd, cfg, inputPath, outputPath)
	if err != nil {
		logger.Error("conversion failed", zap.Error(err))
		return err
	}

	logger.Info("done", zap.Int("games", stats.games), zap.Int("exercises", stats.exercises))

	report := cmd.OutOrStdout()
	if outputPath == stdioName {
		report = cmd.ErrOrStderr()
	}
	fmt.Fprintf(report, "successfully wrote to %s\n", outputPath)
	return nil
}

// convertFile opens both ends of the conversion and runs it.
func convertFile(cmd *cobra.Command, cfg *config.Config, inputPath, outputPath string) (stats runStats, err error) {
	in, closeIn, err := openInput(cmd, inputPath)
	if err != nil {
		return stats, err
	}
	defer closeIn()

	out, closeOut, err := openOutput(cmd, outputPath)
	if err != nil {
		return stats, err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", outputPath, cerr)
		}
	}()

	return processGames(cfg, in, inputPath, out)
}

// processGames converts every game from in and writes the descriptions to out.
func processGames(cfg *config.Config, in io.Reader, source string, out io.Writer) (runStats, error) {
	var stats runStats

	writer, err := output.NewWriter(out, cfg.Format)
	if err != nil {
		return stats, err
	}

	reader := parser.NewReader(in, cfg)
	reader.SetSource(source)
	converter := convert.New(convert.OptionsFromConfig(cfg), nil, cfg.L())

	for {
		before := converter.Exercises()
		text, ok, err := reader.ReadGame(converter)
		if err != nil {
			return stats, err
		}
		if !ok {
			break
		}

		d := &output.Description{Game: reader.Games(), Text: text}
		if converter.Exercises() > before {
			d.Exercise = converter.Exercises()
		}
		if err := writer.WriteDescription(d); err != nil {
			return stats, fmt.Errorf("write game %d: %w", d.Game, err)
		}
		cfg.L().Debug("game converted", zap.Int("game", d.Game), zap.Int("exercise", d.Exercise))
	}

	stats.games = reader.Games()
	stats.exercises = converter.Exercises()
	return stats, writer.Close()
}

// openInput opens the input file, or standard input for "-".
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == stdioName {
		return cmd.InOrStdin(), func() {}, nil
	}
	file, err := os.Open(path) //nolint:gosec // G304: input path comes from the command line
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}

// openOutput creates the output file, or uses standard output for "-".
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == stdioName {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	file, err := os.Create(path) //nolint:gosec // G304: output path comes from the command line
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return file, file.Close, nil
}
