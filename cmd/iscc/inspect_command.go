package main

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"isccgen/internal/language"
	"isccgen/internal/logging"
	"isccgen/internal/mediatype"
)

type inspectReport struct {
	File          string `json:"file" yaml:"file"`
	Backend       string `json:"backend" yaml:"backend"`
	Category      string `json:"category" yaml:"category"`
	Subtype       string `json:"subtype" yaml:"subtype"`
	SniffedMIME   string `json:"sniffed_mime" yaml:"sniffed_mime"`
	SizeBytes     int64  `json:"size_bytes" yaml:"size_bytes"`
	Size          string `json:"size" yaml:"size"`
	Title         string `json:"title" yaml:"title"`
	Language      string `json:"language" yaml:"language"`
	LanguageName  string `json:"language_name" yaml:"language_name"`
	ContentLength int    `json:"content_length" yaml:"content_length"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var path string
	var format string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show how a file is classified and what text is extracted from it",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := ctx.ensureRuntime(cmd)
			if err != nil {
				return err
			}
			report, err := inspectFile(cmd, rt, path)
			if err != nil {
				return err
			}
			return writeStructured(cmd, format, report)
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "File to inspect")
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format (yaml or json)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func inspectFile(cmd *cobra.Command, rt *runtime, path string) (inspectReport, error) {
	ctx := commandCtx(cmd)
	logger := logging.NewComponentLogger(rt.logger, "inspect")
	backend := rt.pipeline.Backend()

	info, err := os.Stat(path)
	if err != nil {
		return inspectReport{}, fmt.Errorf("stat %s: %w", path, err)
	}
	typ, err := backend.Classify(ctx, path)
	if err != nil {
		return inspectReport{}, err
	}
	res, err := backend.Extract(ctx, path, typ)
	if err != nil {
		return inspectReport{}, err
	}

	report := inspectReport{
		File:          filepath.Base(path),
		Backend:       backend.Name(),
		Category:      typ.Category.String(),
		Subtype:       typ.Subtype,
		SizeBytes:     info.Size(),
		Size:          humanize.IBytes(uint64(info.Size())),
		Title:         res.Title,
		ContentLength: utf8.RuneCountInString(res.Content),
	}
	if sniffed, err := mimetype.DetectFile(path); err == nil {
		report.SniffedMIME = sniffed.String()
	} else {
		logger.Debug("mime sniff failed", logging.File(path), logging.Error(err))
	}

	if typ.Category == mediatype.Text {
		code, err := rt.language.Detect(ctx, path, res.Content)
		if err != nil {
			logging.WarnWithContext(logger, "language detection failed", "language_detect",
				logging.File(path),
				logging.String(logging.FieldErrorHint, err.Error()),
				logging.String(logging.FieldImpact, "language left empty"),
			)
		}
		report.Language = code
	}
	if report.Language != "" {
		report.LanguageName = language.DisplayName(report.Language)
	}
	return report, nil
}
