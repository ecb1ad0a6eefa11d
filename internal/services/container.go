package services

import (
	"time"

	"task-export/internal/i18n"
	"task-export/internal/repository/store"
)

// Options configures the services built by NewServiceContainer
type Options struct {
	Location       *time.Location
	DateLayout     string
	DateFormat     i18n.DateFormat
	Translator     *i18n.Translator
	ApplicationURL string
}

// NewServiceContainer wires every service on top of repo
func NewServiceContainer(repo store.Repository, opts Options) *ServiceContainer {
	if opts.Translator == nil {
		opts.Translator = i18n.NewTranslator("", false)
	}
	if opts.DateFormat.Layouts == nil {
		opts.DateFormat = i18n.DetectDateFormat()
	}

	parser := NewDateParser(opts.DateLayout, opts.DateFormat, opts.Location)
	normalizer := NewDateNormalizer(parser)
	colors := NewColorCatalog(opts.Translator)
	formatter := NewRowFormatter(colors, opts.Translator, parser.Location())
	assembler := NewTableAssembler(opts.Translator)

	return &ServiceContainer{
		Translator:          opts.Translator,
		DateParser:          parser,
		DateNormalizer:      normalizer,
		ColorCatalog:        colors,
		RowFormatter:        formatter,
		TableAssembler:      assembler,
		ExportService:       NewExportService(repo, normalizer, formatter, assembler),
		NotificationService: NewNotificationService(repo, opts.Translator, opts.ApplicationURL),
	}
}
