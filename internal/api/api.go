package api

import (
	"task-export/internal/config"
	"task-export/internal/i18n"
	"task-export/internal/repository/store"
	"task-export/internal/services"
)

// New builds the BusinessAPI over repo with the locale and notification
// settings of cfg
func New(repo store.Repository, cfg *config.Config) (BusinessAPI, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	container := services.NewServiceContainer(repo, services.Options{
		Location:       loc,
		DateLayout:     cfg.Locale.DateFormat,
		DateFormat:     i18n.DetectDateFormat(),
		Translator:     i18n.NewTranslator(cfg.Locale.Language, cfg.Locale.EscapeLabels),
		ApplicationURL: cfg.Notification.ApplicationURL,
	})

	return NewBusinessAPI(repo, container), nil
}
