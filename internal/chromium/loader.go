package chromium

import (
	"go.uber.org/zap"

	"github.com/vanzue/bbmark/internal/model"
)

// Load discovers and parses every bookmark source, collecting whatever
// loads cleanly. It never fails: a missing browser, an unreadable profile
// or a file caught mid-write only loses its own entries.
func Load(browsers []Browser, log *zap.Logger) []model.Entry {
	sources := Discover(browsers)

	var entries []model.Entry
	for _, src := range sources {
		parsed, err := ParseFile(src)
		if err != nil {
			log.Debug("skipping bookmark source",
				zap.String("browser", src.Browser),
				zap.String("profile", src.Profile),
				zap.String("path", src.Path),
				zap.Error(err))
			continue
		}
		entries = append(entries, parsed...)
	}

	log.Info("bookmarks loaded",
		zap.Int("sources", len(sources)),
		zap.Int("entries", len(entries)))
	return entries
}
