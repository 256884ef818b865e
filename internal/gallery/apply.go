package gallery

import (
	"fmt"
	"os"

	"github.com/bergsving-collective/Ramoti-Website/internal/config"
	"github.com/bergsving-collective/Ramoti-Website/internal/display"
	"github.com/bergsving-collective/Ramoti-Website/internal/logging"
)

// Apply runs the full tag pass: load and validate the CSV, render one card
// per row, splice the block into the gallery page, and write the page back.
// The write overwrites the original document in place; every error path
// returns before it.
func Apply(cfg *config.TagsConfig, log *logging.Logger) error {
	rows, err := LoadTags(cfg.CSVPath)
	if err != nil {
		return err
	}
	log.Debug(cfg.Verbose, "Loaded %d rows from %s", len(rows), cfg.CSVPath)

	if err := ValidateTags(rows); err != nil {
		return err
	}

	var tmplText string
	if cfg.CardTemplate != "" {
		raw, err := os.ReadFile(cfg.CardTemplate)
		if err != nil {
			return fmt.Errorf("read card template: %w", err)
		}
		tmplText = string(raw)
		log.Debug(cfg.Verbose, "Using card template from %s", cfg.CardTemplate)
	}

	cards, err := RenderCards(rows, tmplText)
	if err != nil {
		return err
	}

	doc, err := os.ReadFile(cfg.HTMLPath)
	if err != nil {
		return fmt.Errorf("read gallery HTML: %w", err)
	}

	updated, err := Splice(string(doc), cards)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		log.Success("[DRY] Would update %s with %d tagged photos (%s of card markup)",
			cfg.HTMLPath, len(rows), display.FormatBytes(int64(len(cards))))
		return nil
	}

	if err := os.WriteFile(cfg.HTMLPath, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("write gallery HTML: %w", err)
	}

	log.Success("Updated %s with %d tagged photos", cfg.HTMLPath, len(rows))
	return nil
}
