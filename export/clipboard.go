package export

import (
	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"
)

// CopyText places text on the system clipboard. Best-effort: headless
// environments have no clipboard, so a failure is logged and returned rather
// than treated as fatal.
func CopyText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		log.Warn().Err(err).Msg("Failed to copy to clipboard")
		return err
	}
	log.Debug().Int("chars", len(text)).Msg("Copied to clipboard")
	return nil
}
