package cronparser

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// standardParser accepts exactly the five field form, no descriptors or seconds.
var standardParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Check parses expr with the standard cron parser. The schedule it produces is
// discarded; only acceptance matters.
func Check(expr string) error {
	if _, err := standardParser.Parse(expr); err != nil {
		return fmt.Errorf("expression %q rejected by standard cron parser: %w", expr, err)
	}
	return nil
}
