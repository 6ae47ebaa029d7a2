// Package translate renders user-facing messages in the host's locale.
package translate

import (
	"log"
	"os"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	var locales []string

	// DFGRID_LANG pins the language, for reproducible test and CI output.
	if lang := os.Getenv("DFGRID_LANG"); lang != "" {
		locales = []string{lang}
	} else {
		var err error
		locales, err = locale.GetLocales()
		if err != nil {
			log.Printf("dfgrid: locale: %v", err)
		}
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
