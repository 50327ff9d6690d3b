// Package format renders prices and timestamps the way the es-AR UI
// displays them. Stored values stay raw integers and time.Time; nothing
// here feeds back into the data model.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("es-AR"))

// Price renders a whole-peso amount with locale digit grouping, e.g. "$ 12.500".
func Price(amount int) string {
	return printer.Sprintf("$ %d", amount)
}

// Time renders a clock time as HH:MM.
func Time(t time.Time) string {
	return t.Format("15:04")
}

// Date renders a calendar date as DD/MM/YYYY.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}
