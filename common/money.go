package common

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders a whole-euro amount the way the HUD shows it.
func FormatMoney(amount int) string {
	return moneyPrinter.Sprintf("€%d", amount)
}
