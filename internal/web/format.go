package web

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"internportal/internal/domain"
)

// Formatter renders amounts and dates using the viewer's locale.
type Formatter struct {
	printer    *message.Printer
	dateLayout string
}

func NewFormatter(tag language.Tag) Formatter {
	return Formatter{
		printer:    message.NewPrinter(tag),
		dateLayout: dateLayoutFor(tag),
	}
}

// Currency formats whole US dollars, e.g. $12,750.
func (f Formatter) Currency(amount int64) string {
	return "$" + f.printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
}

// Date formats a calendar day, e.g. Dec 20, 2024.
func (f Formatter) Date(d domain.Date) string {
	return d.Format(f.dateLayout)
}

// dateLayoutFor picks a short date layout by the locale's customary
// day/month order. Month abbreviations stay English.
func dateLayoutFor(tag language.Tag) string {
	base, _ := tag.Base()
	region, _ := tag.Region()
	switch base.String() {
	case "en":
		switch region.String() {
		case "US", "PH":
			return "Jan 2, 2006"
		}
		return "2 Jan 2006"
	case "de", "ru", "pl", "tr", "fi", "nb", "da", "cs":
		return "02.01.2006"
	case "zh", "ja", "ko", "hu", "lt", "sv":
		return "2006-01-02"
	case "nl":
		return "02-01-2006"
	default:
		return "02/01/2006"
	}
}

// DaysActive returns whole days elapsed since join, rounded down.
func DaysActive(join domain.Date, now time.Time) int {
	return int(math.Floor(now.Sub(join.Time).Hours() / 24))
}
