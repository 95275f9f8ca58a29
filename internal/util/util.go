// Package util holds small formatting helpers shared by notifications and logs.
package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatMoney renders minor units with two decimals and the upper-cased currency code,
// e.g. "12.50 USD".
func FormatMoney(cents int64, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	amount := fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
	if currency == "" {
		return amount
	}

	return amount + " " + strings.ToUpper(currency)
}

// ShortID shortens an identifier for display in notification text.
func ShortID(id string) string {
	const size = 8
	if len(id) <= size {
		return "#" + id
	}

	return "#" + id[:size]
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
