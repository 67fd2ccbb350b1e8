package utils

import (
	"fmt"
	"math"
	"time"
)

// Round2 rounds half away from zero to two decimals, for presentation only.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func FormatFloat(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// FormatMillions renders an amount in millions, e.g. 500000 -> "0.5M".
func FormatMillions(value float64) string {
	return fmt.Sprintf("%gM", value/1_000_000)
}

func PrettyDate(date time.Time) string {
	return date.UTC().Format("02 Jan 2006 - 15:04 UTC")
}
