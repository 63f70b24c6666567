package utils

import (
	"fmt"
	"math"
	"strconv"
)

// Round2 rounds half away from zero to two decimal places.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// ConvertHourToDuration convert hour to duration format string
// Example: 2.5 -> "2h 30m"
func ConvertHourToDuration(durationInHours float64) string {
	return ConvertMinutesToDuration(int64(math.Round(durationInHours * 60)))
}

// FormatUSD formats an amount with thousands separators and cents
// Example: 10263.36 -> "$10,263.36"
func FormatUSD(amount float64) string {
	cents := int64(math.Round(amount * 100))

	negative := cents < 0
	if negative {
		cents = -cents
	}

	var result []byte
	str := strconv.FormatInt(cents/100, 10)

	count := 0
	for i := len(str) - 1; i >= 0; i-- {
		result = append([]byte{str[i]}, result...)
		count++
		if count%3 == 0 && i != 0 {
			result = append([]byte{','}, result...)
		}
	}

	formatted := fmt.Sprintf("$%s.%02d", result, cents%100)
	if negative {
		return "-" + formatted
	}
	return formatted
}
