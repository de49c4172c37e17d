// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/girlmathhq/girlmath/internal/engine"
)

// NotAvailable is rendered for metrics that cannot be computed from the
// given inputs. Never shown as zero: "no data" and "free" are different.
const NotAvailable = "—"

// FormatMoney formats a USD amount, shedding precision as it grows.
func FormatMoney(amount float64) string {
	if amount >= 1000 {
		return "$" + FormatNumber(int64(math.Round(amount)))
	}
	if amount >= 100 {
		return fmt.Sprintf("$%.0f", amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// FormatMoneyPtr formats a nullable amount, rendering nil as NotAvailable.
func FormatMoneyPtr(amount *float64) string {
	if amount == nil {
		return NotAvailable
	}
	return FormatMoney(*amount)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a percentage value (already 0-100 scaled).
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatPercentPtr formats a nullable percentage.
func FormatPercentPtr(pct *float64) string {
	if pct == nil {
		return NotAvailable
	}
	return FormatPercent(*pct)
}

// FormatScore renders a score as "71/100".
func FormatScore(score int) string {
	return fmt.Sprintf("%d/100", score)
}

// FormatSavings renders savings with the discount percentage, or NotAvailable
// when there are none.
func FormatSavings(savings, discountPercent float64) string {
	if savings <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%s (%.0f%% off)", FormatMoney(savings), discountPercent)
}

// FormatPoints renders a factor's contribution as "20/25".
func FormatPoints(f engine.FactorScore) string {
	return fmt.Sprintf("%d/%d", f.Points, f.Max)
}

// CategoryLabel returns the human-readable category name with its emoji.
func CategoryLabel(c engine.Category) string {
	switch c {
	case engine.CategoryClothes:
		return "Clothing 👗"
	case engine.CategorySkincare:
		return "Skincare 💆"
	case engine.CategoryTravel:
		return "Travel ✈️"
	case engine.CategoryFood:
		return "Food 🍕"
	case engine.CategorySubscription:
		return "Subscription 📱"
	case engine.CategoryGift:
		return "Gift 🎁"
	case engine.CategoryJewellery:
		return "Jewellery 💍"
	default:
		return "Other 💫"
	}
}

// ModeLabel returns the display name for a tone mode.
func ModeLabel(m engine.Mode) string {
	switch m {
	case engine.ModeBestie:
		return "Bestie Roast"
	case engine.ModeMBA:
		return "Delulu MBA"
	default:
		return "Soft Life"
	}
}
