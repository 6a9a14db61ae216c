package usecase

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/huntertran/walmart-price-compare/internal/domain"
)

// Package-level compiled regex patterns for performance. The alias
// alternation comes from the taxonomy ordered longest-first so that "ml"
// wins over a greedy match on "l" (see domain.UnitAliases).
var (
	multiPackPattern = regexp.MustCompile(`(?i)\b(\d+)\s*x\s*(\d+(?:\.\d+)?)\s*(` + aliasAlternation() + `)\b`)
	simpleQtyPattern = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(` + aliasAlternation() + `)\b`)
)

func aliasAlternation() string {
	aliases := domain.UnitAliases()
	escaped := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		escaped = append(escaped, regexp.QuoteMeta(alias))
	}
	return strings.Join(escaped, "|")
}

// QuantityParser extracts a (amount, unit) pair from a product title.
// Walmart titles keep size in a trailing comma-separated segment
// (e.g. "Great Value 2% Milk, 4 L" or "Brand X Soda, 6 x 222 mL").
type QuantityParser struct {
	enableDebugLogging bool
}

// NewQuantityParser creates a new quantity parser
func NewQuantityParser(enableDebugLogging bool) *QuantityParser {
	return &QuantityParser{enableDebugLogging: enableDebugLogging}
}

// Parse extracts a quantity from a listing title. Returns false when no
// segment yields a resolvable amount+unit; absence of size information is a
// common, expected case and never an error.
//
// Segments are scanned from last to first because the trailing segment is
// the specific size descriptor while earlier segments are product-name text
// that can contain incidental numbers ("7UP", "2% Milk").
func (p *QuantityParser) Parse(title string) (domain.Quantity, bool) {
	segments := splitTitle(title)
	if len(segments) < 2 {
		// No field separator means no trailing size descriptor.
		return domain.Quantity{}, false
	}

	for i := len(segments) - 1; i >= 0; i-- {
		if qty, ok := p.parseSegment(segments[i]); ok {
			if p.enableDebugLogging {
				log.Printf("[PARSE] %q -> %.4g %s", title, qty.Amount, qty.Unit.Name)
			}
			return qty, true
		}
	}
	return domain.Quantity{}, false
}

// parseSegment tries the multi-pack shape first, then the simple shape.
func (p *QuantityParser) parseSegment(segment string) (domain.Quantity, bool) {
	if m := multiPackPattern.FindStringSubmatch(segment); m != nil {
		packs, err1 := strconv.Atoi(m[1])
		each, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil {
			if unit, ok := domain.ResolveUnit(m[3]); ok {
				amount := float64(packs) * each
				if amount > 0 {
					return domain.Quantity{Amount: amount, Unit: unit}, true
				}
			}
		}
	}

	if m := simpleQtyPattern.FindStringSubmatch(segment); m != nil {
		amount, err := strconv.ParseFloat(m[1], 64)
		if err == nil && amount > 0 {
			// The regex can match text that looks like a unit but is
			// not registered; treat that as no match and keep scanning.
			if unit, ok := domain.ResolveUnit(m[2]); ok {
				return domain.Quantity{Amount: amount, Unit: unit}, true
			}
		}
	}

	return domain.Quantity{}, false
}

// splitTitle splits on comma, falling back to pipe when commas produce a
// single segment. Some walmart.ca layouts use "Brand | Name | 500 g".
func splitTitle(title string) []string {
	segments := strings.Split(title, ",")
	if len(segments) < 2 {
		segments = strings.Split(title, "|")
	}
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}
	return segments
}
