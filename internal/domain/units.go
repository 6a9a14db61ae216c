package domain

import "strings"

// UnitCategory groups units that are convertible to each other.
// A user preference only applies within its own category.
type UnitCategory string

const (
	CategoryWeight UnitCategory = "weight"
	CategoryLiquid UnitCategory = "liquid-volume"
	CategoryCount  UnitCategory = "count"
)

// Unit describes one supported measurement unit. Units are process-wide
// constants registered in unitTable and are never mutated.
//
// ToBase is the number of base units (gram, milliliter, or items) in one of
// this unit. Conversion between units is always unit -> base -> target via
// multiplication; there is no pairwise conversion table.
//
// DisplayAmount and DisplayLabel define the basis the per-unit price is
// quoted in when this unit is the display unit (e.g. 100/"100g" for gram,
// 1/"oz" for ounce).
type Unit struct {
	Name          string
	Category      UnitCategory
	Aliases       []string
	ToBase        float64
	DisplayAmount float64
	DisplayLabel  string
}

// StandardAmount returns the category's fixed reference amount in base units:
// 100 g, 100 ml, or 1 item.
func (c UnitCategory) StandardAmount() float64 {
	if c == CategoryCount {
		return 1
	}
	return 100
}

// StandardLabel returns the human-readable label of the category's reference
// amount, matching what the extension renders ("Price per 100g: $x.xx").
func (c UnitCategory) StandardLabel() string {
	switch c {
	case CategoryWeight:
		return "100g"
	case CategoryLiquid:
		return "100ml"
	default:
		return "ct"
	}
}

// unitTable is the closed set of supported units. Adding a unit means adding
// one row here; nothing else in the engine changes.
var unitTable = []Unit{
	{Name: "gram", Category: CategoryWeight, Aliases: []string{"g", "gram", "grams"}, ToBase: 1, DisplayAmount: 100, DisplayLabel: "100g"},
	{Name: "kilogram", Category: CategoryWeight, Aliases: []string{"kg", "kilogram", "kilograms"}, ToBase: 1000, DisplayAmount: 1, DisplayLabel: "kg"},
	{Name: "ounce", Category: CategoryWeight, Aliases: []string{"oz", "ounce", "ounces"}, ToBase: 28.3495, DisplayAmount: 1, DisplayLabel: "oz"},
	{Name: "pound", Category: CategoryWeight, Aliases: []string{"lb", "lbs", "pound", "pounds"}, ToBase: 453.592, DisplayAmount: 1, DisplayLabel: "lb"},
	{Name: "milliliter", Category: CategoryLiquid, Aliases: []string{"ml", "milliliter", "milliliters"}, ToBase: 1, DisplayAmount: 100, DisplayLabel: "100ml"},
	{Name: "liter", Category: CategoryLiquid, Aliases: []string{"l", "liter", "liters", "litre", "litres"}, ToBase: 1000, DisplayAmount: 1, DisplayLabel: "L"},
	{Name: "count", Category: CategoryCount, Aliases: []string{"ct", "count", "ea", "each", "pc", "pcs"}, ToBase: 1, DisplayAmount: 1, DisplayLabel: "ct"},
}

// aliasIndex maps lowercase alias -> unit table index, built once at init.
var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]int {
	index := make(map[string]int)
	for i, unit := range unitTable {
		for _, alias := range unit.Aliases {
			index[strings.ToLower(alias)] = i
		}
	}
	return index
}

// ResolveUnit looks up a unit by any of its registered aliases,
// case-insensitively. Returns false for unknown aliases.
func ResolveUnit(alias string) (Unit, bool) {
	i, ok := aliasIndex[strings.ToLower(strings.TrimSpace(alias))]
	if !ok {
		return Unit{}, false
	}
	return unitTable[i], true
}

// UnitAliases returns every registered alias ordered longest-first.
// Regex alternations built from this list must keep that order: a greedy
// single-character pattern like "l" would otherwise swallow the tail of
// "ml" and misparse "250ml" as 250 liters.
func UnitAliases() []string {
	var aliases []string
	for _, unit := range unitTable {
		aliases = append(aliases, unit.Aliases...)
	}
	// Insertion sort by descending length; the list is tiny and stable
	// ordering keeps same-length aliases in table order.
	for i := 1; i < len(aliases); i++ {
		for j := i; j > 0 && len(aliases[j]) > len(aliases[j-1]); j-- {
			aliases[j], aliases[j-1] = aliases[j-1], aliases[j]
		}
	}
	return aliases
}

// Quantity is an amount of a specific unit as parsed from listing text.
// Constructed fresh per extraction; never retained.
type Quantity struct {
	Amount float64
	Unit   Unit
}

// AmountInStandard returns how many category reference amounts this quantity
// holds (e.g. 500 g -> 5 units of 100g).
func (q Quantity) AmountInStandard() float64 {
	return q.Amount * q.Unit.ToBase / q.Unit.Category.StandardAmount()
}

// ConvertTo re-expresses the quantity in another unit of the same category.
// Returns the receiver unchanged when the categories differ.
func (q Quantity) ConvertTo(target Unit) Quantity {
	if target.Category != q.Unit.Category {
		return q
	}
	return Quantity{
		Amount: q.Amount * q.Unit.ToBase / target.ToBase,
		Unit:   target,
	}
}
