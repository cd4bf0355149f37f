// Package discount provides count-based discount rule tables.
// Two independent tables exist in the storefront: the per-card quantity
// table (applied to both the profiles and months axes) and the combo table
// keyed by how many platforms are bundled.
package discount

import (
	"sort"
	"strconv"
	"strings"

	"streamdeals/internal/errors"
)

// Rule maps a selection count to a flat discount amount
type Rule struct {
	// Threshold is the count the rule applies at
	Threshold int

	// Amount is the flat discount in pesos
	Amount int64

	// Exact restricts the rule to the threshold count only; otherwise the
	// rule applies to the threshold count or more
	Exact bool
}

// Table is an ordered set of discount rules
type Table struct {
	rules []Rule
}

// NewTable creates a table from rules, held sorted by threshold
func NewTable(rules ...Rule) *Table {
	t := &Table{rules: append([]Rule(nil), rules...)}
	sort.SliceStable(t.rules, func(i, j int) bool {
		return t.rules[i].Threshold < t.rules[j].Threshold
	})
	return t
}

// Parse builds a table from the remote resource shape: stringified integer
// keys for exact rules ("2"), integer+"+" keys for or-more rules ("3+").
func Parse(raw map[string]int64) (*Table, error) {
	rules := make([]Rule, 0, len(raw))
	for key, amount := range raw {
		exact := true
		numeric := key
		if strings.HasSuffix(key, "+") {
			exact = false
			numeric = strings.TrimSuffix(key, "+")
		}
		threshold, err := strconv.Atoi(numeric)
		if err != nil {
			return nil, errors.Parsing("invalid discount rule key: "+key, err)
		}
		rules = append(rules, Rule{Threshold: threshold, Amount: amount, Exact: exact})
	}
	return NewTable(rules...), nil
}

// Resolve returns the discount for a count. An exact-count rule always wins;
// otherwise the or-more rule with the highest threshold not above the count
// applies; otherwise the discount is zero.
func (t *Table) Resolve(count int) int64 {
	if t == nil {
		return 0
	}

	for _, rule := range t.rules {
		if rule.Exact && rule.Threshold == count {
			return rule.Amount
		}
	}

	var amount int64
	matched := false
	for _, rule := range t.rules {
		if !rule.Exact && rule.Threshold <= count {
			// rules are sorted, so the last match has the highest threshold
			amount = rule.Amount
			matched = true
		}
	}
	if matched {
		return amount
	}
	return 0
}

// Len returns the number of rules
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}

// FallbackQuantity is the embedded per-card quantity table, shared by the
// profiles and months axes until remote discounts load.
func FallbackQuantity() *Table {
	return NewTable(
		Rule{Threshold: 2, Amount: 2000, Exact: true},
		Rule{Threshold: 3, Amount: 4000, Exact: true},
	)
}

// FallbackCombo is the embedded combo table keyed by bundle size.
func FallbackCombo() *Table {
	return NewTable(
		Rule{Threshold: 2, Amount: 2000, Exact: true},
		Rule{Threshold: 3, Amount: 4000, Exact: true},
		Rule{Threshold: 4, Amount: 7000, Exact: true},
		Rule{Threshold: 5, Amount: 10000},
	)
}
