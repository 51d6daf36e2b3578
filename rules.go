package timeago

import (
	"fmt"
	"strings"
)

// Operand names the value a condition inspects
type Operand string

const (
	// OperandCount is the full magnitude, optionally reduced by Mod.
	OperandCount Operand = "n"
	// OperandLastDigit is the rightmost decimal digit of the magnitude.
	OperandLastDigit Operand = "d"
)

type ConditionOperator string

const (
	OperatorEquals    ConditionOperator = "eq"
	OperatorNotEquals ConditionOperator = "ne"
	OperatorIn        ConditionOperator = "in"
	OperatorNotIn     ConditionOperator = "not_in"
	OperatorWithin    ConditionOperator = "within"
	OperatorNotWithin ConditionOperator = "not_within"
	OperatorAtLeast   ConditionOperator = "gte"
	OperatorAtMost    ConditionOperator = "lte"
)

// Range is an inclusive integer interval
type Range struct {
	Start int64
	End   int64
}

func (r Range) contains(v int64) bool {
	return v >= r.Start && v <= r.End
}

// Condition is a single boolean test over (count, lastDigit)
type Condition struct {
	Operand  Operand
	Mod      int64
	Operator ConditionOperator
	Values   []int64
	Ranges   []Range
}

// Rule assigns Category when any of its groups matches. Conditions inside
// a group must all hold.
type Rule struct {
	Category Category
	Groups   [][]Condition
}

// RuleSet is the ordered list of category rules for one locale. The
// first matching rule wins.
type RuleSet struct {
	Locale string
	Rules  []Rule
}

// LastDigit returns the rightmost decimal digit of count.
func LastDigit(count int64) int64 {
	if count < 0 {
		count = -count
	}
	return count % 10
}

// Classify returns the category of the first rule matching count and
// lastDigit.
func (set *RuleSet) Classify(count, lastDigit int64) (Category, error) {
	if count < 0 || lastDigit < 0 || lastDigit > 9 {
		return "", fmt.Errorf("%w: count=%d last digit=%d", ErrInvalidInput, count, lastDigit)
	}

	locale := ""
	if set != nil {
		locale = set.Locale
		for _, rule := range set.Rules {
			if rule.matches(count, lastDigit) {
				return rule.Category, nil
			}
		}
	}

	return "", fmt.Errorf("%w: locale=%q count=%d last digit=%d", ErrNoCategory, locale, count, lastDigit)
}

// Validate classifies every count in [0, limit] and reports the first
// count no rule accepts.
func (set *RuleSet) Validate(limit int64) error {
	if set == nil || len(set.Rules) == 0 {
		return fmt.Errorf("%w: empty rule set", ErrRuleCoverage)
	}

	for count := int64(0); count <= limit; count++ {
		if _, err := set.Classify(count, LastDigit(count)); err != nil {
			return fmt.Errorf("%w: %v", ErrRuleCoverage, err)
		}
	}
	return nil
}

// Categories returns the distinct categories of the set in rule order.
func (set *RuleSet) Categories() []Category {
	if set == nil || len(set.Rules) == 0 {
		return nil
	}

	categories := make([]Category, 0, len(set.Rules))
	seen := make(map[Category]struct{}, len(set.Rules))
	for _, rule := range set.Rules {
		if rule.Category == "" {
			continue
		}
		if _, ok := seen[rule.Category]; ok {
			continue
		}
		seen[rule.Category] = struct{}{}
		categories = append(categories, rule.Category)
	}
	return categories
}

func (set *RuleSet) Clone() *RuleSet {
	if set == nil {
		return nil
	}

	out := &RuleSet{Locale: set.Locale}
	if len(set.Rules) == 0 {
		return out
	}

	out.Rules = make([]Rule, len(set.Rules))
	for i, rule := range set.Rules {
		out.Rules[i] = Rule{Category: rule.Category}
		if len(rule.Groups) == 0 {
			continue
		}
		out.Rules[i].Groups = make([][]Condition, len(rule.Groups))
		for j, group := range rule.Groups {
			conditions := make([]Condition, len(group))
			for k, cond := range group {
				conditions[k] = cond.clone()
			}
			out.Rules[i].Groups[j] = conditions
		}
	}
	return out
}

// A rule without groups is a catch-all.
func (r Rule) matches(count, lastDigit int64) bool {
	if len(r.Groups) == 0 {
		return true
	}

	for _, group := range r.Groups {
		if groupMatches(group, count, lastDigit) {
			return true
		}
	}
	return false
}

func groupMatches(group []Condition, count, lastDigit int64) bool {
	if len(group) == 0 {
		return false
	}
	for _, cond := range group {
		if !cond.matches(count, lastDigit) {
			return false
		}
	}
	return true
}

func (c Condition) matches(count, lastDigit int64) bool {
	value := count
	switch c.Operand {
	case OperandLastDigit:
		value = lastDigit
	case OperandCount, "":
		if c.Mod > 0 {
			value = count % c.Mod
		}
	default:
		return false
	}

	switch c.Operator {
	case OperatorEquals, OperatorIn:
		return c.hasValue(value)
	case OperatorNotEquals, OperatorNotIn:
		return !c.hasValue(value)
	case OperatorWithin:
		return c.inRanges(value)
	case OperatorNotWithin:
		return !c.inRanges(value)
	case OperatorAtLeast:
		return len(c.Values) > 0 && value >= c.Values[0]
	case OperatorAtMost:
		return len(c.Values) > 0 && value <= c.Values[0]
	default:
		return false
	}
}

func (c Condition) hasValue(value int64) bool {
	for _, v := range c.Values {
		if v == value {
			return true
		}
	}
	return false
}

func (c Condition) inRanges(value int64) bool {
	for _, r := range c.Ranges {
		if r.contains(value) {
			return true
		}
	}
	return false
}

func (c Condition) clone() Condition {
	out := c
	if len(c.Values) > 0 {
		out.Values = append([]int64(nil), c.Values...)
	}
	if len(c.Ranges) > 0 {
		out.Ranges = append([]Range(nil), c.Ranges...)
	}
	return out
}

func parseCategory(raw string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(CategorySingle):
		return CategorySingle, nil
	case string(CategoryPlural):
		return CategoryPlural, nil
	case string(CategorySpecial):
		return CategorySpecial, nil
	default:
		return "", fmt.Errorf("unknown category %q", raw)
	}
}

func parseConditionOperator(raw string) (ConditionOperator, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(OperatorEquals), "=", "==":
		return OperatorEquals, nil
	case string(OperatorNotEquals), "!=":
		return OperatorNotEquals, nil
	case string(OperatorIn):
		return OperatorIn, nil
	case string(OperatorNotIn):
		return OperatorNotIn, nil
	case string(OperatorWithin):
		return OperatorWithin, nil
	case string(OperatorNotWithin):
		return OperatorNotWithin, nil
	case string(OperatorAtLeast), ">=":
		return OperatorAtLeast, nil
	case string(OperatorAtMost), "<=":
		return OperatorAtMost, nil
	default:
		return "", fmt.Errorf("unknown condition operator %q", raw)
	}
}

func parseOperand(raw string) (Operand, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(OperandCount), "":
		return OperandCount, nil
	case string(OperandLastDigit):
		return OperandLastDigit, nil
	default:
		return "", fmt.Errorf("unknown operand %q", raw)
	}
}
