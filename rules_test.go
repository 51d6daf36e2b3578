package timeago

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlavicRulesBoundaries(t *testing.T) {
	rules := SlavicRules("uk")

	tests := []struct {
		count int64
		digit int64
		want  Category
	}{
		{0, 0, CategorySpecial},
		{1, 1, CategorySingle},
		{2, 2, CategoryPlural},
		{4, 4, CategoryPlural},
		{5, 5, CategorySpecial},
		{11, 1, CategorySpecial},
		{12, 2, CategorySpecial},
		{14, 4, CategorySpecial},
		{20, 0, CategorySpecial},
		{21, 1, CategorySingle},
		{22, 2, CategoryPlural},
		{25, 5, CategorySpecial},
		{100, 0, CategorySpecial},
		{101, 1, CategorySingle},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d", tc.count), func(t *testing.T) {
			got, err := rules.Classify(tc.count, tc.digit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPolishRules(t *testing.T) {
	rules := PolishRules("pl")

	tests := map[int64]Category{
		0:   CategorySpecial,
		1:   CategorySingle,
		2:   CategoryPlural,
		5:   CategorySpecial,
		12:  CategorySpecial,
		21:  CategorySpecial,
		22:  CategoryPlural,
		112: CategorySpecial,
		124: CategoryPlural,
	}

	for count, want := range tests {
		got, err := rules.Classify(count, LastDigit(count))
		require.NoError(t, err)
		assert.Equal(t, want, got, "count %d", count)
	}
}

func TestEnglishRules(t *testing.T) {
	rules := EnglishRules("en")

	got, err := rules.Classify(1, 1)
	require.NoError(t, err)
	assert.Equal(t, CategorySingle, got)

	for _, count := range []int64{0, 2, 11, 21, 101} {
		got, err := rules.Classify(count, LastDigit(count))
		require.NoError(t, err)
		assert.Equal(t, CategoryPlural, got, "count %d", count)
	}
}

// Every built in rule set must give exactly one answer for realistic counts.
func TestBuiltinRulesCoverage(t *testing.T) {
	for _, pack := range BuiltinPacks() {
		t.Run(pack.Code, func(t *testing.T) {
			for count := int64(0); count <= 200; count++ {
				matched := 0
				for _, rule := range pack.Rules.Rules {
					if rule.matches(count, LastDigit(count)) && len(rule.Groups) > 0 {
						matched++
					}
				}
				got, err := pack.Rules.Classify(count, LastDigit(count))
				require.NoError(t, err, "count %d", count)
				assert.Contains(t, pack.Rules.Categories(), got)

				// explicit groups of the Slavic scheme never overlap
				if pack.Code == "ru" || pack.Code == "uk" {
					assert.Equal(t, 1, matched, "count %d", count)
				}
			}
		})
	}
}

func TestClassifyNoMatch(t *testing.T) {
	rules := &RuleSet{
		Locale: "xx",
		Rules: []Rule{
			{
				Category: CategorySingle,
				Groups:   [][]Condition{{{Operand: OperandCount, Operator: OperatorEquals, Values: []int64{1}}}},
			},
		},
	}

	_, err := rules.Classify(3, 3)
	require.ErrorIs(t, err, ErrNoCategory)
	assert.Contains(t, err.Error(), `"xx"`)

	err = rules.Validate(10)
	assert.ErrorIs(t, err, ErrRuleCoverage)

	var nilRules *RuleSet
	_, err = nilRules.Classify(1, 1)
	assert.ErrorIs(t, err, ErrNoCategory)
}

func TestClassifyInvalidInput(t *testing.T) {
	rules := EnglishRules("en")

	_, err := rules.Classify(-1, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = rules.Classify(10, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConditionOperators(t *testing.T) {
	tests := []struct {
		name  string
		cond  Condition
		count int64
		want  bool
	}{
		{"eq", Condition{Operator: OperatorEquals, Values: []int64{3}}, 3, true},
		{"ne", Condition{Operator: OperatorNotEquals, Values: []int64{3}}, 3, false},
		{"in", Condition{Operator: OperatorIn, Values: []int64{1, 2}}, 2, true},
		{"not in", Condition{Operator: OperatorNotIn, Values: []int64{1, 2}}, 5, true},
		{"within", Condition{Operator: OperatorWithin, Ranges: []Range{{Start: 5, End: 9}}}, 9, true},
		{"not within", Condition{Operator: OperatorNotWithin, Ranges: []Range{{Start: 5, End: 9}}}, 4, true},
		{"gte", Condition{Operator: OperatorAtLeast, Values: []int64{21}}, 20, false},
		{"lte", Condition{Operator: OperatorAtMost, Values: []int64{21}}, 20, true},
		{"mod", Condition{Mod: 100, Operator: OperatorWithin, Ranges: []Range{{Start: 12, End: 14}}}, 113, true},
		{"last digit", Condition{Operand: OperandLastDigit, Operator: OperatorEquals, Values: []int64{7}}, 47, true},
		{"unknown operator", Condition{Operator: "like", Values: []int64{1}}, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cond.matches(tc.count, LastDigit(tc.count)))
		})
	}
}

func TestRuleSetCloneIsDeep(t *testing.T) {
	original := SlavicRules("ru")
	clone := original.Clone()

	clone.Rules[0].Groups[0][0].Values[0] = 99

	assert.Equal(t, int64(1), original.Rules[0].Groups[0][0].Values[0])
	assert.Equal(t, []Category{CategorySingle, CategoryPlural, CategorySpecial}, original.Categories())
}

func TestLastDigit(t *testing.T) {
	assert.Equal(t, int64(7), LastDigit(7))
	assert.Equal(t, int64(1), LastDigit(21))
	assert.Equal(t, int64(0), LastDigit(100))
}
