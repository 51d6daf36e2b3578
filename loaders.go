package timeago

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileLoader reads a locale's phrases from JSON, YAML or TOML files.
// Files are flat key/value maps; later paths override earlier ones.
type FileLoader struct {
	paths []string
}

var _ PhraseLoader = &FileLoader{}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (Phrases, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("timeago: no loader paths configured")
	}

	phrases := make(Phrases)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("timeago: read %s: %w", path, err)
		}

		src, err := decodePhraseFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("timeago: decode %s: %w", path, err)
		}
		for key, value := range src {
			phrases[key] = value
		}
	}

	return phrases, nil
}

func decodePhraseFile(path string, data []byte) (Phrases, error) {
	var raw map[string]string

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("toml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	for key := range raw {
		if strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("empty key in %s", path)
		}
	}
	return Phrases(raw), nil
}

type rawRuleFile struct {
	Locale string    `json:"locale" yaml:"locale"`
	Scheme string    `json:"scheme" yaml:"scheme"`
	Rules  []rawRule `json:"rules" yaml:"rules"`
}

type rawRule struct {
	Category string              `json:"category" yaml:"category"`
	Groups   []rawConditionGroup `json:"groups" yaml:"groups"`
}

type rawConditionGroup []rawCondition

type rawCondition struct {
	Operand  string     `json:"operand" yaml:"operand"`
	Mod      int64      `json:"mod,omitempty" yaml:"mod,omitempty"`
	Operator string     `json:"operator" yaml:"operator"`
	Values   []int64    `json:"values,omitempty" yaml:"values,omitempty"`
	Ranges   []rawRange `json:"ranges,omitempty" yaml:"ranges,omitempty"`
}

type rawRange struct {
	Start int64 `json:"start" yaml:"start"`
	End   int64 `json:"end" yaml:"end"`
}

// LoadRuleFile reads a rule set from a JSON or YAML file.
func LoadRuleFile(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("timeago: read rules %s: %w", path, err)
	}
	set, err := DecodeRuleFile(path, data)
	if err != nil {
		return nil, fmt.Errorf("timeago: decode rules %s: %w", path, err)
	}
	return set, nil
}

// DecodeRuleFile parses rule data, picking the format from the path
// extension. A file may name a built in scheme (english, slavic, polish)
// instead of listing rules.
func DecodeRuleFile(path string, data []byte) (*RuleSet, error) {
	var raw rawRuleFile

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	return buildRuleSet(raw)
}

func buildRuleSet(raw rawRuleFile) (*RuleSet, error) {
	locale := normalizeLocale(raw.Locale)

	if raw.Scheme != "" {
		if len(raw.Rules) > 0 {
			return nil, errors.New("scheme and rules are mutually exclusive")
		}
		switch strings.ToLower(strings.TrimSpace(raw.Scheme)) {
		case "english":
			return EnglishRules(locale), nil
		case "slavic":
			return SlavicRules(locale), nil
		case "polish":
			return PolishRules(locale), nil
		default:
			return nil, fmt.Errorf("unknown scheme %q", raw.Scheme)
		}
	}

	if len(raw.Rules) == 0 {
		return nil, errors.New("missing rules")
	}

	set := &RuleSet{Locale: locale, Rules: make([]Rule, 0, len(raw.Rules))}
	for _, rawRule := range raw.Rules {
		category, err := parseCategory(rawRule.Category)
		if err != nil {
			return nil, err
		}

		groups := make([][]Condition, 0, len(rawRule.Groups))
		for _, rawGroup := range rawRule.Groups {
			if len(rawGroup) == 0 {
				return nil, fmt.Errorf("%s: empty condition group", category)
			}
			conditions := make([]Condition, 0, len(rawGroup))
			for _, rawCondition := range rawGroup {
				operand, err := parseOperand(rawCondition.Operand)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", category, err)
				}
				operator, err := parseConditionOperator(rawCondition.Operator)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", category, err)
				}
				cond := Condition{
					Operand:  operand,
					Mod:      rawCondition.Mod,
					Operator: operator,
				}
				if len(rawCondition.Values) > 0 {
					cond.Values = append([]int64(nil), rawCondition.Values...)
				}
				for _, r := range rawCondition.Ranges {
					cond.Ranges = append(cond.Ranges, Range{Start: r.Start, End: r.End})
				}
				conditions = append(conditions, cond)
			}
			groups = append(groups, conditions)
		}

		rule := Rule{Category: category}
		if len(groups) > 0 {
			rule.Groups = groups
		}
		set.Rules = append(set.Rules, rule)
	}

	return set, nil
}

// NewFilePack reads the rule file and wraps the phrase files in a
// FileLoader. Phrases are only read when the pack is first used.
func NewFilePack(code, name, rulesPath string, phrasePaths ...string) (Pack, error) {
	rules, err := LoadRuleFile(rulesPath)
	if err != nil {
		return Pack{}, err
	}
	if rules.Locale == "" {
		rules.Locale = normalizeLocale(code)
	}
	return Pack{
		Code:   code,
		Name:   name,
		Rules:  rules,
		Loader: NewFileLoader(phrasePaths...),
	}, nil
}
