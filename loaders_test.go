package timeago

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFileLoaderJSONAndTOML(t *testing.T) {
	loader := NewFileLoader(
		filepath.Join("testdata", "en_base.json"),
		filepath.Join("testdata", "en_extra.toml"),
	)

	phrases, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(phrases) != 5 {
		t.Fatalf("expected 5 phrases, got %d: %v", len(phrases), phrases)
	}

	if phrases["day"] != "single day" {
		t.Fatalf("later file should win, got %q", phrases["day"])
	}

	if phrases["days"] != "days" {
		t.Fatalf("unexpected days phrase %q", phrases["days"])
	}
}

func TestFileLoaderYAML(t *testing.T) {
	phrases, err := NewFileLoader(filepath.Join("testdata", "be.yaml")).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if phrases["years-special"] != "гадоў" {
		t.Fatalf("unexpected years-special %q", phrases["years-special"])
	}
}

func TestFileLoaderUnsupportedExtension(t *testing.T) {
	loader := NewFileLoader(filepath.Join("testdata", "en_base.json"), "unsupported.txt")

	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error for unsupported extension")
	}

	if _, err := NewFileLoader().Load(); err == nil {
		t.Fatal("expected error without paths")
	}
}

func TestLoadRuleFile(t *testing.T) {
	rules, err := LoadRuleFile(filepath.Join("testdata", "be_rules.yaml"))
	if err != nil {
		t.Fatalf("LoadRuleFile: %v", err)
	}

	if rules.Locale != "be" {
		t.Fatalf("Locale = %q", rules.Locale)
	}

	reference := SlavicRules("be")
	for count := int64(0); count <= 300; count++ {
		want, err := reference.Classify(count, LastDigit(count))
		if err != nil {
			t.Fatalf("reference Classify(%d): %v", count, err)
		}
		got, err := rules.Classify(count, LastDigit(count))
		if err != nil {
			t.Fatalf("Classify(%d): %v", count, err)
		}
		if got != want {
			t.Fatalf("Classify(%d) = %q want %q", count, got, want)
		}
	}
}

func TestLoadRuleFileScheme(t *testing.T) {
	rules, err := LoadRuleFile(filepath.Join("testdata", "scheme_rules.json"))
	if err != nil {
		t.Fatalf("LoadRuleFile: %v", err)
	}

	if got, _ := rules.Classify(22, 2); got != CategoryPlural {
		t.Fatalf("Classify(22) = %q", got)
	}
	if got, _ := rules.Classify(12, 2); got != CategorySpecial {
		t.Fatalf("Classify(12) = %q", got)
	}
}

func TestDecodeRuleFileErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		data string
	}{
		{name: "unknown category", path: "r.json", data: `{"rules":[{"category":"dual"}]}`},
		{name: "unknown operator", path: "r.json", data: `{"rules":[{"category":"single","groups":[[{"operator":"like"}]]}]}`},
		{name: "unknown operand", path: "r.yaml", data: "rules:\n  - category: single\n    groups:\n      - - {operand: x, operator: eq, values: [1]}\n"},
		{name: "empty group", path: "r.json", data: `{"rules":[{"category":"single","groups":[[]]},{"category":"plural"}]}`},
		{name: "empty group beside conditions", path: "r.yaml", data: "rules:\n  - category: single\n    groups:\n      - []\n      - - {operand: n, operator: eq, values: [1]}\n  - category: plural\n"},
		{name: "unknown scheme", path: "r.json", data: `{"scheme":"klingon"}`},
		{name: "scheme and rules", path: "r.json", data: `{"scheme":"english","rules":[{"category":"plural"}]}`},
		{name: "no rules", path: "r.json", data: `{"locale":"xx"}`},
		{name: "bad extension", path: "r.ini", data: ``},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeRuleFile(tc.path, []byte(tc.data)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestFilePackRegistration(t *testing.T) {
	pack, err := NewFilePack("be", "Беларуская",
		filepath.Join("testdata", "be_rules.yaml"),
		filepath.Join("testdata", "be.yaml"),
	)
	if err != nil {
		t.Fatalf("NewFilePack: %v", err)
	}

	registry := NewBuiltinRegistry()
	if err := registry.Register(pack); err != nil {
		t.Fatalf("Register: %v", err)
	}

	f, err := NewFormatter(WithRegistry(registry), WithLocale("be-BY"))
	if err != nil {
		t.Fatalf("NewFormatter: %v", err)
	}

	got, err := f.Format(21 * YearSeconds)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if got != "21 год таму" {
		t.Fatalf("Format = %q", got)
	}
}

func TestFilePackIncompleteRulesRejected(t *testing.T) {
	pack, err := NewFilePack("xx", "",
		filepath.Join("testdata", "incomplete_rules.json"),
		filepath.Join("testdata", "en_base.json"),
	)
	if err != nil {
		t.Fatalf("NewFilePack: %v", err)
	}

	err = NewRegistry().Register(pack)
	if !errors.Is(err, ErrRuleCoverage) {
		t.Fatalf("expected ErrRuleCoverage, got %v", err)
	}
}
