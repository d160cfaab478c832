package normalization

import "testing"

type color string

func TestNormalizeKnownValue(t *testing.T) {
	n := NewNormalizer(map[string]color{"red": "red", "blue": "blue"}, "red")

	if got := n.Normalize("  BLUE "); got != "blue" {
		t.Errorf("expected blue, got %s", got)
	}
}

func TestNormalizeUnknownValueFallsBack(t *testing.T) {
	n := NewNormalizer(map[string]color{"red": "red"}, "red")

	if got := n.Normalize("green"); got != "red" {
		t.Errorf("expected default red, got %s", got)
	}
}

func TestNormalizeWithError(t *testing.T) {
	n := NewNormalizer(map[string]color{"red": "red", "blue": "blue"}, "red")

	if _, err := n.NormalizeWithError("green"); err == nil {
		t.Error("expected error for unknown value")
	}
	got, err := n.NormalizeWithError("Red")
	if err != nil || got != "red" {
		t.Errorf("expected red without error, got %s (%v)", got, err)
	}
}

func TestValidKeysSorted(t *testing.T) {
	n := NewNormalizer(map[string]color{"red": "red", "blue": "blue"}, "red")

	keys := n.ValidKeys()
	if len(keys) != 2 || keys[0] != "blue" || keys[1] != "red" {
		t.Errorf("expected sorted keys [blue red], got %v", keys)
	}
}
