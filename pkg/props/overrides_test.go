package props

import "testing"

func TestOverridesLifecycle(t *testing.T) {
	ov := NewOverrides()

	if _, ok := ov.Lookup("k"); ok {
		t.Error("empty store should have no entries")
	}

	ov.Set("k", "v1")
	if got, ok := ov.Lookup("k"); !ok || got != "v1" {
		t.Errorf("Lookup(k) = %q, %v, want v1, true", got, ok)
	}

	ov.Set("k", "v2")
	ov.Set("other", "x")
	snap := ov.Snapshot()
	if len(snap) != 2 || snap["k"] != "v2" || snap["other"] != "x" {
		t.Errorf("Snapshot() = %v", snap)
	}

	ov.Delete("k")
	if _, ok := ov.Lookup("k"); ok {
		t.Error("Lookup after Delete should miss")
	}
}

func TestDefaultOverridesIsProcessWide(t *testing.T) {
	// Writes through the default store are visible to every reader of it.
	// The key is namespaced so parallel tests cannot collide.
	const key = "overrides_test.default.visibility"
	DefaultOverrides().Set(key, "seen")
	defer DefaultOverrides().Delete(key)

	if got, ok := DefaultOverrides().Lookup(key); !ok || got != "seen" {
		t.Errorf("DefaultOverrides().Lookup = %q, %v, want seen, true", got, ok)
	}
}
