package sourceview

import "testing"

func TestGetSourceCaches(t *testing.T) {
	cm := newContentManager()

	first, err := cm.getSource("Bindings", "y := 10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == "" {
		t.Fatal("expected highlighted content")
	}

	if !cm.cache.Contains("Bindings") {
		t.Fatal("expected snippet to be cached after the first lookup")
	}

	second, err := cm.getSource("Bindings", "a different snippet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second != first {
		t.Fatal("expected the cached content for a known title")
	}
}
