package storage

import (
	"strings"
	"testing"
)

func TestObjectKeySanitizesName(t *testing.T) {
	key := ObjectKey("blog", "My Photo (1).JPG")
	if !strings.HasPrefix(key, "blog/") {
		t.Fatalf("key %q missing prefix", key)
	}
	if strings.ContainsAny(key, " ()") {
		t.Errorf("key %q contains unsafe characters", key)
	}
	if !strings.HasSuffix(key, "My-Photo-1-.JPG") && !strings.HasSuffix(key, ".JPG") {
		t.Errorf("key %q lost the extension", key)
	}
}

func TestObjectKeyEmptyName(t *testing.T) {
	key := ObjectKey("", "???")
	if !strings.HasSuffix(key, "-upload") {
		t.Errorf("key %q should fall back to a generic base name", key)
	}
	if strings.Contains(key, "/") {
		t.Errorf("key %q should not contain a path without a prefix", key)
	}
}

func TestObjectKeysAreUnique(t *testing.T) {
	a := ObjectKey("blog", "cover.png")
	b := ObjectKey("blog", "cover.png")
	if a == b {
		t.Error("expected distinct keys for identical inputs")
	}
}
