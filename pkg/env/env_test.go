package env

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("STOREFRONT_TEST_VALUE", "  console ")
	if got := Get("STOREFRONT_TEST_VALUE", "json"); got != "console" {
		t.Fatalf("expected console got %q", got)
	}

	t.Setenv("STOREFRONT_TEST_VALUE", "   ")
	if got := Get("STOREFRONT_TEST_VALUE", "json"); got != "json" {
		t.Fatalf("expected fallback got %q", got)
	}
}
