package common

import (
	"testing"
)

func TestNormalizeHeaders(t *testing.T) {
	rawnames := []string{"Order ID", "Sub-Category", "shipping_cost", "Product  Name", ""}
	expected := []string{"order_id", "sub_category", "shipping_cost", "product_name", "cl4"}
	clean := NormalizeHeaders(rawnames)
	t.Logf("Input: %v", rawnames)
	t.Logf("Output: %v", clean)
	for i, v := range clean {
		if v != expected[i] {
			t.Errorf("at index %d: got %s, want %s", i, v, expected[i])
		}
	}
}

func TestNormalizeHeadersCollisions(t *testing.T) {
	rawnames := []string{"state", "State", "STATE"}
	expected := []string{"state", "state2", "state3"}
	clean := NormalizeHeaders(rawnames)
	for i, v := range clean {
		if v != expected[i] {
			t.Errorf("at index %d: got %s, want %s", i, v, expected[i])
		}
	}
}
