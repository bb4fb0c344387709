package helper

import (
	"strings"
	"testing"

	"restaurant_manager/constants"
)

func TestGenerateOrderCode(t *testing.T) {
	a := GenerateOrderCode()
	b := GenerateOrderCode()

	if !strings.HasPrefix(a, "ORD-") {
		t.Errorf("code %q missing ORD- prefix", a)
	}
	if len(a) != len("ORD-")+8 {
		t.Errorf("code %q length = %d, want %d", a, len(a), len("ORD-")+8)
	}
	if a == b {
		t.Errorf("two generated codes collide: %q", a)
	}
}

func TestIsTerminalStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{constants.ORDER_PENDING, false},
		{constants.ORDER_PREPARING, false},
		{constants.ORDER_READY, false},
		{constants.ORDER_DELIVERED, true},
		{constants.ORDER_CANCELLED, true},
		{"burnt", false},
	}

	for _, tt := range tests {
		if got := IsTerminalStatus(tt.status); got != tt.want {
			t.Errorf("IsTerminalStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
