package classify

import (
	"testing"
)

func TestIsActivityLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", false},
		{"   ", false},
		{"3", false},
		{"12.", false},
		{"4)", false},
		{"III", false},
		{"XIV", false},
		{"XII.", false},
		{"S/N", false},
		{"Date", false},
		{"Stage of Activity", false},
		{"ACTIVITY", false},
		{"Month:", false},
		{"Total", false},
		{"Summary", false},
		{"JAN", false},
		{"Week 4", false},
		{"2nd", false},
		{"01-07", false},
		{"1 - 2", false},
		{"1. Activity", false},
		{"2nd Weeding", true},
		{"1st Fertilizer Application", true},
		{"3rd weeding", true},
		{"1. Land preparation", true},
		{"Land Preparation", true},
		{"Site Selection", true},
		{"Harvesting", true},
		{"Mix", true},
		{"mix", true},
		{"dim", true},
		{"mid", true},
		{"Pest and Disease Control", true},
		{"Brooding", true},
		{"2 bags NPK per acre", true},
	}

	for _, tt := range tests {
		if got := IsActivityLabel(tt.input); got != tt.expected {
			t.Errorf("IsActivityLabel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
