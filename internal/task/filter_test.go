package task

import "testing"

func TestFilterMatch(t *testing.T) {
	pending := Task{ID: 1, Title: "a", Category: "work"}
	done := Task{ID: 2, Title: "b", Done: true}

	tests := []struct {
		name   string
		filter Filter
		task   Task
		want   bool
	}{
		{"pending matches pending", Pending(), pending, true},
		{"pending rejects done", Pending(), done, false},
		{"completed matches done", Completed(), done, true},
		{"completed rejects pending", Completed(), pending, false},
		{"all matches pending", All(), pending, true},
		{"all matches done", All(), done, true},
		{"category exact match", ByCategory("work"), pending, true},
		{"category mismatch", ByCategory("home"), pending, false},
		{"category is case sensitive", ByCategory("Work"), pending, false},
		{"empty category matches everything", ByCategory(""), done, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(tt.task); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFilterMode(t *testing.T) {
	tests := []struct {
		input   string
		want    FilterMode
		wantErr bool
	}{
		{input: "", want: FilterAll},
		{input: "pending", want: FilterPending},
		{input: "Completed", want: FilterCompleted},
		{input: " all ", want: FilterAll},
		{input: "category", want: FilterCategory},
		{input: "done", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFilterMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseFilterMode(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFilterMode(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFilterMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		category string
		want     Filter
		wantErr  bool
	}{
		{name: "defaults to all", want: All()},
		{name: "category alone", category: "work", want: ByCategory("work")},
		{name: "explicit category", mode: "category", category: "home", want: ByCategory("home")},
		{name: "category mode without name", mode: "category", want: ByCategory("")},
		{name: "pending ignores category", mode: "pending", category: "work", want: Pending()},
		{name: "unknown mode", mode: "later", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFilter(tt.mode, tt.category)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseFilter(%q, %q) expected error", tt.mode, tt.category)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFilter(%q, %q) error = %v", tt.mode, tt.category, err)
			}
			if got != tt.want {
				t.Errorf("ParseFilter(%q, %q) = %+v, want %+v", tt.mode, tt.category, got, tt.want)
			}
		})
	}
}
