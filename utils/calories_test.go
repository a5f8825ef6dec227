package utils

import "testing"

func TestBMR(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		age      int
		gender   string
		want     float64
		wantErr  bool
	}{
		{"male", 70, 175, 25, "male", 1673.75, false},
		{"male case-insensitive", 70, 175, 25, "Male", 1673.75, false},
		{"female", 60, 165, 30, "female", 1320.25, false},
		{"unspecified gender uses female constant", 60, 165, 30, "", 1320.25, false},
		{"zero weight", 0, 175, 25, "male", 0, true},
		{"zero age", 70, 175, 0, "male", 0, true},
		{"implausible height", 70, 400, 25, "male", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BMR(tt.weight, tt.height, tt.age, tt.gender)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BMR() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("BMR() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaintenanceCalories(t *testing.T) {
	if got := MaintenanceCalories(1673.75, 1.55); got != 2594 {
		t.Errorf("MaintenanceCalories() = %d, want 2594", got)
	}
}

func TestActivityMultiplier(t *testing.T) {
	if m, err := ActivityMultiplier("1.55"); err != nil || m != 1.55 {
		t.Errorf("ActivityMultiplier(1.55) = %v, %v", m, err)
	}
	for _, bad := range []string{"", "sedentary", "0.5", "9"} {
		if _, err := ActivityMultiplier(bad); err == nil {
			t.Errorf("ActivityMultiplier(%q) expected error", bad)
		}
	}
}

func TestGoalCalories(t *testing.T) {
	if got := GoalCalories(2594, "lose"); got != 2075 {
		t.Errorf("lose = %d, want 2075", got)
	}
	if got := GoalCalories(2594, "gain"); got != 2983 {
		t.Errorf("gain = %d, want 2983", got)
	}
	if got := GoalCalories(2594, "maintain"); got != 2594 {
		t.Errorf("maintain = %d, want 2594", got)
	}
	if got := GoalCalories(2594, ""); got != 2594 {
		t.Errorf("empty goal = %d, want 2594", got)
	}
}
