package feasibility

import "testing"

func TestNewSkill(t *testing.T) {
	tests := []struct {
		name        string
		skillName   string
		proficiency int
		wantErr     bool
	}{
		{"valid", "Go", 3, false},
		{"minimum proficiency", "Go", 0, false},
		{"maximum proficiency", "Go", 5, false},
		{"empty name", "", 3, true},
		{"proficiency too high", "Go", 6, true},
		{"negative proficiency", "Go", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSkill(tt.skillName, tt.proficiency)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewSkill() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewRequiredSkill(t *testing.T) {
	tests := []struct {
		name          string
		skillName     string
		importance    int
		learningHours float64
		wantErr       bool
	}{
		{"valid", "SQL", 4, 20, false},
		{"zero learning hours", "SQL", 4, 0, false},
		{"empty name", "", 4, 20, true},
		{"importance too high", "SQL", 6, 20, true},
		{"negative importance", "SQL", -1, 20, true},
		{"negative learning hours", "SQL", 4, -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRequiredSkill(tt.skillName, tt.importance, tt.learningHours)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRequiredSkill() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequiredSkill_IsCritical(t *testing.T) {
	tests := []struct {
		importance int
		want       bool
	}{
		{5, true},
		{4, true},
		{3, false},
		{0, false},
	}

	for _, tt := range tests {
		skill := RequiredSkill{Name: "x", Importance: tt.importance}
		if got := skill.IsCritical(); got != tt.want {
			t.Errorf("IsCritical() with importance %d = %v, want %v", tt.importance, got, tt.want)
		}
	}
}

func TestNewRequiredTool(t *testing.T) {
	tests := []struct {
		name     string
		toolName string
		cost     float64
		wantErr  bool
	}{
		{"valid", "Docker", 0, false},
		{"with cost", "IDE", 99.99, false},
		{"empty name", "", 0, true},
		{"negative cost", "IDE", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRequiredTool(tt.toolName, "software", false, tt.cost)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRequiredTool() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewTool_EmptyName(t *testing.T) {
	if _, err := NewTool(""); err == nil {
		t.Error("NewTool(\"\") should fail")
	}
}
