package theme

import "testing"

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"hana", "hana"},
		{"terminal", "terminal"},
		{"", "hana"},
		{"solarized", "hana"},
	}
	for _, tt := range tests {
		if got := ByName(tt.name); got.Name != tt.want {
			t.Errorf("ByName(%q).Name = %q, want %q", tt.name, got.Name, tt.want)
		}
	}
}

func TestSetActive(t *testing.T) {
	t.Cleanup(func() { SetActive("hana") })

	SetActive("terminal")
	if Active.Name != "terminal" {
		t.Errorf("Active.Name = %q, want terminal", Active.Name)
	}

	SetActive("not-a-theme")
	if Active.Name != "hana" {
		t.Errorf("Active.Name after unknown name = %q, want hana", Active.Name)
	}
}
