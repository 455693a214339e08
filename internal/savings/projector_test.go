package savings

import (
	"testing"
	"time"
)

func TestProject(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name         string
		amount       string
		startDate    string
		endDate      string
		selectedDate string
		want         Result
	}{
		{
			name:   "nine days even split",
			amount: "90000", startDate: "2024-01-01", endDate: "2024-01-10",
			want: Result{Kind: Projected, Daily: 10000, Days: 9},
		},
		{
			name:   "uneven split rounds daily up",
			amount: "100000", startDate: "2024-01-01", endDate: "2024-01-04",
			want: Result{Kind: Projected, Daily: 33334, Days: 3},
		},
		{
			name:   "single day",
			amount: "500", startDate: "2024-01-01", endDate: "2024-01-02",
			want: Result{Kind: Projected, Daily: 500, Days: 1},
		},
		{
			name:   "empty amount prompts",
			amount: "", startDate: "2024-01-01", endDate: "2024-01-10",
			want: Result{Kind: Prompt},
		},
		{
			name:   "zero amount prompts",
			amount: "0", startDate: "2024-01-01", endDate: "2024-01-10",
			want: Result{Kind: Prompt},
		},
		{
			name:   "negative amount prompts",
			amount: "-100", startDate: "2024-01-01", endDate: "2024-01-10",
			want: Result{Kind: Prompt},
		},
		{
			name:   "missing end date prompts",
			amount: "90000", startDate: "2024-01-01", endDate: "",
			want: Result{Kind: Prompt},
		},
		{
			name:   "end equals start",
			amount: "90000", startDate: "2024-01-10", endDate: "2024-01-10",
			want: Result{Kind: InvalidRange},
		},
		{
			name:   "end before start",
			amount: "90000", startDate: "2024-01-10", endDate: "2024-01-05",
			want: Result{Kind: InvalidRange},
		},
		{
			name:   "selected date stands in for start",
			amount: "90000", startDate: "", endDate: "2024-03-10", selectedDate: "2024-03-01",
			want: Result{Kind: Projected, Daily: 10000, Days: 9},
		},
		{
			name:   "start date wins over selected date",
			amount: "90000", startDate: "2024-01-01", endDate: "2024-01-10", selectedDate: "2024-03-01",
			want: Result{Kind: Projected, Daily: 10000, Days: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Project(tt.amount, tt.startDate, tt.endDate, tt.selectedDate, now)
			if got != tt.want {
				t.Errorf("Project() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProjectFallsBackToNow(t *testing.T) {
	// No start or selected date: now (mid-day) to midnight two days out
	// is a day and a half, which still counts as two days.
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	got := Project("3000", "", "2024-01-03", "", now)
	want := Result{Kind: Projected, Daily: 1500, Days: 2}
	if got != want {
		t.Errorf("Project() = %+v, want %+v", got, want)
	}
}

func TestResultMessage(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Prompt, PromptMessage},
		{InvalidRange, InvalidRangeMessage},
		{Projected, ""},
	}
	for _, tt := range tests {
		if got := (Result{Kind: tt.kind}).Message(); got != tt.want {
			t.Errorf("Message() for kind %d = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
