package store

import (
	"path/filepath"
	"testing"
)

func openTestDrafts(t *testing.T) *Drafts {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "drafts.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestSaveAndLoad(t *testing.T) {
	d := openTestDrafts(t)

	draft := Draft{
		GoalID:    0,
		Name:      "제주도 여행",
		Amount:    "90000",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-10",
		Category:  "여행",
		AccountID: "3",
		Icon:      "travel",
	}
	if err := d.Save(draft); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, ok, err := d.Load(0)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !ok {
		t.Fatal("Load() found no draft after Save()")
	}
	if got.Name != draft.Name || got.Amount != draft.Amount || got.Icon != draft.Icon {
		t.Errorf("Load() = %+v, want fields from %+v", got, draft)
	}
	if got.SavedAt.IsZero() {
		t.Error("Load() returned zero SavedAt")
	}
}

func TestLoadMissing(t *testing.T) {
	d := openTestDrafts(t)

	_, ok, err := d.Load(99)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok {
		t.Error("Load() reported a draft that was never saved")
	}
}

func TestSaveReplaces(t *testing.T) {
	d := openTestDrafts(t)

	if err := d.Save(Draft{GoalID: 7, Name: "첫 번째"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := d.Save(Draft{GoalID: 7, Name: "두 번째"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, ok, err := d.Load(7)
	if err != nil || !ok {
		t.Fatalf("Load() = ok=%v, err=%v", ok, err)
	}
	if got.Name != "두 번째" {
		t.Errorf("Load().Name = %q, want %q", got.Name, "두 번째")
	}
}

func TestDraftsPerGoalID(t *testing.T) {
	d := openTestDrafts(t)

	if err := d.Save(Draft{GoalID: 0, Name: "새 목표"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := d.Save(Draft{GoalID: 42, Name: "수정 중"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, ok, _ := d.Load(42)
	if !ok || got.Name != "수정 중" {
		t.Errorf("Load(42) = %+v ok=%v, want the edit draft", got, ok)
	}
	got, ok, _ = d.Load(0)
	if !ok || got.Name != "새 목표" {
		t.Errorf("Load(0) = %+v ok=%v, want the new-goal draft", got, ok)
	}
}

func TestDelete(t *testing.T) {
	d := openTestDrafts(t)

	if err := d.Save(Draft{GoalID: 0, Name: "이름"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := d.Delete(0); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, ok, err := d.Load(0)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok {
		t.Error("Load() found a draft after Delete()")
	}
}

func TestDeleteMissing(t *testing.T) {
	d := openTestDrafts(t)
	if err := d.Delete(12345); err != nil {
		t.Errorf("Delete() of absent draft = %v, want nil", err)
	}
}
