package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/GlazeCut/internal/model"
)

func TestSaveLoadTemplates_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")

	guide := model.Guide{{X: 0, Y: 0}, {X: 2500, Y: 0}}
	configs := []model.EdgeConfig{{Class: model.EdgeGlazing}}
	templates := []model.GuideTemplate{
		model.NewGuideTemplate("Custom Straight", "A short run", guide, configs),
	}

	if err := SaveTemplates(path, templates); err != nil {
		t.Fatalf("SaveTemplates: %v", err)
	}

	got, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("templates = %d, want 1", len(got))
	}
	if got[0].Name != "Custom Straight" {
		t.Errorf("name = %q", got[0].Name)
	}
	if got[0].Guide.EdgeCount() != 1 {
		t.Errorf("edge count = %d, want 1", got[0].Guide.EdgeCount())
	}
}

func TestLoadTemplates_MissingFile(t *testing.T) {
	got, err := LoadTemplates(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadTemplates: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
}

func TestLoadTemplates_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("[{oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTemplates(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFindTemplate_BuiltinFirst(t *testing.T) {
	custom := []model.GuideTemplate{{ID: "mine", Name: "Mine"}}

	tpl, ok := FindTemplate(custom, "straight")
	if !ok {
		t.Fatal("expected builtin straight")
	}
	if tpl.Name != "Straight" {
		t.Errorf("name = %q", tpl.Name)
	}

	tpl, ok = FindTemplate(custom, "mine")
	if !ok {
		t.Fatal("expected custom template")
	}
	if tpl.Name != "Mine" {
		t.Errorf("name = %q", tpl.Name)
	}

	if _, ok := FindTemplate(custom, "absent"); ok {
		t.Error("expected lookup miss")
	}
}
