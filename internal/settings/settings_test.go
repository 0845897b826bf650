package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProjectWithoutSettingsFile(t *testing.T) {
	dir := t.TempDir()

	project, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if project.Root != dir {
		t.Errorf("expected root %q, got %q", dir, project.Root)
	}
	if project.Settings.Aircraft != "" {
		t.Errorf("expected empty settings, got %+v", project.Settings)
	}
}

func TestProjectDirs(t *testing.T) {
	dir := t.TempDir()
	project, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if project.AirfoilsDir() != filepath.Join(dir, "airfoils") {
		t.Errorf("unexpected airfoils dir %q", project.AirfoilsDir())
	}
	if project.AircraftDir() != filepath.Join(dir, "aircraft") {
		t.Errorf("unexpected aircraft dir %q", project.AircraftDir())
	}

	if err := project.MakeDirs(); err != nil {
		t.Fatalf("MakeDirs failed: %v", err)
	}
	for _, d := range []string{project.AircraftDir(), project.AirfoilsDir(), project.ResultsDir(), project.PlotsDir()} {
		info, err := os.Stat(d)
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory %q to exist", d)
		}
	}
}

func TestProjectSettingsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	project, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	project.Settings.Aircraft = "demo.xml"
	project.Settings.Verbose = true
	if err := project.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := LoadProject(dir)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if reloaded.Settings != project.Settings {
		t.Errorf("settings round trip failed: %+v != %+v", reloaded.Settings, project.Settings)
	}
	if reloaded.AircraftFile() != filepath.Join(dir, "aircraft", "demo.xml") {
		t.Errorf("unexpected aircraft file %q", reloaded.AircraftFile())
	}
}

func TestLoadProjectInvalidSettings(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, SettingsFile), []byte("not json"), 0o644); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	if _, err := LoadProject(dir); err == nil {
		t.Error("expected error for invalid settings file")
	}
}
