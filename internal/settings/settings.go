// Package settings holds the project configuration and directory layout
// for a conversion run.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default directory names inside a project root
const (
	DirAircraft = "aircraft"
	DirAirfoils = "airfoils"
	DirResults  = "_results"
	DirPlots    = "_plots"
)

// SettingsFile is the name of the project settings file
const SettingsFile = "settings.json"

// Settings is the content of a project settings file
type Settings struct {
	// Aircraft is the CPACS file name inside the aircraft directory
	Aircraft string `json:"aircraft"`

	// Verbose enables debug logging
	Verbose bool `json:"verbose"`
}

// Project is a project root directory together with its settings
type Project struct {
	Root     string
	Settings Settings
}

// LoadProject opens the project at root, reading settings.json if present
func LoadProject(root string) (*Project, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root %s: %w", root, err)
	}

	p := &Project{Root: abs}

	data, err := os.ReadFile(filepath.Join(abs, SettingsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := json.Unmarshal(data, &p.Settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return p, nil
}

// Save writes the settings file into the project root
func (p *Project) Save() error {
	data, err := json.MarshalIndent(p.Settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	file := filepath.Join(p.Root, SettingsFile)
	if err := os.WriteFile(file, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// AircraftDir returns the directory holding CPACS input files
func (p *Project) AircraftDir() string {
	return filepath.Join(p.Root, DirAircraft)
}

// AirfoilsDir returns the directory for extracted airfoil coordinate files
func (p *Project) AirfoilsDir() string {
	return filepath.Join(p.Root, DirAirfoils)
}

// ResultsDir returns the directory for solver results
func (p *Project) ResultsDir() string {
	return filepath.Join(p.Root, DirResults)
}

// PlotsDir returns the directory for plots
func (p *Project) PlotsDir() string {
	return filepath.Join(p.Root, DirPlots)
}

// AircraftFile returns the absolute path of the configured CPACS file
func (p *Project) AircraftFile() string {
	return filepath.Join(p.AircraftDir(), p.Settings.Aircraft)
}

// MakeDirs creates all project directories
func (p *Project) MakeDirs() error {
	for _, dir := range []string{p.AircraftDir(), p.AirfoilsDir(), p.ResultsDir(), p.PlotsDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}
