package models

import (
	"errors"
	"path/filepath"
	"strings"

	"woods/schema"
)

// CameraConfig describes the camera section of a configuration document.
type CameraConfig struct {
	Index       int `json:"index" mapstructure:"index" config:"required"`
	HFlip       int `json:"hflip" mapstructure:"hflip" config:"required"`
	VFlip       int `json:"vflip" mapstructure:"vflip" config:"required"`
	Sensitivity int `json:"sensitivity" mapstructure:"sensitivity" config:"required"`

	Tuning     CameraTuning     `json:"tuning" mapstructure:"tuning"`
	Multimedia CameraMultimedia `json:"multimedia" mapstructure:"multimedia"`
	Timestamp  CameraTimestamp  `json:"timestamp" mapstructure:"timestamp"`
	Image      CameraImage      `json:"image" mapstructure:"image"`
}

// CameraTuning selects an optional sensor tuning file.
type CameraTuning struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled" config:"required"`
	Path    string `json:"path,omitempty" mapstructure:"path"`
}

// CameraMultimedia locates captured media relative to the application root.
type CameraMultimedia struct {
	Path string `json:"path" mapstructure:"path" config:"required"`
}

// CameraTimestamp controls the timestamp overlay burned into captures.
type CameraTimestamp struct {
	Enabled   bool   `json:"enabled" mapstructure:"enabled" config:"required"`
	Format    string `json:"format" mapstructure:"format" config:"required"`
	Color     [3]int `json:"color" mapstructure:"color" config:"required"`
	Origin    [2]int `json:"origin" mapstructure:"origin" config:"required"`
	Font      string `json:"font" mapstructure:"font" config:"required"`
	FScale    int    `json:"fscale" mapstructure:"fscale" config:"required"`
	Thickness int    `json:"thickness" mapstructure:"thickness" config:"required"`
}

// CameraImage controls snapshot naming and cadence.
type CameraImage struct {
	Prefix    string `json:"prefix" mapstructure:"prefix" config:"required"`
	Format    string `json:"fmt" mapstructure:"fmt" config:"required"`
	Size      string `json:"size" mapstructure:"size" config:"required"`
	Snapshots int    `json:"snapshots" mapstructure:"snapshots" config:"required"`
	Interval  int    `json:"interval" mapstructure:"interval" config:"required"`
}

// SectionName reports the document key the camera model binds to.
func (CameraConfig) SectionName() string { return "camera" }

// Validate checks constraints that span fields after binding.
func (c *CameraConfig) Validate() error {
	var violations []error
	if filepath.IsAbs(c.Multimedia.Path) {
		violations = append(violations, errors.New("multimedia.path: must be a relative path"))
	}
	if c.Tuning.Enabled && strings.TrimSpace(c.Tuning.Path) == "" {
		violations = append(violations, errors.New("tuning.path: must be set when tuning.enabled is true"))
	}
	return errors.Join(violations...)
}

// NewCamera is the camera section factory.
func NewCamera() schema.Section {
	return &CameraConfig{}
}

// Register adds every built-in section model to the registry.
func Register(r *schema.Registry) error {
	return r.Register(NewCamera)
}

// DefaultRegistry returns a registry preloaded with the built-in models.
func DefaultRegistry() *schema.Registry {
	registry := schema.NewRegistry()
	registry.MustRegister(NewCamera)
	return registry
}
