package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new projects
	DefaultFrameHeight  float64     `json:"default_frame_height"` // mm
	DefaultSpec         GlazingSpec `json:"default_spec"`
	DefaultWastePercent float64     `json:"default_waste_percent"`
	DefaultGlassPrice   float64     `json:"default_glass_price"` // per square meter

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultGlazingSpec().
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultFrameHeight:  2000,
		DefaultSpec:         DefaultGlazingSpec(),
		DefaultWastePercent: 10,
		DefaultGlassPrice:   0,
		RecentProjects:      []string{},
	}
}

// ApplyToProject copies the configured defaults into a new project.
func (c AppConfig) ApplyToProject(p *Project) {
	p.FrameHeight = c.DefaultFrameHeight
	p.Spec = c.DefaultSpec
}
