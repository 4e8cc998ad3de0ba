package entity

// Feature is a platform-defined toggleable capability.
type Feature struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DependsOn   *string `json:"depends_on,omitempty"`
}

// GymFeatureState is a feature joined with one gym's enablement.
type GymFeatureState struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DependsOn   *string `json:"depends_on,omitempty"`
	Enabled     bool    `json:"enabled"`
}
