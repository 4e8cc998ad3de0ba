package config

type ServiceConfig struct {
	Name                string           `yaml:"name"`
	Environment         string           `yaml:"environment"`
	Version             string           `yaml:"version"`
	ClientURL           string           `yaml:"client_url"`
	StripeWebhookSecret string           `yaml:"stripe_webhook_secret"`
	Supabase            SupabaseConfig   `yaml:"supabase"`
	QuickBooks          QuickBooksConfig `yaml:"quickbooks"`
	Redis               RedisConfig      `yaml:"redis"`
}

type SupabaseConfig struct {
	JWTSecret  string `yaml:"jwt_secret"`
	ProjectURL string `yaml:"project_url"`
}

// QuickBooksConfig holds the environment-level QuickBooks settings.
// Per-tenant credentials (realm ID, access token) live on the gym's
// integration row, not here.
type QuickBooksConfig struct {
	BaseURL      string `yaml:"base_url"`
	MinorVersion string `yaml:"minor_version"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}
