package models

// MConfig Structure
type MConfig struct {
	Name     string         `yaml:"name"`
	Host     string         `yaml:"host"`
	Port     int            `yaml:"port"`
	LogLevel string         `yaml:"log_level"`
	Scanner  MScannerConfig `yaml:"scanner"`
	Network  MNetworkConfig `yaml:"network"`
}

// MScannerConfig describes the remote market-scanner backend.
type MScannerConfig struct {
	BaseURL    string   `yaml:"base_url"`
	Timeframes []string `yaml:"timeframes"`
}

type MNetworkConfig struct {
	RequestTimeout int    `yaml:"timeout"`
	MaxRetries     int    `yaml:"retries"`
	UserAgent      string `yaml:"user_agent"`
}
