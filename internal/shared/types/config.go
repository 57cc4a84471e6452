package types

// Config represents the application configuration that can be loaded
// from a file or the environment. Precedence: file < env < flags.
type Config struct {
	APIBaseURL string   `json:"api_base_url" yaml:"api_base_url" toml:"api_base_url"`
	DataDir    string   `json:"data_dir" yaml:"data_dir" toml:"data_dir"`
	Env        string   `json:"env" yaml:"env" toml:"env"`
	Offline    bool     `json:"offline" yaml:"offline" toml:"offline"`
	ChatWidth  int      `json:"chat_width" yaml:"chat_width" toml:"chat_width"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
}

// Merge overlays non-zero fields of other onto c and returns c.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}
	if other.APIBaseURL != "" {
		c.APIBaseURL = other.APIBaseURL
	}
	if other.DataDir != "" {
		c.DataDir = other.DataDir
	}
	if other.Env != "" {
		c.Env = other.Env
	}
	if other.Offline {
		c.Offline = true
	}
	if other.ChatWidth != 0 {
		c.ChatWidth = other.ChatWidth
	}
	if other.ReportName != "" {
		c.ReportName = other.ReportName
	}
	if len(other.ReportType) > 0 {
		c.ReportType = other.ReportType
	}
	if other.Dir != "" {
		c.Dir = other.Dir
	}
	return c
}
