// Package config provides configuration management for the joinforge CLI.
//
// Configuration is layered: built-in defaults, then an optional
// joinforge.yaml file, then JOINFORGE_* environment variables, then
// explicitly set CLI flags. Later layers win.
package config

// Default configuration values.
const (
	DefaultPort        = 8745
	DefaultHistoryFile = ".joinforge/repl_history"
	DefaultBotTimeout  = 30
)

// Config holds all CLI configuration options.
type Config struct {
	// Verbose enables debug-level logging.
	Verbose bool `koanf:"verbose"`
	// Port is the listen port for the HTTP API.
	Port int `koanf:"port"`
	// HistoryFile is where the REPL stores readline history.
	HistoryFile string `koanf:"history_file"`
	// BotToken authenticates the Telegram front end. Usually supplied via
	// the JOINFORGE_BOT_TOKEN environment variable rather than the file.
	BotToken string `koanf:"bot_token"`
	// BotTimeout is the Telegram long-poll timeout in seconds.
	BotTimeout int `koanf:"bot_timeout"`
}
