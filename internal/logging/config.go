package logging

// LogConfig holds logging-related configuration
type LogConfig struct {
	File       string // Path to log file
	MaxSize    int    // Max size in MB
	MaxBackups int    // Number of backups to keep
	MaxAge     int    // Max age in days
}
