package utils

import (
	"io"
	"log"
	"os"
)

type LoggerConfig struct {
	// "text" or "json"
	Format       string
	Output       io.Writer
	EnableColors bool
}

// InitLogger returns the process logger. Every component logs through it.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[EduAdmin] "

	if cfg.Format == "json" {
		return log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)
	}
	if cfg.EnableColors {
		prefix = "\033[36m" + prefix + "\033[0m"
	}
	return log.New(cfg.Output, prefix, log.LstdFlags|log.Lshortfile|log.LUTC)
}

func statusColor(status int) string {
	switch {
	case status >= 500:
		return "\033[31m"
	case status >= 400:
		return "\033[33m"
	case status >= 300:
		return "\033[36m"
	case status >= 200:
		return "\033[32m"
	default:
		return "\033[37m"
	}
}

func methodColor(method string) string {
	switch method {
	case "GET":
		return "\033[34m"
	case "POST":
		return "\033[33m"
	case "PUT":
		return "\033[36m"
	case "DELETE":
		return "\033[31m"
	case "PATCH":
		return "\033[32m"
	default:
		return "\033[37m"
	}
}

// Colorize returns the escape codes for a status line, or empty strings when
// colors are off.
func Colorize(enabled bool, method string, status int) (m, s, reset string) {
	if !enabled {
		return "", "", ""
	}
	return methodColor(method), statusColor(status), "\033[0m"
}
