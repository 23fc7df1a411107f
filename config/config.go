package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("BLOG_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("BLOG_DEBUG") == "true"
}

// GetSecret returns the session signing key. Startup fails fast when it
// is empty, so the rest of the code may assume it is always set.
func GetSecret() string {
	return os.Getenv("BLOG_SECRET")
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("BLOG_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "db"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/posts.db", GetDBFolderPath())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("BLOG_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}

func GetListen() string {
	return os.Getenv("BLOG_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("BLOG_PORT"))
	if err != nil {
		return 5002
	}
	return port
}

// GetWebDomain returns the optional Host allow-list value. Empty means
// requests are accepted for any host.
func GetWebDomain() string {
	return os.Getenv("BLOG_DOMAIN")
}
