package config

import "os"

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// Debug enables debug logging of every applied strategy action.
func Debug() bool {
	debug, ok := os.LookupEnv("DEBUG")
	if !ok {
		return false
	}
	return debug != "0"
}
