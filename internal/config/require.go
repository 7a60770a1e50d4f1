package config

import "log"

func MustNonEmpty(value, envName string) {
	if value == "" {
		log.Fatalf("missing required env %s", envName)
	}
}

func MustPositive(value int, envName string) {
	if value <= 0 {
		log.Fatalf("env %s must be positive, got %d", envName, value)
	}
}
