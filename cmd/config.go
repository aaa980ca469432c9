package cmd

import "time"

// Config holds all runtime settings loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StaleOrderMaxAge is how long a pending order may stay unconfirmed
	// before the background sweep cancels it.
	StaleOrderMaxAge time.Duration
}
