package cmd

// Config carries the application settings read from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// PenaltyWindowDays is how long a no-show blocks a client from reserving.
	PenaltyWindowDays int

	// ReserveMaxAttempts bounds the serialization-failure retries of the
	// reservation flow.
	ReserveMaxAttempts int
}
