package cmd

// Config carries every deployment setting the app reads from .env.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// OracleURL is the dispatch assistant endpoint. Empty disables every
	// oracle-backed feature; the core falls back to deterministic logic.
	OracleURL     string
	OracleTimeout string

	// KafkaHost is a comma-free single broker address. Empty disables
	// order status events.
	KafkaHost             string
	KafkaOrderStatusTopic string

	// RedisAddr is the route plan cache. Empty disables caching.
	RedisAddr string

	// AllowImpersonatedWrites lets an operator viewing the console as a
	// courier also act as that courier.
	AllowImpersonatedWrites bool
}
