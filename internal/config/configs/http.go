package configs

// HTTP defines configuration for the HTTP server. CORSOrigins is the
// allow-list handed to the CORS middleware for the external dashboard UI;
// "*" permits any origin.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// CORSOrigins is a comma-separated list of allowed origins.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*"`
}
