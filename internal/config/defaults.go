package config

import "time"

// Defaults applied after every other source.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultTokenIssuer     = "go-note-keeper"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxOpenConns    = 10
	DefaultMaxIdleConns    = 4
	DefaultServiceName     = "go-note-keeper"
	DefaultAPIAddress      = "http://localhost:8080"
	DefaultAdapterTimeout  = 10 * time.Second
	DefaultSessionDSN      = "note-keeper-session.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer: DefaultTokenIssuer,
		},
		Storage: Storage{
			DB: DBConfig{
				MaxOpenConns: DefaultMaxOpenConns,
				MaxIdleConns: DefaultMaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Telemetry: Telemetry{
			ServiceName: DefaultServiceName,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAPIAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Client: Client{
			SessionDSN: DefaultSessionDSN,
		},
	}
}
