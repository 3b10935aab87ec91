package store

import "time"

// Config selects and configures the backends Open brings up
type Config struct {
	// AppName is the postgres application_name and the clickhouse client tag
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures the registration database
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// ConnectRetries bounds the startup ping loop, default 20
	ConnectRetries int
	// PingTimeout bounds each startup ping, default 3s
	PingTimeout time.Duration

	// TxAttempts bounds runs of one serializable transaction, default 3
	TxAttempts int
	// TxBackoff is the pause before the first rerun, default 25ms
	TxBackoff time.Duration
}

// CHConfig configures the event journal
type CHConfig struct {
	Enabled bool
	URL     string
	// Role tags the connection in clickhouse client info, eg "api"
	Role string
}
