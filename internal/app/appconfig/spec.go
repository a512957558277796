package appconfig

import "time"

type ConfigSpec struct {
	// ServiceAddress is the listen address the HTTP API would listen on.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9310"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout
	// for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// DevMode to indicate development mode. When true, the program would spin up utilities
	// for debugging and log at trace level.
	DevMode bool `split_words:"true"`

	// Game selects which game profile is loaded at startup. Valid values are: hsr, genshin.
	Game string `split_words:"true" default:"hsr"`

	// DataDir is the directory user data (pull ledgers, account names) is persisted under,
	// one subdirectory per game.
	DataDir string `split_words:"true" default:"user_data"`

	// EventDir is the directory rate-up event schedules are read from, one subdirectory
	// per game.
	EventDir string `split_words:"true" default:"events"`

	// SyncPageSize is the number of records requested per gacha log page. The remote API
	// caps this at 20; the upstream client has always used 5.
	SyncPageSize int `split_words:"true" default:"5"`

	// SyncBaseDelay is the fixed part of the delay in-between gacha log page fetches.
	SyncBaseDelay time.Duration `split_words:"true" default:"1s"`

	// SyncDelayJitter is the upper bound of the random part of the delay in-between
	// gacha log page fetches.
	SyncDelayJitter time.Duration `split_words:"true" default:"2500ms"`

	// SyncSleepTick is the granularity at which the inter-page sleep checks for
	// cancellation and reports progress.
	SyncSleepTick time.Duration `split_words:"true" default:"100ms"`

	// FetchTimeout is the timeout for a single gacha log page request.
	FetchTimeout time.Duration `split_words:"true" default:"10s"`

	// ReportCacheTTL is how long a computed overall report is kept keyed by its
	// exclusion set before it has to be recounted, provided the ledgers are unchanged.
	ReportCacheTTL time.Duration `split_words:"true" default:"10m"`

	// UpdateRepo is the <owner>/<repo> GitHub repository the update check queries
	// for the latest release.
	UpdateRepo string `split_words:"true" default:"wishtally/backend"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `split_words:"true" default:"60s"`
}

type Config struct {
	ConfigSpec
}
