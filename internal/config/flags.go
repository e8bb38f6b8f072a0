package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a note store API base URL
//	-link-base-url origin for shareable note links
//	-d local SQLite database path
//	-c/-config json file path with configs
//	-request-timeout per-attempt request timeout (e.g., "10s")
//	-retry-count number of retry attempts after a failed request
//	-retry-wait delay between attempts (e.g., "1s")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var linkBaseURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var retryCount int
	var retryWaitTime time.Duration

	flag.StringVar(&serverAddress, "a", "", "Note store API base URL")
	flag.StringVar(&linkBaseURL, "link-base-url", "", "Origin for shareable note links")
	flag.StringVar(&databaseDSN, "d", "", "Local SQLite database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	flag.IntVar(&retryCount, "retry-count", 0, "Retry count for failed requests")
	flag.DurationVar(&retryWaitTime, "retry-wait", 0, "Delay between request attempts (e.g., 1s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LinkBaseURL: linkBaseURL,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
			RetryCount:     retryCount,
			RetryWaitTime:  retryWaitTime,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
