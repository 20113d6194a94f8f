package config

const (
	defaultCount          = 30
	defaultMean           = 70.0
	defaultStdDev         = 30.0
	defaultMinScore       = 0.0
	defaultMaxScore       = 100.0
	defaultFailureOdds    = 20
	defaultRetryPauseMS   = 5
	defaultMaxAttempts    = 1000
	defaultPassThreshold  = 60.0
	defaultExcellentScore = 85.0
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
)

// Default returns a Config populated with the built-in values.
func Default() Config {
	return Config{
		Generation: Generation{
			Count:        defaultCount,
			Mean:         defaultMean,
			StdDev:       defaultStdDev,
			MinScore:     defaultMinScore,
			MaxScore:     defaultMaxScore,
			FailureOdds:  defaultFailureOdds,
			RetryPauseMS: defaultRetryPauseMS,
			MaxAttempts:  defaultMaxAttempts,
		},
		Thresholds: Thresholds{
			Pass:      defaultPassThreshold,
			Excellent: defaultExcellentScore,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
