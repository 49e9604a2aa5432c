package config

import "time"

// defaultConfig returns the built-in baseline every other source is merged
// on top of.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-file-share",
			TokenDuration: time.Hour,
			LinkPolicy:    LinkPolicyMultiUse,
			LogLevel:      "info",
			Argon2: Argon2{
				Time:      1,
				MemoryKiB: 64 * 1024,
				Threads:   4,
			},
		},
		Storage: Storage{
			DB: DB{
				QueryTimeout: 5 * time.Second,
				MaxOpenConns: 10,
			},
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8080",
			RequestTimeout: 30 * time.Second,
			MaxUploadSize:  32 << 20,

			HealthProbeInterval: 15 * time.Second,
		},
		Adapter: Adapter{
			BaseURL:        "http://localhost:8080",
			RequestTimeout: 30 * time.Second,
			RetryCount:     2,
			TokenFile:      ".go-file-share-token",
		},
		Workers: Workers{
			ReapInterval: time.Hour,
			SweepTimeout: time.Minute,
		},
	}
}
