package config

const (
	defaultDataDir       = "~/.local/share/lshsim"
	defaultLogDir        = "~/.local/share/lshsim/logs"
	defaultShingleSize   = 4
	defaultSignatureSize = 50
	defaultNumBands      = 10
	defaultHash          = "md5"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultLogMaxSizeMB  = 10
	defaultLogBackups    = 5
	defaultLogRetention  = 30
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		LSH: LSH{
			ShingleSize:   defaultShingleSize,
			SignatureSize: defaultSignatureSize,
			NumBands:      defaultNumBands,
			Hash:          defaultHash,
		},
		Results: Results{
			Enabled: true,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogBackups,
			RetentionDays: defaultLogRetention,
		},
	}
}
