package config

const (
	defaultOutputDir     = "verses_out"
	defaultPrefix        = "Verse_"
	defaultBitrate       = "192k"
	defaultFadeInMillis  = 5
	defaultFadeOutMillis = 10
	defaultBookendBegin  = "begin-music.mp3"
	defaultBookendEnd    = "end-music.mp3"
	defaultBookendPrefix = "bookended_"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Output: Output{
			Dir:     defaultOutputDir,
			Prefix:  defaultPrefix,
			Bitrate: defaultBitrate,
		},
		Fades: Fades{
			InMillis:  defaultFadeInMillis,
			OutMillis: defaultFadeOutMillis,
		},
		Bookend: Bookend{
			BeginMusic: defaultBookendBegin,
			EndMusic:   defaultBookendEnd,
			Prefix:     defaultBookendPrefix,
			Extensions: []string{".mp3"},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
