package config

const (
	defaultConfigPath       = "~/.config/samerename/config.toml"
	defaultAlignBinary      = "align_image_stack"
	defaultOverlapThreshold = 0.9
	defaultPrefix           = "seq_"
	defaultMinCandidates    = 2
	defaultOrdering         = OrderingCreationTime
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

const (
	OrderingCreationTime = "ctime"
	OrderingEXIF         = "exif"
)

// DefaultExtensions lists the image extensions considered for sequencing.
func DefaultExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".tiff", ".tif"}
}

// DefaultParameterSets lists the align_image_stack flag sets run for every scan.
func DefaultParameterSets() [][]string {
	return [][]string{
		{"--corr=0.8"},
		{"--corr=0.9"},
		{"--corr=0.7"},
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Align: Align{
			Binary:        defaultAlignBinary,
			ParameterSets: DefaultParameterSets(),
		},
		Selection: Selection{
			OverlapThreshold: defaultOverlapThreshold,
			Prefix:           defaultPrefix,
			Extensions:       DefaultExtensions(),
			MinCandidates:    defaultMinCandidates,
			Ordering:         defaultOrdering,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
