package conv

// Config controls how [Convolve] picks a strategy.
type Config struct {
	// Strategy, when non-nil, is used for every call.
	Strategy Strategy

	// FFTThreshold enables size-based selection: inputs with at least this
	// many samples use FrequencyDomain. Zero disables the FFT path.
	FFTThreshold int

	forced bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the pass-through configuration: time domain only.
func DefaultConfig() Config {
	return Config{}
}

// WithStrategy forces a specific strategy.
func WithStrategy(s Strategy) Option {
	return func(cfg *Config) {
		cfg.Strategy = s
		cfg.forced = true
	}
}

// WithFFTThreshold enables FFT convolution for inputs of length >= n.
// Non-positive values disable it.
func WithFFTThreshold(n int) Option {
	return func(cfg *Config) {
		if n < 0 {
			n = 0
		}
		cfg.FFTThreshold = n
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
