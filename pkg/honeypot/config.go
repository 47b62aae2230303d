package honeypot

// Config holds honeypot configuration loadable from the environment.
type Config struct {
	Secret             string `env:"HONEYPOT_SECRET,required"`
	InputName          string `env:"HONEYPOT_INPUT_NAME" envDefault:"name__confirm"`
	RandomizeInputName bool   `env:"HONEYPOT_RANDOMIZE_INPUT_NAME" envDefault:"false"`
	ValidFromFieldName string `env:"HONEYPOT_VALID_FROM_FIELD_NAME" envDefault:"from__confirm"`
}

// NewFromConfig creates a Honeypot from the provided Config. Additional
// options are applied after the config values.
func NewFromConfig(cfg Config, opts ...Option) (*Honeypot, error) {
	configOpts := make([]Option, 0, 3+len(opts))

	if cfg.InputName != "" {
		configOpts = append(configOpts, WithInputName(cfg.InputName))
	}
	if cfg.RandomizeInputName {
		configOpts = append(configOpts, WithRandomizedInputName(true))
	}
	if cfg.ValidFromFieldName != "" {
		configOpts = append(configOpts, WithValidFromFieldName(cfg.ValidFromFieldName))
	}

	configOpts = append(configOpts, opts...)

	return New(cfg.Secret, configOpts...)
}
