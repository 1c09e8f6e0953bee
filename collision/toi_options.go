package collision

import (
	"github.com/edaniels/golog"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"go.viam.com/narrowphase/utils"
)

// default values for time of impact options.
const (
	// Number of conservative advancement steps before giving up.
	defaultMaxIterations = 50

	// A separation within this much of the target distance counts as contact.
	defaultTolerance = 1e-7
)

// TOIOptions are a set of options which control how the time of impact solver advances.
type TOIOptions struct {
	// Maximum number of separation evaluations. Must be at least 1.
	MaxIterations int `json:"max_iterations"`

	// Once the separation is within this distance of the target the solver reports convergence.
	Tolerance float64 `json:"tolerance"`

	// Whether the query runs in the plane or in space.
	Dimension Dimension `json:"dimension"`

	// Receives debug output about non-converging queries. Defaults to a no-op logger.
	Logger golog.Logger `json:"-"`
}

// NewBasicTOIOptions specifies a set of basic options for the solver.
func NewBasicTOIOptions() *TOIOptions {
	return &TOIOptions{
		MaxIterations: defaultMaxIterations,
		Tolerance:     defaultTolerance,
		Dimension:     Dim3,
		Logger:        zap.NewNop().Sugar(),
	}
}

// NewTOIOptionsFromExtra returns basic default settings updated by overridden parameters found in extra, keyed by the
// json names of the options. Unknown keys are an error.
func NewTOIOptionsFromExtra(extra map[string]interface{}) (*TOIOptions, error) {
	opt := NewBasicTOIOptions()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		ErrorUnused: true,
		Result:      opt,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(extra); err != nil {
		return nil, errors.Wrap(err, "error decoding time of impact options")
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return opt, nil
}

// Validate ensures all parts of the options are valid.
func (o *TOIOptions) Validate() error {
	var err error
	if o.MaxIterations < 1 {
		err = multierr.Append(err, newInvalidInputError("max_iterations must be at least 1, got %d", o.MaxIterations))
	}
	if o.Tolerance < 0 || !utils.IsFinite(o.Tolerance) {
		err = multierr.Append(err, newInvalidInputError("tolerance must be finite and non-negative, got %v", o.Tolerance))
	}
	if !o.Dimension.valid() {
		err = multierr.Append(err, newInvalidInputError("unsupported dimension %v", o.Dimension))
	}
	return err
}

func (o *TOIOptions) logger() golog.Logger {
	if o.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return o.Logger
}
