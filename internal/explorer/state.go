package explorer

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/Faultbox/noisetex/pkg/heightmap"
	"github.com/Faultbox/noisetex/pkg/noise"
)

// TextureSink receives each regenerated RGB buffer. The buffer is only valid
// until the next Update.
type TextureSink interface {
	Upload(width, height int, rgb []byte)
}

// State owns the explorer's parameters and the buffers derived from them.
// It is driven by the render loop and is not safe for concurrent use.
type State struct {
	log  *zap.Logger
	size int
	norm heightmap.Normalizer
	sink TextureSink
	base noise.Config

	params    Params
	last      Params
	generated bool

	// failed holds the last parameter set that could not be generated, so the
	// same invalid set is not retried every frame.
	failed    Params
	hasFailed bool

	hm      heightmap.Heightmap
	buf     []byte
	stats   heightmap.Stats
	lastErr error
	// genErr is the warning from the last successful generation.
	genErr error
}

// New creates explorer state producing size x size textures, starting from
// cfg. Nothing is generated until the first Update.
func New(size int, cfg noise.Config, norm heightmap.Normalizer, sink TextureSink, log *zap.Logger) (*State, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", heightmap.ErrInvalidWidth, size)
	}
	if sink == nil {
		return nil, errors.New("explorer: nil texture sink")
	}
	if cfg.Seed < math.MinInt32 || cfg.Seed > math.MaxInt32 {
		return nil, fmt.Errorf("%w: seed %d does not fit in 32 bits", noise.ErrInvalidConfig, cfg.Seed)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &State{
		log:    log,
		size:   size,
		norm:   norm,
		sink:   sink,
		base:   cfg,
		params: ParamsFromConfig(cfg),
	}, nil
}

// Params returns the current parameters for in-place editing.
func (s *State) Params() *Params {
	return &s.params
}

// NoiseConfig returns the sampler configuration for the current parameters.
func (s *State) NoiseConfig() noise.Config {
	return s.params.ConfigFrom(s.base)
}

// Size returns the texture width and height.
func (s *State) Size() int {
	return s.size
}

// Buffer returns the most recent RGB buffer, or nil before the first
// successful Update.
func (s *State) Buffer() []byte {
	return s.buf
}

// Stats returns the statistics of the most recent normalization.
func (s *State) Stats() heightmap.Stats {
	return s.stats
}

// LastError returns the error or warning for the parameters in effect: the
// failure of a rejected set, or the warning from the last generated one.
func (s *State) LastError() error {
	return s.lastErr
}

// RandomizeSeed replaces the seed with a random non-negative value.
func (s *State) RandomizeSeed(r *rand.Rand) {
	s.params.Seed = r.Int31()
}

// Update regenerates the texture when the parameters differ from the last
// generated set, or on the first call, and uploads it to the sink.
//
// A flat heightmap is uploaded as the fallback gray and reported through
// LastError only. Invalid parameters return an error and leave the previous
// texture in place.
func (s *State) Update() (Change, error) {
	change := ChangeAll
	if s.generated {
		change = Detect(s.last, s.params)
		if change == ChangeNone {
			s.lastErr = s.genErr
			return ChangeNone, nil
		}
	}
	if s.hasFailed && s.params == s.failed {
		return ChangeNone, nil
	}

	s.log.Debug("regenerating noise",
		zap.Stringer("change", change),
		zap.Stringer("lastKind", s.last.Kind),
		zap.Stringer("kind", s.params.Kind),
		zap.Int32("seed", s.params.Seed),
		zap.Float32("frequency", s.params.Frequency))

	if err := s.generate(); err != nil {
		s.failed, s.hasFailed = s.params, true
		s.lastErr = err
		s.log.Error("noise generation failed", zap.Error(err))
		return change, err
	}

	s.last = s.params
	s.generated = true
	s.hasFailed = false
	return change, nil
}

func (s *State) generate() error {
	gen, err := noise.New(s.NoiseConfig())
	if err != nil {
		return err
	}
	if err := heightmap.GenerateInto(&s.hm, s.size, gen); err != nil {
		return fmt.Errorf("generating heightmap: %w", err)
	}

	buf, stats, err := s.norm.Normalize(s.hm, s.buf)
	switch {
	case errors.Is(err, heightmap.ErrDegenerateRange):
		s.log.Warn("flat heightmap, using fallback gray",
			zap.Float64("value", stats.Min),
			zap.Uint8("fallback", s.norm.Fallback))
	case err != nil:
		return fmt.Errorf("normalizing heightmap: %w", err)
	default:
		s.log.Debug("normalized heightmap",
			zap.Float64("min", stats.Min),
			zap.Float64("max", stats.Max),
			zap.Float64("scale", stats.Scale),
			zap.Float64("offset", stats.Offset),
			zap.Uint8("outMin", stats.OutMin),
			zap.Uint8("outMax", stats.OutMax))
	}

	s.buf = buf
	s.stats = stats
	s.lastErr, s.genErr = err, err
	s.sink.Upload(s.size, s.size, s.buf)
	return nil
}
