package iv

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DataSource resolves the static game data the engine depends on.
type DataSource interface {
	BaseStats(species string, generation int) (Stats, error)
	Nature(name string) (Nature, error)
	Characteristic(description string) (Characteristic, error)
}

// Generations in which the optional hints exist.
const (
	FirstCharacteristicGen = 4
	FirstHiddenPowerGen    = 2
	LastHiddenPowerGen     = 7
)

// CheckRequest is a single IV check as entered by a user.
type CheckRequest struct {
	Species        string `validate:"required"`
	Generation     int    `validate:"min=1"`
	Level          int    `validate:"min=1,max=100"`
	Stats          Stats  `validate:"dive,min=1"`
	EVs            Stats  `validate:"dive,min=0,max=252"`
	Nature         string `validate:"required"`
	Characteristic string
	HiddenPower    string
	Strict         bool
}

// CheckResult holds the resolved inputs and the narrowed IVs.
type CheckResult struct {
	Species        string
	Generation     int
	Base           Stats
	Nature         Nature
	Characteristic *Characteristic
	HiddenPower    *HiddenPowerType
	IVs            CandidateSet
}

// RangeResult holds the stat ranges of a species at a level.
type RangeResult struct {
	Species    string
	Generation int
	Level      int
	Base       Stats
	Ranges     [StatCount]StatRange
}

// Checker looks up game data and runs the resolution engine on it.
// It holds no mutable state and is safe for concurrent use.
type Checker struct {
	src      DataSource
	logger   *slog.Logger
	validate *validator.Validate
}

// NewChecker creates a checker backed by src. A nil logger discards output.
func NewChecker(src DataSource, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Checker{
		src:      src,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Check resolves the request's names and narrows its IVs.
func (c *Checker) Check(req CheckRequest) (*CheckResult, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", describeValidation(err))
	}

	base, err := c.src.BaseStats(req.Species, req.Generation)
	if err != nil {
		return nil, fmt.Errorf("looking up base stats: %w", err)
	}

	nature, err := c.src.Nature(req.Nature)
	if err != nil {
		return nil, fmt.Errorf("looking up nature: %w", err)
	}

	q := Query{
		Base:      base,
		Displayed: req.Stats,
		Level:     req.Level,
		EVs:       req.EVs,
		Nature:    nature,
	}

	if req.Characteristic != "" {
		ch, err := c.src.Characteristic(req.Characteristic)
		if err != nil {
			return nil, fmt.Errorf("looking up characteristic: %w", err)
		}
		if req.Generation < FirstCharacteristicGen {
			c.logger.Warn("characteristics do not exist in this generation",
				"generation", req.Generation, "characteristic", ch.Description)
		}
		q.Characteristic = &ch
	}

	if req.HiddenPower != "" {
		t, err := ParseHiddenPowerType(req.HiddenPower)
		if err != nil {
			return nil, err
		}
		if req.Generation < FirstHiddenPowerGen || req.Generation > LastHiddenPowerGen {
			c.logger.Warn("hidden power does not exist in this generation",
				"generation", req.Generation, "type", t)
		}
		q.HiddenPower = &t
	}

	c.logger.Debug("resolving IVs",
		"species", req.Species,
		"generation", req.Generation,
		"level", req.Level,
		"base", base.String(),
		"nature", nature.String())

	res := &CheckResult{
		Species:        req.Species,
		Generation:     req.Generation,
		Base:           base,
		Nature:         nature,
		Characteristic: q.Characteristic,
		HiddenPower:    q.HiddenPower,
	}

	if req.Strict {
		// the partial result is still useful for display
		res.IVs, err = ResolveStrict(q)
		return res, err
	}

	res.IVs = Resolve(q)
	if s, empty := res.IVs.Empty(); empty {
		c.logger.Debug("inputs are inconsistent", "stat", s.String())
	}
	return res, nil
}

// Ranges returns the minimum and maximum stats of a species at a level.
func (c *Checker) Ranges(species string, generation, level int) (*RangeResult, error) {
	if level < MinLevel || level > MaxLevel {
		return nil, fmt.Errorf("invalid level %d: must be between %d and %d", level, MinLevel, MaxLevel)
	}

	base, err := c.src.BaseStats(species, generation)
	if err != nil {
		return nil, fmt.Errorf("looking up base stats: %w", err)
	}

	return &RangeResult{
		Species:    species,
		Generation: generation,
		Level:      level,
		Base:       base,
		Ranges:     EstimateRanges(base, level),
	}, nil
}

// BaseStats returns the base stats of a species in a generation.
func (c *Checker) BaseStats(species string, generation int) (Stats, error) {
	base, err := c.src.BaseStats(species, generation)
	if err != nil {
		return base, fmt.Errorf("looking up base stats: %w", err)
	}
	return base, nil
}

// describeValidation turns validator field errors into a readable message.
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// dive errors carry the index, e.g. "EVs[3]"
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", field, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
