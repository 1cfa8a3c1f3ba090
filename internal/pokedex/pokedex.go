// Package pokedex holds the static game tables (base stats, natures and
// characteristics) and answers lookups against them.
//
// Tables are read once, from the embedded YAML files, a directory holding the
// same files, or a SQLite database, and are never modified afterwards. A
// *Pokedex is safe for concurrent use.
package pokedex

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/lilellia/ivchecker/internal/iv"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// Table file names, shared by the embedded data and data directories.
const (
	SpeciesFile         = "species.yaml"
	NaturesFile         = "natures.yaml"
	CharacteristicsFile = "characteristics.yaml"
)

// Options control generation bounds and lookup behaviour.
type Options struct {
	MostRecentGen   int
	MinSupportedGen int
	Suggestions     int // close matches offered for unknown names; 0 turns them off
	Logger          *slog.Logger
}

// DefaultOptions returns the bounds of the bundled tables.
func DefaultOptions() Options {
	return Options{
		MostRecentGen:   8,
		MinSupportedGen: 3,
		Suggestions:     2,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MostRecentGen == 0 {
		o.MostRecentGen = d.MostRecentGen
	}
	if o.MinSupportedGen == 0 {
		o.MinSupportedGen = d.MinSupportedGen
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Species is one entry of the base stat table.
type Species struct {
	Name string
	Base iv.Stats
	// Changes maps a generation to the stats in use up to and including it.
	Changes map[int]iv.Stats
}

// StatsIn returns the base stats the species had in a generation.
func (s *Species) StatsIn(generation, mostRecent int) iv.Stats {
	if generation >= mostRecent || len(s.Changes) == 0 {
		return s.Base
	}

	// The earliest record that still covers the generation wins.
	best := 0
	for g := range s.Changes {
		if g >= generation && g < mostRecent && (best == 0 || g < best) {
			best = g
		}
	}
	if best == 0 {
		return s.Base
	}
	return s.Changes[best]
}

// Pokedex is an immutable in-memory view of the game tables.
type Pokedex struct {
	opts Options

	species      map[string]*Species
	speciesNames []string

	natures    map[string]iv.Nature
	natureList []iv.Nature

	characteristics    map[string]iv.Characteristic
	characteristicList []iv.Characteristic
}

// Load reads the tables bundled with the binary.
func Load(opts Options) (*Pokedex, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("opening embedded data: %w", err)
	}
	return LoadFS(sub, opts)
}

// LoadDir reads species.yaml, natures.yaml and characteristics.yaml from dir.
func LoadDir(dir string, opts Options) (*Pokedex, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("opening data directory: %w", err)
	}
	return LoadFS(os.DirFS(dir), opts)
}

// LoadFS reads the three table files from fsys.
func LoadFS(fsys fs.FS, opts Options) (*Pokedex, error) {
	var t tables
	for _, name := range []string{SpeciesFile, NaturesFile, CharacteristicsFile} {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		var part tables
		if err := yaml.Unmarshal(data, &part); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		t.Species = append(t.Species, part.Species...)
		t.Natures = append(t.Natures, part.Natures...)
		t.Characteristics = append(t.Characteristics, part.Characteristics...)
	}
	return build(t, opts)
}

// tables is the serialised form shared by the YAML and SQLite sources.
type tables struct {
	Species         []speciesRow        `yaml:"species,omitempty"`
	Natures         []natureRow         `yaml:"natures,omitempty"`
	Characteristics []characteristicRow `yaml:"characteristics,omitempty"`
}

type speciesRow struct {
	Name    string        `yaml:"name"`
	Stats   []int         `yaml:"stats"`
	Changes map[int][]int `yaml:"changes,omitempty"`
}

type natureRow struct {
	Name    string `yaml:"name"`
	Raised  string `yaml:"raised"`
	Lowered string `yaml:"lowered"`
}

type characteristicRow struct {
	Description string `yaml:"description"`
	Stat        string `yaml:"stat"`
	Residue     int    `yaml:"residue"`
}

// build validates the raw rows and indexes them by normalised name.
func build(t tables, opts Options) (*Pokedex, error) {
	opts = opts.withDefaults()
	if opts.MinSupportedGen > opts.MostRecentGen {
		return nil, fmt.Errorf("invalid generation bounds %d-%d", opts.MinSupportedGen, opts.MostRecentGen)
	}

	p := &Pokedex{
		opts:            opts,
		species:         make(map[string]*Species, len(t.Species)),
		natures:         make(map[string]iv.Nature, len(t.Natures)),
		characteristics: make(map[string]iv.Characteristic, len(t.Characteristics)),
	}

	for _, row := range t.Species {
		base, err := iv.StatsFromSlice(row.Stats)
		if err != nil {
			return nil, fmt.Errorf("species %q: %w", row.Name, err)
		}
		sp := &Species{Name: row.Name, Base: base}
		if len(row.Changes) > 0 {
			sp.Changes = make(map[int]iv.Stats, len(row.Changes))
			for gen, stats := range row.Changes {
				old, err := iv.StatsFromSlice(stats)
				if err != nil {
					return nil, fmt.Errorf("species %q generation %d: %w", row.Name, gen, err)
				}
				sp.Changes[gen] = old
			}
		}

		k := key(row.Name)
		if _, dup := p.species[k]; dup {
			return nil, fmt.Errorf("duplicate species %q", row.Name)
		}
		p.species[k] = sp
		p.speciesNames = append(p.speciesNames, row.Name)
	}

	for _, row := range t.Natures {
		raised, err := iv.ParseStat(row.Raised)
		if err != nil {
			return nil, fmt.Errorf("nature %q: %w", row.Name, err)
		}
		lowered, err := iv.ParseStat(row.Lowered)
		if err != nil {
			return nil, fmt.Errorf("nature %q: %w", row.Name, err)
		}
		if raised == iv.HP || lowered == iv.HP {
			return nil, fmt.Errorf("nature %q: natures cannot affect HP", row.Name)
		}

		k := key(row.Name)
		if _, dup := p.natures[k]; dup {
			return nil, fmt.Errorf("duplicate nature %q", row.Name)
		}
		n := iv.Nature{Name: row.Name, Raised: raised, Lowered: lowered}
		p.natures[k] = n
		p.natureList = append(p.natureList, n)
	}

	for _, row := range t.Characteristics {
		stat, err := iv.ParseStat(row.Stat)
		if err != nil {
			return nil, fmt.Errorf("characteristic %q: %w", row.Description, err)
		}
		if row.Residue < 0 || row.Residue >= 5 {
			return nil, fmt.Errorf("characteristic %q: residue %d out of range", row.Description, row.Residue)
		}

		k := key(row.Description)
		if _, dup := p.characteristics[k]; dup {
			return nil, fmt.Errorf("duplicate characteristic %q", row.Description)
		}
		c := iv.Characteristic{Description: row.Description, HighStat: stat, Residue: row.Residue}
		p.characteristics[k] = c
		p.characteristicList = append(p.characteristicList, c)
	}

	opts.Logger.Debug("loaded pokedex",
		"species", len(p.species),
		"natures", len(p.natures),
		"characteristics", len(p.characteristics))

	return p, nil
}

// Generations returns the supported generation bounds.
func (p *Pokedex) Generations() (minSupported, mostRecent int) {
	return p.opts.MinSupportedGen, p.opts.MostRecentGen
}

// Species returns the table entry for a species.
func (p *Pokedex) Species(name string) (*Species, error) {
	sp, ok := p.species[key(name)]
	if !ok {
		return nil, p.notFound("Pokémon", name, p.speciesNames)
	}
	return sp, nil
}

// BaseStats returns a species' base stats as of the given generation.
func (p *Pokedex) BaseStats(species string, generation int) (iv.Stats, error) {
	if generation < p.opts.MinSupportedGen || generation > p.opts.MostRecentGen {
		return iv.Stats{}, fmt.Errorf("%w: %d (supported: %d-%d)",
			ErrUnsupportedGeneration, generation, p.opts.MinSupportedGen, p.opts.MostRecentGen)
	}

	sp, err := p.Species(species)
	if err != nil {
		return iv.Stats{}, err
	}
	return sp.StatsIn(generation, p.opts.MostRecentGen), nil
}

// Nature looks up a nature by name.
func (p *Pokedex) Nature(name string) (iv.Nature, error) {
	n, ok := p.natures[key(name)]
	if !ok {
		return iv.Nature{}, p.notFound("nature", name, natureNames(p.natureList))
	}
	return n, nil
}

// Characteristic looks up a characteristic by its description.
func (p *Pokedex) Characteristic(description string) (iv.Characteristic, error) {
	c, ok := p.characteristics[key(description)]
	if !ok {
		names := make([]string, len(p.characteristicList))
		for i, c := range p.characteristicList {
			names[i] = c.Description
		}
		return iv.Characteristic{}, p.notFound("characteristic", description, names)
	}
	return c, nil
}

// SpeciesNames returns every species name in table order.
func (p *Pokedex) SpeciesNames() []string {
	return slices.Clone(p.speciesNames)
}

// NatureOrder selects how Natures sorts its result.
type NatureOrder int

const (
	// NatureOrderAlphabetical sorts by name.
	NatureOrderAlphabetical NatureOrder = iota
	// NatureOrderStatwise groups by raised stat, then lowered stat, in stat order.
	NatureOrderStatwise
)

// ParseNatureOrder accepts "alphabetical" or "statwise", ignoring case.
func ParseNatureOrder(s string) (NatureOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "alphabetical":
		return NatureOrderAlphabetical, nil
	case "statwise":
		return NatureOrderStatwise, nil
	default:
		return 0, fmt.Errorf("unknown nature sort method %q", s)
	}
}

// Natures returns every nature in the requested order.
func (p *Pokedex) Natures(order NatureOrder) []iv.Nature {
	out := slices.Clone(p.natureList)
	switch order {
	case NatureOrderStatwise:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Raised != out[j].Raised {
				return out[i].Raised < out[j].Raised
			}
			return out[i].Lowered < out[j].Lowered
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Name < out[j].Name
		})
	}
	return out
}

// Characteristics returns every characteristic sorted by description.
func (p *Pokedex) Characteristics() []iv.Characteristic {
	out := slices.Clone(p.characteristicList)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Description < out[j].Description
	})
	return out
}

// CharacteristicNames returns every characteristic description, sorted.
func (p *Pokedex) CharacteristicNames() []string {
	chars := p.Characteristics()
	names := make([]string, len(chars))
	for i, c := range chars {
		names[i] = c.Description
	}
	return names
}

func natureNames(natures []iv.Nature) []string {
	names := make([]string, len(natures))
	for i, n := range natures {
		names[i] = n.Name
	}
	return names
}

func (p *Pokedex) notFound(kind, name string, candidates []string) error {
	err := &NotFoundError{
		Kind:        kind,
		Name:        name,
		Suggestions: Suggest(name, candidates, p.opts.Suggestions),
	}
	p.opts.Logger.Debug("lookup failed", "kind", kind, "name", name, "suggestions", err.Suggestions)
	return err
}

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("not found")

// ErrUnsupportedGeneration is returned for generations outside the configured bounds.
var ErrUnsupportedGeneration = errors.New("unsupported generation")

// NotFoundError reports an unknown name together with close matches.
type NotFoundError struct {
	Kind        string
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("could not find %s %q", e.Kind, e.Name)
	if len(e.Suggestions) == 0 {
		return msg
	}
	return msg + "; did you mean " + joinOr(e.Suggestions) + "?"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// joinOr renders ["a", "b", "c"] as "a, b or c".
func joinOr(items []string) string {
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}
