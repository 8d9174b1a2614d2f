package marina

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"
)

// DefaultCapacity is the number of boats a registry holds unless configured otherwise.
const DefaultCapacity = 120

// DuplicatePolicy decides whether two boats may share a name (case-insensitive).
type DuplicatePolicy int

const (
	// AllowDuplicates keeps homonymous boats; find, remove and payments act on the first one.
	AllowDuplicates DuplicatePolicy = iota
	// RejectDuplicates refuses a boat whose name is already registered.
	RejectDuplicates
)

func (p DuplicatePolicy) String() string {
	switch p {
	case AllowDuplicates:
		return "allow"
	case RejectDuplicates:
		return "reject"
	default:
		return "unknown"
	}
}

// ParseDuplicatePolicy parses "allow" or "reject".
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "allow", "":
		return AllowDuplicates, nil
	case "reject":
		return RejectDuplicates, nil
	default:
		return 0, fmt.Errorf("unknown duplicate policy: %q", s)
	}
}

// Options configures a Registry.
type Options struct {
	// Capacity is the maximum number of boats. Zero means unlimited.
	Capacity   int
	Duplicates DuplicatePolicy
	// StrictKinds rejects records with an unknown location kind instead of
	// reading them as storage.
	StrictKinds bool
	Logger      *slog.Logger
}

// DefaultOptions returns the options matching the historical behavior of the registry.
func DefaultOptions() Options {
	return Options{Capacity: DefaultCapacity}
}

// Registry is the collection of boats of a marina.
//
// In a Registry boats are always sorted by name, case-insensitive. Boats whose
// names only differ by case keep their relative order.
type Registry struct {
	boats []Boat
	opts  Options
}

// NewRegistry creates an empty registry.
func NewRegistry(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Registry{
		boats: make([]Boat, 0),
		opts:  opts,
	}
}

// Load decodes and appends the records in lines, then sorts the registry.
//
// Blank lines are ignored. Records that cannot be decoded, or that do not fit
// in the registry, are skipped: Load keeps going and returns all the reasons
// joined, each one a *RecordError. The boats that could be loaded are in the
// registry even when the returned error is not nil.
func (r *Registry) Load(lines []string) error {
	var errs error
	skip := func(i int, line string, err error) {
		r.opts.Logger.Warn("skipping record", "line", i+1, "record", line, "error", err)
		errs = errors.Join(errs, &RecordError{Line: i + 1, Record: line, Err: err})
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if r.full() {
			skip(i, line, ErrCapacityExceeded)
			continue
		}
		b, err := r.decode(line)
		if err != nil {
			skip(i, line, err)
			continue
		}
		if err := r.checkDuplicate(b.Name); err != nil {
			skip(i, line, err)
			continue
		}
		r.boats = append(r.boats, b)
	}
	r.stableSort()
	r.opts.Logger.Debug("registry loaded", "boats", len(r.boats))
	return errs
}

// Add inserts a boat in the registry, at its sorted position.
//
// The boat must be valid, see Boat.Validate.
func (r *Registry) Add(b Boat) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if r.full() {
		return fmt.Errorf("cannot add %q: %w (%d boats)", b.Name, ErrCapacityExceeded, len(r.boats))
	}
	if err := r.checkDuplicate(b.Name); err != nil {
		return err
	}
	r.boats = append(r.boats, b)
	r.stableSort()
	return nil
}

// AddRecord decodes a record and adds the boat to the registry.
func (r *Registry) AddRecord(line string) (Boat, error) {
	b, err := r.decode(line)
	if err != nil {
		return Boat{}, err
	}
	return b, r.Add(b)
}

// Remove removes the first boat with this name (case-insensitive) and returns it.
func (r *Registry) Remove(name string) (Boat, error) {
	i, err := r.Find(name)
	if err != nil {
		return Boat{}, err
	}
	b := r.boats[i]
	r.boats = slices.Delete(r.boats, i, i+1)
	return b, nil
}

// Find returns the position of the first boat with this name (case-insensitive).
func (r *Registry) Find(name string) (int, error) {
	name = strings.TrimSpace(name)
	for i, b := range r.boats {
		if strings.EqualFold(b.Name, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Get returns a copy of the first boat with this name (case-insensitive).
func (r *Registry) Get(name string) (Boat, error) {
	i, err := r.Find(name)
	if err != nil {
		return Boat{}, err
	}
	return r.boats[i], nil
}

// At returns the boat at position i.
func (r *Registry) At(i int) Boat { return r.boats[i] }

// Len returns the number of boats in the registry.
func (r *Registry) Len() int { return len(r.boats) }

// Capacity returns the maximum number of boats, 0 meaning unlimited.
func (r *Registry) Capacity() int { return r.opts.Capacity }

// List returns a snapshot of the boats, in registry order.
func (r *Registry) List() []Boat { return slices.Clone(r.boats) }

// All iterates over the boats in registry order.
func (r *Registry) All() iter.Seq2[int, Boat] {
	return func(yield func(int, Boat) bool) {
		for i, b := range r.boats {
			if !yield(i, b) {
				return
			}
		}
	}
}

func (r *Registry) full() bool {
	return r.opts.Capacity > 0 && len(r.boats) >= r.opts.Capacity
}

func (r *Registry) decode(line string) (Boat, error) {
	if r.opts.StrictKinds {
		return DecodeBoatStrict(line)
	}
	return DecodeBoat(line)
}

func (r *Registry) checkDuplicate(name string) error {
	if r.opts.Duplicates != RejectDuplicates {
		return nil
	}
	if _, err := r.Find(name); err == nil {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	return nil
}

// stableSort sorts boats by name, case-insensitive, keeping the relative order of equal names.
func (r *Registry) stableSort() {
	slices.SortStableFunc(r.boats, func(a, b Boat) int {
		return compareNames(a.Name, b.Name)
	})
}

func compareNames(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
