package params

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/pion/logging"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// echoEpsilon absorbs the float32 round trip of a value echoed by the host.
const echoEpsilon = 1e-6

var (
	// ErrUnknownParameter is returned for an ID or host index with no slot.
	ErrUnknownParameter = errors.New("params: unknown parameter")
	// ErrOutOfRange is returned when a raw value is NaN.
	ErrOutOfRange = errors.New("params: raw value out of range")
)

// Host is told when the plugin side edits a host-visible parameter, so it
// can record automation.
type Host interface {
	BeginEdit(index int)
	EndEdit(index int)
}

// Change reports a slot updated by the host.
type Change struct {
	ID    ID
	Value float64
}

// Store holds the raw value of every slot. Each slot is one atomic word, so a
// control thread may write while the render thread reads. Writes to the same
// slot from several goroutines are last-writer-wins.
type Store struct {
	slots   [NumIDs]atomic.Uint64
	easer   *Easer
	host    Host
	changes chan<- Change
	log     logging.LeveledLogger
}

// Option configures a Store.
type Option func(*Store)

// WithHost sets the host notified by Set.
func WithHost(h Host) Option {
	return func(s *Store) { s.host = h }
}

// WithChanges sets the channel host-originated changes are posted to. Sends
// never block; a full channel drops the change.
func WithChanges(ch chan<- Change) Option {
	return func(s *Store) { s.changes = ch }
}

// WithEaser replaces DefaultEaser.
func WithEaser(e *Easer) Option {
	return func(s *Store) {
		if e != nil {
			s.easer = e
		}
	}
}

// WithLoggerFactory sets where the store logs.
func WithLoggerFactory(f logging.LoggerFactory) Option {
	return func(s *Store) {
		if f != nil {
			s.log = f.NewLogger("params")
		}
	}
}

// NewStore returns a store with every slot at its default.
func NewStore(opts ...Option) *Store {
	s := &Store{easer: &DefaultEaser}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.log == nil {
		s.log = logging.NewDefaultLoggerFactory().NewLogger("params")
	}
	raw := DefaultRaw()
	for id, v := range raw {
		s.slots[id].Store(math.Float64bits(v))
	}
	return s
}

// GetRaw returns the raw value of id, or 0 for an unknown id.
func (s *Store) GetRaw(id ID) float64 {
	if !id.Valid() {
		return 0
	}
	return math.Float64frombits(s.slots[id].Load())
}

// SetRaw stores v in id. Values outside [0, 1] are clamped; NaN is rejected.
func (s *Store) SetRaw(id ID, v float64) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownParameter, id)
	}
	if math.IsNaN(v) {
		s.log.Warnf("rejected NaN for %s", id)
		return fmt.Errorf("%w: %s is NaN", ErrOutOfRange, id)
	}
	s.slots[id].Store(math.Float64bits(clampRaw(v)))
	return nil
}

func clampRaw(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Set stores v in id on behalf of the plugin side. Host-visible slots are
// bracketed with BeginEdit and EndEdit.
func (s *Store) Set(id ID, v float64) error {
	index, visible := id.HostIndex()
	if visible && s.host != nil {
		s.host.BeginEdit(index)
		defer s.host.EndEdit(index)
	}
	return s.SetRaw(id, v)
}

// SetFromHost stores a value the host sent for a host index. A value that
// clamps to within echoEpsilon of the stored one is an echo of our own edit
// and is dropped. Otherwise the change is posted to the change channel.
func (s *Store) SetFromHost(index int, v float64) error {
	id, ok := FromHostIndex(index)
	if !ok {
		return fmt.Errorf("%w: host index %d", ErrUnknownParameter, index)
	}
	if core.NearlyEqual(s.GetRaw(id), clampRaw(v), echoEpsilon) {
		s.log.Tracef("echo for %s suppressed", id)
		return nil
	}
	if err := s.SetRaw(id, v); err != nil {
		return err
	}
	s.notify(Change{ID: id, Value: s.GetRaw(id)})
	return nil
}

func (s *Store) notify(c Change) {
	if s.changes == nil {
		return
	}
	select {
	case s.changes <- c:
	default:
		s.log.Debugf("change channel full, dropped %s", c.ID)
	}
}

// Reset returns every slot to its default.
func (s *Store) Reset() {
	for id := range s.slots {
		s.slots[id].Store(math.Float64bits(table[id].def))
	}
}

// Load copies every slot into raw. It does not allocate.
func (s *Store) Load(raw *Raw) {
	for id := range s.slots {
		raw[id] = math.Float64frombits(s.slots[id].Load())
	}
}

// Parameters returns the eased values of every slot.
func (s *Store) Parameters() (Parameters, error) {
	var raw Raw
	s.Load(&raw)
	return s.easer.Parameters(&raw)
}

// Strings returns the display value and unit of id.
func (s *Store) Strings(id ID) (value, unit string, err error) {
	if !id.Valid() {
		return "", "", fmt.Errorf("%w: %d", ErrUnknownParameter, id)
	}
	p, err := s.Parameters()
	if err != nil {
		return "", "", err
	}
	return p.Strings(id)
}

// Name returns the display name of id.
func (s *Store) Name(id ID) string {
	return id.String()
}

// Host-index accessors. Unknown indices yield zero values.

// Parameter returns the raw value at a host index.
func (s *Store) Parameter(index int) float64 {
	id, ok := FromHostIndex(index)
	if !ok {
		return 0
	}
	return s.GetRaw(id)
}

// ParameterName returns the name at a host index.
func (s *Store) ParameterName(index int) string {
	id, ok := FromHostIndex(index)
	if !ok {
		return ""
	}
	return id.String()
}

// Label returns the unit at a host index.
func (s *Store) Label(index int) string {
	id, ok := FromHostIndex(index)
	if !ok {
		return ""
	}
	_, unit, err := s.Strings(id)
	if err != nil {
		s.log.Errorf("label %d: %v", index, err)
		return ""
	}
	return unit
}

// Text returns the display value at a host index.
func (s *Store) Text(index int) string {
	id, ok := FromHostIndex(index)
	if !ok {
		return ""
	}
	value, _, err := s.Strings(id)
	if err != nil {
		s.log.Errorf("text %d: %v", index, err)
		return ""
	}
	return value
}

// CanBeAutomated reports whether index names a host-visible parameter.
func (s *Store) CanBeAutomated(index int) bool {
	_, ok := FromHostIndex(index)
	return ok
}
