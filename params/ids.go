package params

// ID identifies a parameter slot.
type ID uint8

const (
	MasterVolume ID = iota
	OscVolume
	OscPhase
	OscPan
	OscShape
	OscWarp
	OscFineTune
	OscCoarseTune
	VolAttack
	VolHold
	VolDecay
	VolSustain
	VolRelease
	VolMultiply
	VolLFOAmplitude
	VolLFOPeriod
	PitchAttack
	PitchHold
	PitchDecay
	PitchSustain
	PitchRelease
	PitchMultiply
	PitchLFOAmplitude
	PitchLFOPeriod
	FilterType
	FilterFreq
	FilterQ
	FilterGain
	FilterEnvAttack
	FilterEnvHold
	FilterEnvDecay
	FilterEnvMultiply

	// NumIDs is the number of parameter slots.
	NumIDs
)

// Default raw values.
const (
	DefaultMasterVol = 0.6875
	DefaultOscVol    = 0.5833

	DefaultVolAttack  = 0.1
	DefaultVolHold    = 0.0
	DefaultVolDecay   = 0.5
	DefaultVolSustain = 0.75
	DefaultVolRelease = 0.3

	DefaultModAttack   = 0.00001
	DefaultModHold     = 0.2
	DefaultModDecay    = 0.0
	DefaultModSustain  = 0.0
	DefaultModRelease  = 0.00001
	DefaultModMultiply = 0.5
)

type info struct {
	name  string
	index int
	def   float64
}

const noHostIndex = -1

// NumHostParams is the number of host-visible parameters.
const NumHostParams = 30

var table = [NumIDs]info{
	MasterVolume:      {"Master Volume", 0, DefaultMasterVol},
	OscVolume:         {"OSC 1 Volume", 1, DefaultOscVol},
	OscPhase:          {"OSC 1 Phase", 2, 0},
	OscPan:            {"OSC 1 Pan", 3, 0.5},
	OscShape:          {"OSC 1 Shape", 4, 0},
	OscWarp:           {"OSC 1 Warp", 5, 0.5},
	OscFineTune:       {"OSC 1 Fine Tune", 6, 0.5},
	OscCoarseTune:     {"OSC 1 Coarse Tune", 7, 0.5},
	VolAttack:         {"OSC 1 Volume Attack", 8, DefaultVolAttack},
	VolHold:           {"OSC 1 Volume Hold", 9, DefaultVolHold},
	VolDecay:          {"OSC 1 Volume Decay", 10, DefaultVolDecay},
	VolSustain:        {"OSC 1 Volume Sustain", 11, DefaultVolSustain},
	VolRelease:        {"OSC 1 Volume Release", 12, DefaultVolRelease},
	VolMultiply:       {"OSC 1 Volume Multiply", noHostIndex, 1},
	VolLFOAmplitude:   {"OSC 1 Vol LFO Amplitude", 13, 0},
	VolLFOPeriod:      {"OSC 1 Vol LFO Period", 14, 0.5},
	PitchAttack:       {"OSC 1 Pitch Attack", 15, DefaultModAttack},
	PitchHold:         {"OSC 1 Pitch Hold", 16, DefaultModHold},
	PitchDecay:        {"OSC 1 Pitch Decay", 17, DefaultModDecay},
	PitchSustain:      {"OSC 1 Pitch Sustain", noHostIndex, DefaultModSustain},
	PitchRelease:      {"OSC 1 Pitch Release", 18, DefaultModRelease},
	PitchMultiply:     {"OSC 1 Pitch Multiply", 19, DefaultModMultiply},
	PitchLFOAmplitude: {"OSC 1 Pitch LFO Amplitude", 20, 0},
	PitchLFOPeriod:    {"OSC 1 Pitch LFO Period", 21, 0.5},
	FilterType:        {"OSC 1 Filter Type", 22, 0},
	FilterFreq:        {"OSC 1 Filter Freq", 23, 1},
	FilterQ:           {"OSC 1 Filter Q", 24, 0.1},
	FilterGain:        {"OSC 1 Filter Gain", 25, 0.5},
	FilterEnvAttack:   {"OSC 1 Filter Env Attack", 26, DefaultModAttack},
	FilterEnvHold:     {"OSC 1 Filter Env Hold", 27, DefaultModHold},
	FilterEnvDecay:    {"OSC 1 Filter Env Decay", 28, DefaultModDecay},
	FilterEnvMultiply: {"OSC 1 Filter Env Multiply", 29, DefaultModMultiply},
}

var byIndex = func() [NumHostParams]ID {
	var ids [NumHostParams]ID
	for id, in := range table {
		if in.index != noHostIndex {
			ids[in.index] = ID(id)
		}
	}
	return ids
}()

// Valid reports whether id names a slot.
func (id ID) Valid() bool {
	return id < NumIDs
}

// String returns the display name of id.
func (id ID) String() string {
	if !id.Valid() {
		return "Unknown"
	}
	return table[id].name
}

// Default returns the raw default of id.
func (id ID) Default() float64 {
	if !id.Valid() {
		return 0
	}
	return table[id].def
}

// HostIndex returns the host index of id, or false for slots the host does
// not see.
func (id ID) HostIndex() (int, bool) {
	if !id.Valid() || table[id].index == noHostIndex {
		return 0, false
	}
	return table[id].index, true
}

// FromHostIndex returns the ID at a host index.
func FromHostIndex(index int) (ID, bool) {
	if index < 0 || index >= NumHostParams {
		return 0, false
	}
	return byIndex[index], true
}

// Raw holds one raw value per slot.
type Raw [NumIDs]float64

// DefaultRaw returns every slot at its default.
func DefaultRaw() Raw {
	var r Raw
	for id := range r {
		r[id] = table[id].def
	}
	return r
}
