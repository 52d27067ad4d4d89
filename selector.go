package weatheroverlay

import (
	"math/rand/v2"
	"time"
)

// Recognized weather states.
const (
	StateCloudy       = "cloudy"
	StatePartlyCloudy = "partlycloudy"
	StateRainy        = "rainy"
	StateSnowy        = "snowy"
	StateSnowyRainy   = "snowy-rainy"
	StateSunny        = "sunny"
)

// Tick cadences.
const (
	AnimationCadence = 33 * time.Millisecond
	LabelCadence     = time.Second
)

// EffectKind identifies an effect constructor.
type EffectKind uint8

const (
	EffectCloud EffectKind = iota
	EffectSun
	EffectRain
	EffectSnow
	EffectLabel
)

var effectKindNames = [...]string{
	EffectCloud: "cloud",
	EffectSun:   "sun",
	EffectRain:  "rain",
	EffectSnow:  "snow",
	EffectLabel: "label",
}

func (k EffectKind) String() string {
	if int(k) < len(effectKindNames) {
		return effectKindNames[k]
	}
	return "unknown"
}

// animated lists the effects for every recognized state, first drawn first.
var animated = map[string][]EffectKind{
	StateCloudy:       {EffectCloud},
	StatePartlyCloudy: {EffectCloud, EffectSun},
	StateRainy:        {EffectRain},
	StateSnowy:        {EffectSnow},
	StateSnowyRainy:   {EffectRain, EffectSnow},
	StateSunny:        {EffectSun},
}

// KnownStates returns the recognized states in a stable order.
func KnownStates() []string {
	return []string{
		StateCloudy,
		StatePartlyCloudy,
		StateRainy,
		StateSnowy,
		StateSnowyRainy,
		StateSunny,
	}
}

// Selection is the animation chosen for a weather state.
type Selection struct {
	State   string
	Cadence time.Duration
	Kinds   []EffectKind
}

// Select maps a weather state to its cadence and ordered effect list.
// Unrecognized states select a single label showing the state verbatim.
func Select(state string) Selection {
	if kinds, ok := animated[state]; ok {
		return Selection{
			State:   state,
			Cadence: AnimationCadence,
			Kinds:   append([]EffectKind(nil), kinds...),
		}
	}
	return Selection{
		State:   state,
		Cadence: LabelCadence,
		Kinds:   []EffectKind{EffectLabel},
	}
}

// Recognized reports whether the selection animates weather rather than
// falling back to the label.
func (s Selection) Recognized() bool {
	_, ok := animated[s.State]
	return ok
}

// Build creates fresh effect instances for a w×h surface in selection order.
func (s Selection) Build(w, h float64, rng *rand.Rand) []Effect {
	effects := make([]Effect, 0, len(s.Kinds))
	for _, k := range s.Kinds {
		switch k {
		case EffectCloud:
			effects = append(effects, NewCloud(w, h, rng))
		case EffectSun:
			effects = append(effects, NewSun(w, h))
		case EffectRain:
			effects = append(effects, NewRain(w, h, rng))
		case EffectSnow:
			effects = append(effects, NewSnow(w, h, rng))
		case EffectLabel:
			effects = append(effects, NewLabel(w, h, s.State))
		}
	}
	return effects
}
