package combat

// ArmorType selects which attack/defense table entry applies to a unit.
type ArmorType string

const (
	Unarmored  ArmorType = "Unarmored"
	LightArmor ArmorType = "Light Armor"
	HeavyArmor ArmorType = "Heavy Armor"
	Air        ArmorType = "Air"
	Ship       ArmorType = "Ship"
	Submarine  ArmorType = "Submarine"
	Building   ArmorType = "Building"
)

// ArmorTypes lists every armor type in canonical order.
var ArmorTypes = []ArmorType{Unarmored, LightArmor, HeavyArmor, Air, Ship, Submarine, Building}

func ParseArmorType(s string) (ArmorType, bool) {
	for _, a := range ArmorTypes {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

type DamageKind int

const (
	Attack DamageKind = iota
	Defense
)

func (k DamageKind) String() string {
	if k == Defense {
		return "Defense"
	}
	return "Attack"
}

// DamageMap holds a damage figure per armor type.
type DamageMap map[ArmorType]float64

func (m DamageMap) Total() float64 {
	total := 0.0
	for _, v := range m {
		total += v
	}
	return total
}

// armorSet collects armor types and returns them in canonical order.
type armorSet map[ArmorType]bool

func (s armorSet) sorted() []ArmorType {
	out := make([]ArmorType, 0, len(s))
	for _, a := range ArmorTypes {
		if s[a] {
			out = append(out, a)
		}
	}
	return out
}

const (
	casualtyThreshold = 0.50
	coreDamageMulti   = 1.15
	coreMitigationAdd = 0.15
	minEfficiency     = 0.2
	hpEpsilon         = 1e-5

	// DefaultParticipants caps how many units engage per clash.
	DefaultParticipants = 10
)
