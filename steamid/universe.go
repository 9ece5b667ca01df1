package steamid

import (
	"fmt"
	"strconv"
)

// Universe is the Steam deployment realm an account lives in.
type Universe uint8

const (
	UniverseIndividual Universe = iota
	UniversePublic
	UniverseBeta
	UniverseInternal
	UniverseDev
	UniverseRC
)

var universeNames = [...]string{
	UniverseIndividual: "Individual",
	UniversePublic:     "Public",
	UniverseBeta:       "Beta",
	UniverseInternal:   "Internal",
	UniverseDev:        "Dev",
	UniverseRC:         "RC",
}

func UniverseFromUint8(v uint8) (Universe, error) {
	u := Universe(v)
	if !u.Valid() {
		return 0, &InvalidEnumValueError{Enum: "universe", Value: strconv.FormatUint(uint64(v), 10)}
	}

	return u, nil
}

// ParseUniverse maps a display name such as "Public" back to its Universe.
func ParseUniverse(name string) (Universe, error) {
	for i, n := range universeNames {
		if n == name {
			return Universe(i), nil
		}
	}

	return 0, &InvalidEnumValueError{Enum: "universe", Value: strconv.Quote(name)}
}

func (u Universe) Valid() bool {
	return int(u) < len(universeNames)
}

func (u Universe) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Universe(%d)", uint8(u))
	}

	return universeNames[u]
}

// universeFromDigit parses the single universe digit used by both text
// notations.
func universeFromDigit(c byte) (Universe, error) {
	if c < '0' || c > '9' {
		return 0, &InvalidEnumValueError{Enum: "universe", Value: strconv.QuoteRune(rune(c))}
	}

	return UniverseFromUint8(c - '0')
}
