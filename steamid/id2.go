package steamid

import (
	"strconv"
)

const id2Prefix = "STEAM_"

// ID2 is the STEAM_X:Y:Z notation. It can only denote Individual accounts.
type ID2 struct {
	Universe Universe
	Parity   uint8
	Serial   uint32
}

// ParseID2 parses STEAM_<universe>:<parity>:<serial>. The universe and
// parity are exactly one digit each.
func ParseID2(s string) (ID2, error) {
	const notation = "id2"

	var id ID2

	// STEAM_X:Y:Z
	if len(s) < len(id2Prefix)+5 {
		return id, parseError(notation, s, "too short", nil)
	}

	if s[:len(id2Prefix)] != id2Prefix {
		return id, parseError(notation, s, "missing STEAM_ prefix", nil)
	}

	rest := s[len(id2Prefix):]

	if rest[1] != ':' || rest[3] != ':' {
		return id, parseError(notation, s, "malformed delimiters", nil)
	}

	u, err := universeFromDigit(rest[0])
	if err != nil {
		return id, parseError(notation, s, "bad universe", err)
	}

	var parity uint8

	switch rest[2] {
	case '0':
		parity = 0
	case '1':
		parity = 1
	default:
		return id, parseError(notation, s, "parity must be 0 or 1", nil)
	}

	serial, err := parseDigits(rest[4:])
	if err != nil {
		return id, parseError(notation, s, "bad serial", err)
	}

	if serial > (accountNumberMask-uint64(parity))/2 {
		return id, parseError(notation, s, "serial out of range", nil)
	}

	id = ID2{
		Universe: u,
		Parity:   parity,
		Serial:   uint32(serial),
	}

	return id, nil
}

// SteamID folds id into its canonical form. Universe 0 is written by old
// tooling for public accounts and is normalised to Public.
func (id ID2) SteamID() SteamID {
	u := id.Universe
	if u == UniverseIndividual {
		u = UniversePublic
	}

	accountNumber := id.Serial*2 + uint32(id.Parity&1)

	return New(u, AccountTypeIndividual, InstanceDesktop, accountNumber)
}

// ID2FromSteamID fails unless id is an Individual account.
func ID2FromSteamID(id SteamID) (ID2, error) {
	const target = "id2"

	t, err := id.AccountType()
	if err != nil {
		return ID2{}, &ConversionError{ID: id, Target: target, Reason: "unknown account type", Err: err}
	}

	if t != AccountTypeIndividual {
		return ID2{}, &ConversionError{ID: id, Target: target, Reason: "account type " + t.String() + " is not Individual"}
	}

	u, err := id.Universe()
	if err != nil {
		return ID2{}, &ConversionError{ID: id, Target: target, Reason: "unknown universe", Err: err}
	}

	n := id.AccountNumber()

	out := ID2{
		Universe: u,
		Parity:   uint8(n & 1),
		Serial:   n / 2,
	}

	return out, nil
}

func (id ID2) String() string {
	b := make([]byte, 0, len(id2Prefix)+15)
	b = append(b, id2Prefix...)
	b = strconv.AppendUint(b, uint64(id.Universe), 10)
	b = append(b, ':')
	b = strconv.AppendUint(b, uint64(id.Parity), 10)
	b = append(b, ':')
	b = strconv.AppendUint(b, uint64(id.Serial), 10)

	return string(b)
}

func (id ID2) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID2) UnmarshalText(b []byte) error {
	v, err := ParseID2(string(b))
	if err != nil {
		return err
	}

	*id = v

	return nil
}

// parseDigits accepts only ASCII digits, rejecting the signs and
// underscores strconv would otherwise tolerate.
func parseDigits(s string) (uint64, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, strconv.ErrSyntax
		}
	}

	return strconv.ParseUint(s, 10, 32)
}
