package steamid

import (
	"strconv"
)

// ID3 is the [L:U:N] notation. It can denote every account type that has a
// letter.
type ID3 struct {
	AccountType   AccountType
	Universe      Universe
	AccountNumber uint32
}

// ParseID3 parses [<letter>:<universe>:<account number>]. The brackets are
// required.
func ParseID3(s string) (ID3, error) {
	const notation = "id3"

	var id ID3

	// [L:U:N]
	if len(s) < 7 {
		return id, parseError(notation, s, "too short", nil)
	}

	if s[0] != '[' || s[len(s)-1] != ']' {
		return id, parseError(notation, s, "missing brackets", nil)
	}

	if s[2] != ':' || s[4] != ':' {
		return id, parseError(notation, s, "malformed delimiters", nil)
	}

	t, err := AccountTypeFromLetter(s[1])
	if err != nil {
		return id, parseError(notation, s, "bad account type", err)
	}

	u, err := universeFromDigit(s[3])
	if err != nil {
		return id, parseError(notation, s, "bad universe", err)
	}

	n, err := parseDigits(s[5 : len(s)-1])
	if err != nil {
		return id, parseError(notation, s, "bad account number", err)
	}

	id = ID3{
		AccountType:   t,
		Universe:      u,
		AccountNumber: uint32(n),
	}

	return id, nil
}

// DefaultInstance is the instance a SteamID built from ID3 carries.
func DefaultInstance(t AccountType) uint32 {
	if t == AccountTypeIndividual {
		return InstanceDesktop
	}

	return 0
}

func (id ID3) SteamID() SteamID {
	return New(id.Universe, id.AccountType, DefaultInstance(id.AccountType), id.AccountNumber)
}

// ID3FromSteamID fails for P2PSuperSeeder and for raw values outside the
// known enumerations.
func ID3FromSteamID(id SteamID) (ID3, error) {
	const target = "id3"

	t, err := id.AccountType()
	if err != nil {
		return ID3{}, &ConversionError{ID: id, Target: target, Reason: "unknown account type", Err: err}
	}

	if !t.HasLetter() {
		return ID3{}, &ConversionError{ID: id, Target: target, Reason: "account type " + t.String() + " has no letter"}
	}

	u, err := id.Universe()
	if err != nil {
		return ID3{}, &ConversionError{ID: id, Target: target, Reason: "unknown universe", Err: err}
	}

	out := ID3{
		AccountType:   t,
		Universe:      u,
		AccountNumber: id.AccountNumber(),
	}

	return out, nil
}

func (id ID3) String() string {
	b := make([]byte, 0, 16)
	b = append(b, '[', id.AccountType.Letter(), ':')
	b = strconv.AppendUint(b, uint64(id.Universe), 10)
	b = append(b, ':')
	b = strconv.AppendUint(b, uint64(id.AccountNumber), 10)
	b = append(b, ']')

	return string(b)
}

func (id ID3) MarshalText() ([]byte, error) {
	if !id.AccountType.HasLetter() {
		return nil, &InvalidEnumValueError{Enum: "account type letter", Value: id.AccountType.String()}
	}

	return []byte(id.String()), nil
}

func (id *ID3) UnmarshalText(b []byte) error {
	v, err := ParseID3(string(b))
	if err != nil {
		return err
	}

	*id = v

	return nil
}
