// Package steamid converts Steam account identifiers between the packed
// 64-bit form and the STEAM_X:Y:Z (ID2) and [L:U:N] (ID3) text notations.
package steamid

import (
	"strconv"
)

const (
	universeShift    = 56
	accountTypeShift = 52
	instanceShift    = 32

	universeMask      = 0xFF
	accountTypeMask   = 0xF
	instanceMask      = 0xFFFFF
	accountNumberMask = 0xFFFFFFFF
)

// InstanceDesktop is the instance of every Individual account.
const InstanceDesktop uint32 = 1

// SteamID is the canonical 64-bit account identifier. Any uint64 is a
// SteamID; only the text codecs reject values.
type SteamID uint64

// Fields holds the raw, unvalidated components of a SteamID.
type Fields struct {
	Universe      uint8
	AccountType   uint8
	Instance      uint32
	AccountNumber uint32
}

// New packs the given components. Values wider than their bit field are
// truncated to the field width.
func New(universe Universe, accountType AccountType, instance, accountNumber uint32) SteamID {
	return Fields{
		Universe:      uint8(universe),
		AccountType:   uint8(accountType),
		Instance:      instance,
		AccountNumber: accountNumber,
	}.Pack()
}

func (f Fields) Pack() SteamID {
	v := uint64(f.Universe)&universeMask<<universeShift |
		uint64(f.AccountType)&accountTypeMask<<accountTypeShift |
		uint64(f.Instance)&instanceMask<<instanceShift |
		uint64(f.AccountNumber)&accountNumberMask

	return SteamID(v)
}

func (id SteamID) Unpack() Fields {
	v := uint64(id)

	return Fields{
		Universe:      uint8(v >> universeShift & universeMask),
		AccountType:   uint8(v >> accountTypeShift & accountTypeMask),
		Instance:      uint32(v >> instanceShift & instanceMask),
		AccountNumber: uint32(v & accountNumberMask),
	}
}

func (id SteamID) Uint64() uint64 {
	return uint64(id)
}

func (id SteamID) Universe() (Universe, error) {
	return UniverseFromUint8(id.Unpack().Universe)
}

func (id SteamID) AccountType() (AccountType, error) {
	return AccountTypeFromUint8(id.Unpack().AccountType)
}

func (id SteamID) Instance() uint32 {
	return id.Unpack().Instance
}

func (id SteamID) AccountNumber() uint32 {
	return id.Unpack().AccountNumber
}

// Valid reports whether the universe and account type are known and the
// account type is not Invalid.
func (id SteamID) Valid() bool {
	f := id.Unpack()

	t := AccountType(f.AccountType)

	return Universe(f.Universe).Valid() && t.Valid() && t != AccountTypeInvalid
}

func (id SteamID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseID64 parses the decimal form used by the web API.
func ParseID64(s string) (SteamID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, parseError("id64", s, "not an unsigned 64-bit integer", err)
	}

	return SteamID(v), nil
}

func (id SteamID) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(id), 10), nil
}

func (id *SteamID) UnmarshalText(b []byte) error {
	v, err := ParseID64(string(b))
	if err != nil {
		return err
	}

	*id = v

	return nil
}
