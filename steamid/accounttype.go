package steamid

import (
	"fmt"
	"strconv"
)

// AccountType is the kind of entity a SteamID denotes.
type AccountType uint8

const (
	AccountTypeInvalid AccountType = iota
	AccountTypeIndividual
	AccountTypeMultiseat
	AccountTypeGameServer
	AccountTypeAnonGameServer
	AccountTypePending
	AccountTypeContentServer
	AccountTypeClan
	AccountTypeChat
	AccountTypeP2PSuperSeeder
	AccountTypeAnonUser
)

var accountTypeNames = [...]string{
	AccountTypeInvalid:        "Invalid",
	AccountTypeIndividual:     "Individual",
	AccountTypeMultiseat:      "Multiseat",
	AccountTypeGameServer:     "GameServer",
	AccountTypeAnonGameServer: "AnonGameServer",
	AccountTypePending:        "Pending",
	AccountTypeContentServer:  "ContentServer",
	AccountTypeClan:           "Clan",
	AccountTypeChat:           "Chat",
	AccountTypeP2PSuperSeeder: "P2PSuperSeeder",
	AccountTypeAnonUser:       "AnonUser",
}

// 0 marks a type with no letter.
var accountTypeLetters = [...]byte{
	AccountTypeInvalid:        'I',
	AccountTypeIndividual:     'U',
	AccountTypeMultiseat:      'M',
	AccountTypeGameServer:     'G',
	AccountTypeAnonGameServer: 'A',
	AccountTypePending:        'P',
	AccountTypeContentServer:  'C',
	AccountTypeClan:           'g',
	AccountTypeChat:           'T',
	AccountTypeP2PSuperSeeder: 0,
	AccountTypeAnonUser:       'a',
}

func AccountTypeFromUint8(v uint8) (AccountType, error) {
	t := AccountType(v)
	if !t.Valid() {
		return 0, &InvalidEnumValueError{Enum: "account type", Value: strconv.FormatUint(uint64(v), 10)}
	}

	return t, nil
}

// AccountTypeFromLetter maps an ID3 type letter to its AccountType. L and c
// are older spellings of T and also yield Chat.
func AccountTypeFromLetter(c byte) (AccountType, error) {
	switch c {
	case 'L', 'c':
		return AccountTypeChat, nil
	case 0:
		return 0, &InvalidEnumValueError{Enum: "account type letter", Value: strconv.QuoteRune(rune(c))}
	}

	for i, l := range accountTypeLetters {
		if l == c {
			return AccountType(i), nil
		}
	}

	return 0, &InvalidEnumValueError{Enum: "account type letter", Value: strconv.QuoteRune(rune(c))}
}

func (t AccountType) Valid() bool {
	return int(t) < len(accountTypeNames)
}

func (t AccountType) HasLetter() bool {
	return t.Valid() && accountTypeLetters[t] != 0
}

// Letter returns the ID3 letter for t. Callers must check HasLetter first;
// asking for the letter of P2PSuperSeeder panics.
func (t AccountType) Letter() byte {
	if !t.HasLetter() {
		panic(fmt.Sprintf("steamid: account type %s has no letter", t))
	}

	return accountTypeLetters[t]
}

func (t AccountType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("AccountType(%d)", uint8(t))
	}

	return accountTypeNames[t]
}
