package steamidutil_test

import (
	"context"
	"fmt"
	"steamkit/steamid"
	"steamkit/steamidutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownID64 steamid.SteamID = 76561198061271782

func TestDetectNotation(t *testing.T) {
	tests := []struct {
		in   string
		want steamidutil.Notation
		ok   bool
	}{
		{"76561198061271782", steamidutil.NotationID64, true},
		{"STEAM_0:0:50503027", steamidutil.NotationID2, true},
		{"[U:1:101006054]", steamidutil.NotationID3, true},
		{"", 0, false},
		{"ahedgehog", 0, false},
		{"-12", 0, false},
	}

	for _, tt := range tests {
		got, ok := steamidutil.DetectNotation(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)

		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

func TestParseAnyNotation(t *testing.T) {
	for _, in := range []string{
		"76561198061271782",
		"STEAM_0:0:50503027",
		"STEAM_1:0:50503027",
		"[U:1:101006054]",
		"  [U:1:101006054]\n",
	} {
		id, err := steamidutil.Parse(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, knownID64, id, "input %q", in)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "nope", "[X:1:5]", "STEAM_9:0:1", "99999999999999999999"} {
		_, err := steamidutil.Parse(in)
		assert.ErrorIs(t, err, steamid.ErrParse, "input %q", in)
	}
}

func TestFormat(t *testing.T) {
	tests := map[steamidutil.Notation]string{
		steamidutil.NotationID64: "76561198061271782",
		steamidutil.NotationID2:  "STEAM_1:0:50503027",
		steamidutil.NotationID3:  "[U:1:101006054]",
	}

	for n, want := range tests {
		got, err := steamidutil.Format(knownID64, n)
		require.NoError(t, err)
		assert.Equal(t, want, got, "notation %s", n)
	}
}

func TestFormatUnrepresentable(t *testing.T) {
	clan := steamid.New(steamid.UniversePublic, steamid.AccountTypeClan, 0, 4)

	_, err := steamidutil.Format(clan, steamidutil.NotationID2)
	assert.ErrorIs(t, err, steamid.ErrConversion)

	got, err := steamidutil.Format(clan, steamidutil.NotationID3)
	require.NoError(t, err)
	assert.Equal(t, "[g:1:4]", got)

	seeder := steamid.New(steamid.UniversePublic, steamid.AccountTypeP2PSuperSeeder, 0, 4)

	_, err = steamidutil.Format(seeder, steamidutil.NotationID3)
	assert.ErrorIs(t, err, steamid.ErrConversion)

	_, err = steamidutil.Format(knownID64, steamidutil.Notation(9))
	assert.Error(t, err)
}

func TestParseNotation(t *testing.T) {
	for _, n := range steamidutil.Notations {
		got, err := steamidutil.ParseNotation(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}

	_, err := steamidutil.ParseNotation("id4")
	assert.Error(t, err)
}

func TestParseAllPreservesOrder(t *testing.T) {
	inputs := make([]string, 0, 200)

	for i := 0; i < 100; i++ {
		inputs = append(inputs, fmt.Sprintf("[U:1:%d]", i))
		inputs = append(inputs, fmt.Sprintf("STEAM_%d:0:1", 7+i%3))
	}

	results, err := steamidutil.ParseAll(context.Background(), inputs, 8)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))

	for i, r := range results {
		assert.Equal(t, inputs[i], r.Input)

		if i%2 == 0 {
			require.NoError(t, r.Err)
			assert.Equal(t, uint32(i/2), r.ID.AccountNumber())
		} else {
			assert.ErrorIs(t, r.Err, steamid.ErrParse)
		}
	}
}

func TestParseAllZeroWorkers(t *testing.T) {
	results, err := steamidutil.ParseAll(context.Background(), []string{"76561198061271782"}, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, knownID64, results[0].ID)
}

func TestParseAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := steamidutil.ParseAll(ctx, []string{"76561198061271782"}, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "", steamidutil.Join(nil))
	assert.Equal(t, "76561198061271782", steamidutil.Join([]steamid.SteamID{knownID64}))
	assert.Equal(t, "76561198061271782,1", steamidutil.Join([]steamid.SteamID{knownID64, 1}))
}
