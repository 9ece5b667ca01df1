package steamidutil

import (
	"context"
	"fmt"
	"steamkit/steamid"
	"strings"

	"golang.org/x/sync/errgroup"
)

type Notation uint8

const (
	NotationID64 Notation = iota
	NotationID2
	NotationID3
)

var notationNames = [...]string{
	NotationID64: "id64",
	NotationID2:  "id2",
	NotationID3:  "id3",
}

var Notations = []Notation{NotationID64, NotationID2, NotationID3}

func (n Notation) String() string {
	if int(n) >= len(notationNames) {
		return fmt.Sprintf("Notation(%d)", uint8(n))
	}

	return notationNames[n]
}

func ParseNotation(name string) (Notation, error) {
	for i, n := range notationNames {
		if n == name {
			return Notation(i), nil
		}
	}

	return 0, fmt.Errorf("unknown notation %q", name)
}

// DetectNotation guesses the notation from the shape of s. It does not
// validate s.
func DetectNotation(s string) (Notation, bool) {
	switch {
	case strings.HasPrefix(s, "STEAM_"):
		return NotationID2, true
	case strings.HasPrefix(s, "["):
		return NotationID3, true
	case s != "" && strings.Trim(s, "0123456789") == "":
		return NotationID64, true
	}

	return 0, false
}

// Parse resolves s written in any notation.
func Parse(s string) (steamid.SteamID, error) {
	s = strings.TrimSpace(s)

	n, ok := DetectNotation(s)
	if !ok {
		return 0, &steamid.ParseError{Notation: "steam id", Input: s, Reason: "unrecognised notation"}
	}

	switch n {
	case NotationID2:
		id, err := steamid.ParseID2(s)
		if err != nil {
			return 0, err
		}

		return id.SteamID(), nil
	case NotationID3:
		id, err := steamid.ParseID3(s)
		if err != nil {
			return 0, err
		}

		return id.SteamID(), nil
	default:
		return steamid.ParseID64(s)
	}
}

func Format(id steamid.SteamID, n Notation) (string, error) {
	switch n {
	case NotationID64:
		return id.String(), nil
	case NotationID2:
		id2, err := steamid.ID2FromSteamID(id)
		if err != nil {
			return "", err
		}

		return id2.String(), nil
	case NotationID3:
		id3, err := steamid.ID3FromSteamID(id)
		if err != nil {
			return "", err
		}

		return id3.String(), nil
	default:
		return "", fmt.Errorf("unknown notation %s", n)
	}
}

type Result struct {
	Input string
	ID    steamid.SteamID
	Err   error
}

// ParseAll resolves inputs with at most workers concurrent parses. Results
// are in input order and carry their own errors; the returned error is only
// set when ctx ends first.
func ParseAll(ctx context.Context, inputs []string, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(inputs))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, in := range inputs {
		i, in := i, in

		if err := ctx.Err(); err != nil {
			break
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			id, err := Parse(in)

			results[i] = Result{
				Input: in,
				ID:    id,
				Err:   err,
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("errgroup: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context: %w", err)
	}

	return results, nil
}

// Join renders ids as the comma separated list the web API takes in its
// steamids parameter.
func Join(ids []steamid.SteamID) string {
	var b strings.Builder

	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(id.String())
	}

	return b.String()
}
