package scenario

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares its rendered result
// against testdata/golden/{scenario.Name}.golden. Scenarios used this way
// should pin Token; a minted UUID would change the transcript every run.
//
// Regenerate fixtures with:
//
//	go test ./scenario -update
//
// Returns the run's Result so callers can assert further; the golden
// comparison itself fails the test through goldie.
func RunWithGolden(t *testing.T, sc *Scenario) (*Result, error) {
	t.Helper()

	res, err := Run(sc)
	if err != nil {
		return nil, err
	}
	text, err := Render(res)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, sc.Name, []byte(text))
	return res, nil
}
