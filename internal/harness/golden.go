package harness

import (
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/gridlock"
	"github.com/roach88/gridlock/internal/grid"
)

// RenderTrace produces the byte-stable trace compared against golden files.
// It deliberately omits timing and node counts; only fields that are fully
// determined by the scenario appear.
func RenderTrace(res *Result) []byte {
	var sb strings.Builder

	sb.WriteString("scenario: " + res.Scenario + "\n")
	sb.WriteString("token: " + res.Outcome.Token + "\n")
	sb.WriteString("status: " + res.Outcome.Status.String() + "\n")

	if res.Outcome.Status == gridlock.StatusInvalid {
		var ve *grid.ValidationError
		if errors.As(res.Outcome.Err, &ve) {
			sb.WriteString("reason: " + string(ve.Code) + "\n")
		}
	}

	if res.Outcome.Grid != nil {
		sb.WriteString("grid:\n")
		sb.WriteString(grid.Grid(res.Outcome.Grid).String())
		sb.WriteString("\n")
	}

	return []byte(sb.String())
}

// AssertGolden compares a result's rendered trace against the golden file
// named after the scenario. Run tests with -update to rewrite golden files.
func AssertGolden(t *testing.T, res *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, res.Scenario, RenderTrace(res))
}
