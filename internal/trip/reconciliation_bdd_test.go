package trip_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/cucumber/godog"

	"github.com/everforgeworks/galaxies-exolog/internal/game"
	"github.com/everforgeworks/galaxies-exolog/internal/journal"
	"github.com/everforgeworks/galaxies-exolog/internal/trip"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeReconciliationScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type reconciliationContext struct {
	engine  *trip.Engine
	address int64
}

func (rc *reconciliationContext) reset() {
	rc.engine = trip.NewEngine(game.NewDefaultGalaxy(), discardLogger())
	rc.address = 0
}

func (rc *reconciliationContext) playerIsInSystem(address int64, name string) error {
	rc.address = address
	rc.engine.AddEntries([]journal.Event{jumpEvent(address, name)})
	return nil
}

func (rc *reconciliationContext) scan(bodyID int, opts ...scanOption) {
	opts = append([]scanOption{withBodyID(bodyID), func(s *journal.Scan) { s.SystemAddress = rc.address }}, opts...)
	rc.engine.AddEntries([]journal.Event{scanEvent(opts...)})
}

func (rc *reconciliationContext) detailedScanArrives(bodyID int) error {
	rc.scan(bodyID)
	return nil
}

func (rc *reconciliationContext) typedScanArrives(scanType string, bodyID int) error {
	rc.scan(bodyID, withScanType(game.ScanType(scanType)))
	return nil
}

func (rc *reconciliationContext) knownBodyScanArrives(bodyID int) error {
	rc.scan(bodyID, func(s *journal.Scan) {
		s.WasDiscovered = true
		s.WasMapped = true
	})
	return nil
}

func (rc *reconciliationContext) atmosphereScanArrives(bodyID int, atmosphere string, gravity float64) error {
	rc.scan(bodyID, withAtmosphere(game.Atmosphere(atmosphere)), withGravityG(gravity))
	return nil
}

func (rc *reconciliationContext) bodyIsMapped(bodyID int) error {
	ev := mappedEvent(bodyID)
	ev.SystemAddress = rc.address
	rc.engine.AddEntries([]journal.Event{ev})
	return nil
}

func (rc *reconciliationContext) bodyReportsSignals(bodyID, count int) error {
	ev := bodySignalsEvent(bodyID, count)
	ev.SystemAddress = rc.address
	rc.engine.AddEntries([]journal.Event{ev})
	return nil
}

func (rc *reconciliationContext) dataIsSold() error {
	rc.engine.AddEntries([]journal.Event{saleEvent()})
	return nil
}

func (rc *reconciliationContext) bodiesScanned(expected int) error {
	if got := rc.engine.Summary().BodiesScanned; got != expected {
		return fmt.Errorf("expected %d scanned bodies, got %d", expected, got)
	}
	return nil
}

func (rc *reconciliationContext) bodiesMapped(expected int) error {
	if got := rc.engine.Summary().BodiesMapped; got != expected {
		return fmt.Errorf("expected %d mapped bodies, got %d", expected, got)
	}
	return nil
}

func (rc *reconciliationContext) scannedValue(expected int64) error {
	if got := rc.engine.Summary().ScannedValue; got != expected {
		return fmt.Errorf("expected scanned value %d, got %d", expected, got)
	}
	return nil
}

func (rc *reconciliationContext) mappedValue(expected int64) error {
	if got := rc.engine.Summary().MappedValue; got != expected {
		return fmt.Errorf("expected mapped value %d, got %d", expected, got)
	}
	return nil
}

func (rc *reconciliationContext) bonusValue(expected int64) error {
	if got := rc.engine.Summary().BonusValue; got != expected {
		return fmt.Errorf("expected bonus value %d, got %d", expected, got)
	}
	return nil
}

func (rc *reconciliationContext) tripWorth(expected int64) error {
	if got := rc.engine.Summary().TotalValue; got != expected {
		return fmt.Errorf("expected trip total %d, got %d", expected, got)
	}
	return nil
}

func (rc *reconciliationContext) knownBodies(expected int) error {
	if got := len(rc.engine.CurrentSystem().Bodies); got != expected {
		return fmt.Errorf("expected %d known bodies, got %d", expected, got)
	}
	return nil
}

func (rc *reconciliationContext) body(bodyID int) (trip.BodyView, error) {
	view, ok := rc.engine.BodyView(game.BodyKey{SystemAddress: rc.address, BodyID: bodyID})
	if !ok {
		return trip.BodyView{}, fmt.Errorf("body %d not found", bodyID)
	}
	return view, nil
}

func (rc *reconciliationContext) onlyCandidate(bodyID int, fullName string) error {
	view, err := rc.body(bodyID)
	if err != nil {
		return err
	}
	var found []string
	for _, c := range view.Candidates {
		found = append(found, c.Genus+" "+c.Species)
	}
	if len(found) != 1 || found[0] != fullName {
		return fmt.Errorf("expected only %s, got %v", fullName, found)
	}
	return nil
}

func (rc *reconciliationContext) bioRange(bodyID, minValue, maxValue int) error {
	view, err := rc.body(bodyID)
	if err != nil {
		return err
	}
	if view.Bio.Min != minValue || view.Bio.Max != maxValue {
		return fmt.Errorf("expected biological range %d-%d, got %d-%d", minValue, maxValue, view.Bio.Min, view.Bio.Max)
	}
	return nil
}

func InitializeReconciliationScenario(sc *godog.ScenarioContext) {
	ctx := &reconciliationContext{}

	sc.Before(func(c context.Context, _ *godog.Scenario) (context.Context, error) {
		ctx.reset()
		return c, nil
	})

	// Setup steps
	sc.Step(`^the player is in system (\d+) named "([^"]*)"$`, ctx.playerIsInSystem)

	// Event steps
	sc.Step(`^a detailed scan of body (\d+) arrives$`, ctx.detailedScanArrives)
	sc.Step(`^an (\w+) scan of body (\d+) arrives$`, ctx.typedScanArrives)
	sc.Step(`^a detailed scan of previously discovered and mapped body (\d+) arrives$`, ctx.knownBodyScanArrives)
	sc.Step(`^a detailed scan of body (\d+) with a "([^"]*)" atmosphere and ([\d.]+) g arrives$`, ctx.atmosphereScanArrives)
	sc.Step(`^body (\d+) is mapped$`, ctx.bodyIsMapped)
	sc.Step(`^body (\d+) reports (\d+) biological signals?$`, ctx.bodyReportsSignals)
	sc.Step(`^the exploration data is sold$`, ctx.dataIsSold)

	// Assertion steps
	sc.Step(`^(\d+) bod(?:y|ies) (?:is|are) scanned this trip$`, ctx.bodiesScanned)
	sc.Step(`^(\d+) bod(?:y|ies) (?:is|are) mapped this trip$`, ctx.bodiesMapped)
	sc.Step(`^the scanned value is (\d+) credits$`, ctx.scannedValue)
	sc.Step(`^the mapped value is (\d+) credits$`, ctx.mappedValue)
	sc.Step(`^the bonus value is (\d+) credits$`, ctx.bonusValue)
	sc.Step(`^the trip is worth (\d+) credits$`, ctx.tripWorth)
	sc.Step(`^the system has (\d+) known bod(?:y|ies)$`, ctx.knownBodies)
	sc.Step(`^the only candidate of body (\d+) is "([^"]*)"$`, ctx.onlyCandidate)
	sc.Step(`^body (\d+) is worth between (\d+) and (\d+) credits in samples$`, ctx.bioRange)
}
