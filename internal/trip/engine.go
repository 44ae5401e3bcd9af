/*
Package trip
File: engine.go
Description:
    The event reconciliation engine.

    Consumes journal events in arrival order, decides for each scan whether
    it is new information worth crediting, updates the galaxy store and
    keeps the trip's scanned and mapped lists.

    Architecture:
    - One goroutine calls AddEntries; nothing else mutates the galaxy.
    - Readers take the RWMutex through Summary/Snapshot/Systems.
    - Observers run after the lock is released, in event order.

    The engine never returns errors for inconsistent data. Events that
    reference unknown bodies or arrive out of order are skipped and logged.
*/

package trip

import (
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/everforgeworks/galaxies-exolog/internal/game"
	"github.com/everforgeworks/galaxies-exolog/internal/journal"
)

// Trip is the derived aggregate of what the player earned since the last sale.
type Trip struct {
	ID        uuid.UUID
	StartedAt time.Time
	Scanned   []*game.Body // Bodies credited with a detailed scan, each at most once
	Mapped    []*game.Body // Bodies mapped by the player, each at most once
}

func newTrip(startedAt time.Time) *Trip {
	return &Trip{ID: uuid.New(), StartedAt: startedAt}
}

// Engine owns the galaxy and the trip.
type Engine struct {
	mu       sync.RWMutex
	galaxy   *game.Galaxy
	trip     *Trip
	observer Observer
	logger   *slog.Logger
}

// NewEngine creates an engine over the given galaxy with a fresh trip.
func NewEngine(galaxy *game.Galaxy, logger *slog.Logger) *Engine {
	return &Engine{
		galaxy:   galaxy,
		trip:     newTrip(time.Now()),
		observer: NopObserver{},
		logger:   logger.With("component", "engine"),
	}
}

// SetObserver replaces the observer. Call before the first batch.
func (e *Engine) SetObserver(o Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if o == nil {
		o = NopObserver{}
	}
	e.observer = o
}

// Tables returns the valuation tables of the galaxy.
func (e *Engine) Tables() *game.Tables {
	return e.galaxy.Tables()
}

// AddEntries applies a batch of events in order and notifies the observer.
// An empty batch is a no-op and sends no notifications.
func (e *Engine) AddEntries(events []journal.Event) {
	if len(events) == 0 {
		return
	}

	e.mu.Lock()
	var pending []func(Observer)
	for _, ev := range events {
		pending = append(pending, e.apply(ev)...)
	}
	observer := e.observer
	e.mu.Unlock()

	for _, notify := range pending {
		notify(observer)
	}
	observer.OnRefresh()
}

// apply handles one event under the write lock and returns the notifications it produced.
func (e *Engine) apply(ev journal.Event) []func(Observer) {
	switch ev := ev.(type) {
	case *journal.FSDJump:
		e.galaxy.JumpToSystem(ev.SystemAddress, ev.StarSystem, ev.StarPos)
		return []func(Observer){Observer.OnSystemCleared}

	case *journal.FSSDiscoveryScan:
		e.galaxy.RecordDiscoveryScan(ev.SystemAddress, ev.BodyCount)

	case *journal.Scan:
		return e.applyScan(ev)

	case *journal.SAAScanComplete:
		e.applyMapped(ev)

	case *journal.FSSBodySignals:
		// Summaries without biology count as zero and only touch known bodies.
		count, ok := journal.BiologicalCount(ev.Signals)
		if _, known := e.galaxy.Body(ev.SystemAddress, ev.BodyID); !ok && !known {
			return nil
		}
		body := e.galaxy.AddOrUpdateSignalCount(ev.SystemAddress, ev.BodyID, count)
		e.galaxy.RefreshCandidates(body)

	case *journal.SAASignalsFound:
		e.applySignalsFound(ev)

	case *journal.Sale:
		e.logger.Info("exploration data sold, starting new trip",
			"trip", e.trip.ID,
			"earnings", ev.TotalEarnings,
		)
		e.trip = newTrip(ev.Time())
	}
	return nil
}

func (e *Engine) applyScan(ev *journal.Scan) []func(Observer) {
	if !ev.IsPlanet() {
		return nil
	}

	// 1. Decide novelty before the store sees the scan
	existing, seen := e.galaxy.Body(ev.SystemAddress, ev.BodyID)
	isNew := !seen || !existing.DetailedScanByPlayer

	// 2. Create or refresh the record
	body := e.galaxy.AddOrUpdateBodyFromScan(ev.ScanData())

	// 3. Credit only first detailed scans
	if game.ScanType(ev.ScanType) != game.ScanDetailed || !isNew {
		return nil
	}
	e.trip.Scanned = append(e.trip.Scanned, body)
	return []func(Observer){func(o Observer) { o.OnBodyAdded(body) }}
}

func (e *Engine) applyMapped(ev *journal.SAAScanComplete) {
	body, ok := e.galaxy.Body(ev.SystemAddress, ev.BodyID)
	if !ok || !body.FromScan {
		e.logger.Debug("mapping for unscanned body skipped", "body", ev.BodyName, "body_id", ev.BodyID)
		return
	}
	body.MappedByPlayer = true
	if !slices.Contains(e.trip.Mapped, body) {
		e.trip.Mapped = append(e.trip.Mapped, body)
	}
}

func (e *Engine) applySignalsFound(ev *journal.SAASignalsFound) {
	if count, ok := journal.BiologicalCount(ev.Signals); ok {
		body := e.galaxy.AddOrUpdateSignalCount(ev.SystemAddress, ev.BodyID, count)
		e.galaxy.RefreshCandidates(body)
	}

	genera := make([]string, 0, len(ev.Genuses))
	for _, g := range ev.Genuses {
		genera = append(genera, g.Name())
	}
	if len(genera) == 0 {
		return
	}
	if _, ok := e.galaxy.Body(ev.SystemAddress, ev.BodyID); !ok {
		e.logger.Debug("genus confirmation for unknown body skipped", "body", ev.BodyName)
		return
	}
	e.galaxy.ConfirmGenus(ev.SystemAddress, ev.BodyID, genera...)
}

// Summary totals the trip's lists.
func (e *Engine) Summary() Summary {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.summary()
}

func (e *Engine) summary() Summary {
	tables := e.galaxy.Tables()
	s := Summary{
		ID:            e.trip.ID,
		StartedAt:     e.trip.StartedAt,
		BodiesScanned: len(e.trip.Scanned),
		BodiesMapped:  len(e.trip.Mapped),
	}

	for _, b := range e.trip.Scanned {
		s.ScannedValue += int64(tables.Actual(b).Base)
	}
	for _, b := range e.trip.Mapped {
		s.MappedValue += int64(math.Round(tables.Actual(b).Mapped))
	}
	for _, b := range e.credited() {
		v := tables.Actual(b)
		s.BonusValue += int64(math.Round(v.Bonuses))
		s.TotalValue += int64(v.TotalValue())

		bio := b.BioValues()
		s.BioMin += int64(bio.Min)
		s.BioMax += int64(bio.Max)
	}
	return s
}

// credited lists every body of the trip once, scanned bodies first.
func (e *Engine) credited() []*game.Body {
	out := slices.Clone(e.trip.Scanned)
	for _, b := range e.trip.Mapped {
		if !slices.Contains(out, b) {
			out = append(out, b)
		}
	}
	return out
}

// Snapshot copies the trip summary and the current system.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Snapshot{
		Summary: e.summary(),
		Current: NewSystemView(e.galaxy.Tables(), e.galaxy.Current()),
	}
}

// CurrentSystem copies the current system.
func (e *Engine) CurrentSystem() SystemView {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return NewSystemView(e.galaxy.Tables(), e.galaxy.Current())
}

// Systems copies every known system ordered by address.
func (e *Engine) Systems() []SystemView {
	e.mu.RLock()
	defer e.mu.RUnlock()
	systems := e.galaxy.Systems()
	out := make([]SystemView, 0, len(systems))
	for _, s := range systems {
		out = append(out, NewSystemView(e.galaxy.Tables(), s))
	}
	return out
}

// BodyView copies one body. ok is false for unknown bodies.
func (e *Engine) BodyView(key game.BodyKey) (BodyView, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	b, ok := e.galaxy.Body(key.SystemAddress, key.BodyID)
	if !ok {
		return BodyView{}, false
	}
	return NewBodyView(e.galaxy.Tables(), b), true
}
