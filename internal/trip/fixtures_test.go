package trip_test

import (
	"io"
	"log/slog"
	"time"

	"github.com/everforgeworks/galaxies-exolog/internal/game"
	"github.com/everforgeworks/galaxies-exolog/internal/journal"
	"github.com/everforgeworks/galaxies-exolog/internal/trip"
)

const (
	primarySystemAddress int64 = 12345
	primaryBodyID              = 5
)

var eventTime = time.Date(2024, 6, 9, 0, 55, 18, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestingGalaxy registers the primary system with one unscanned planet and makes it current.
func newTestingGalaxy() *game.Galaxy {
	galaxy := game.NewDefaultGalaxy()
	galaxy.AddSystem(&game.System{
		Address: primarySystemAddress,
		Name:    "TEST SYSTEM",
		Bodies: map[int]*game.Body{
			primaryBodyID: {
				Key:        game.BodyKey{SystemAddress: primarySystemAddress, BodyID: primaryBodyID},
				Name:       "stupid testing planet",
				SystemName: "TEST SYSTEM",
			},
		},
	})
	galaxy.SetCurrent(primarySystemAddress)
	return galaxy
}

func newTestingEngine() *trip.Engine {
	return trip.NewEngine(newTestingGalaxy(), discardLogger())
}

// newFullRosterEngine matches species against every known genus.
func newFullRosterEngine() *trip.Engine {
	galaxy := game.NewGalaxy(game.DefaultTables(), game.FullCatalog())
	galaxy.JumpToSystem(primarySystemAddress, "TEST SYSTEM", [3]float64{})
	return trip.NewEngine(galaxy, discardLogger())
}

func header(kind journal.Kind) journal.Header {
	return journal.Header{Timestamp: eventTime, Event: kind}
}

type scanOption func(*journal.Scan)

// scanEvent builds a detailed scan of an undiscovered rocky body in the primary system.
func scanEvent(opts ...scanOption) *journal.Scan {
	s := &journal.Scan{
		Header:        header(journal.KindScan),
		StarSystem:    "DONT CARE",
		SystemAddress: primarySystemAddress,
		BodyName:      "DOESNT MATTER",
		BodyID:        primaryBodyID,
		ScanType:      string(game.ScanDetailed),
		PlanetClass:   string(game.ClassRocky),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func withBodyID(id int) scanOption {
	return func(s *journal.Scan) { s.BodyID = id }
}

func withScanType(t game.ScanType) scanOption {
	return func(s *journal.Scan) { s.ScanType = string(t) }
}

func asStar() scanOption {
	return func(s *journal.Scan) {
		s.PlanetClass = ""
		s.StarType = "K"
	}
}

func withAtmosphere(a game.Atmosphere) scanOption {
	return func(s *journal.Scan) {
		v := string(a)
		s.AtmosphereType = &v
	}
}

// withGravityG takes gravity in g; the journal reports m/s^2.
func withGravityG(g float64) scanOption {
	return func(s *journal.Scan) {
		v := g * 10
		s.SurfaceGravity = &v
	}
}

func jumpEvent(address int64, name string) *journal.FSDJump {
	return &journal.FSDJump{Header: header(journal.KindFSDJump), StarSystem: name, SystemAddress: address}
}

func mappedEvent(bodyID int) *journal.SAAScanComplete {
	return &journal.SAAScanComplete{
		Header:        header(journal.KindSAAScanComplete),
		SystemAddress: primarySystemAddress,
		BodyID:        bodyID,
	}
}

func bodySignalsEvent(bodyID, count int) *journal.FSSBodySignals {
	return &journal.FSSBodySignals{
		Header:        header(journal.KindFSSBodySignals),
		SystemAddress: primarySystemAddress,
		BodyID:        bodyID,
		Signals: []journal.Signal{
			{Type: "$SAA_SignalType_Biological;", TypeLocalised: "Biological", Count: count},
		},
	}
}

func geologicalSignalsEvent(bodyID int) *journal.FSSBodySignals {
	return &journal.FSSBodySignals{
		Header:        header(journal.KindFSSBodySignals),
		SystemAddress: primarySystemAddress,
		BodyID:        bodyID,
		Signals: []journal.Signal{
			{Type: "$SAA_SignalType_Geological;", TypeLocalised: "Geological", Count: 3},
		},
	}
}

func signalsFoundEvent(bodyID int, genera ...string) *journal.SAASignalsFound {
	ev := &journal.SAASignalsFound{
		Header:        header(journal.KindSAASignalsFound),
		SystemAddress: primarySystemAddress,
		BodyID:        bodyID,
	}
	for _, g := range genera {
		ev.Genuses = append(ev.Genuses, journal.Genus{GenusLocalised: g})
	}
	return ev
}

func saleEvent() *journal.Sale {
	return &journal.Sale{Header: header(journal.KindSellExplorationData), TotalEarnings: 1000}
}

// recordingObserver counts notifications.
type recordingObserver struct {
	refreshes int
	cleared   int
	added     []*game.Body
}

func (r *recordingObserver) OnRefresh()                  { r.refreshes++ }
func (r *recordingObserver) OnBodyAdded(body *game.Body) { r.added = append(r.added, body) }
func (r *recordingObserver) OnSystemCleared()            { r.cleared++ }
