/*
Package trip
File: observer.go
Description:
    The notifications the engine sends to the display side.

    Observers are called on the goroutine that fed the batch, after the
    engine has released its lock, so they may read engine snapshots.
*/

package trip

import (
	"log/slog"

	"github.com/everforgeworks/galaxies-exolog/internal/game"
)

// Observer receives engine notifications. Nothing fires for an empty batch.
type Observer interface {
	// OnRefresh fires once after every non-empty batch, even if no event changed state.
	OnRefresh()
	// OnBodyAdded fires when a body is first credited to the trip.
	OnBodyAdded(body *game.Body)
	// OnSystemCleared fires when the player arrives in a system.
	OnSystemCleared()
}

// NopObserver ignores every notification.
type NopObserver struct{}

func (NopObserver) OnRefresh()             {}
func (NopObserver) OnBodyAdded(*game.Body) {}
func (NopObserver) OnSystemCleared()       {}

// Observers fans every notification out to each member in order.
type Observers []Observer

func (o Observers) OnRefresh() {
	for _, obs := range o {
		obs.OnRefresh()
	}
}

func (o Observers) OnBodyAdded(body *game.Body) {
	for _, obs := range o {
		obs.OnBodyAdded(body)
	}
}

func (o Observers) OnSystemCleared() {
	for _, obs := range o {
		obs.OnSystemCleared()
	}
}

// LogObserver writes notifications to a structured logger.
type LogObserver struct {
	logger *slog.Logger
	tables *game.Tables
}

// NewLogObserver creates a LogObserver valuing bodies with the given tables.
func NewLogObserver(logger *slog.Logger, tables *game.Tables) *LogObserver {
	return &LogObserver{logger: logger.With("component", "trip"), tables: tables}
}

func (l *LogObserver) OnRefresh() {
	l.logger.Debug("trip refreshed")
}

func (l *LogObserver) OnBodyAdded(body *game.Body) {
	l.logger.Info("body scanned",
		"body", body.Name,
		"class", body.Class.Or(game.ClassUnknown),
		"value", l.tables.Actual(body).TotalValue(),
		"estimate", l.tables.Estimate(body).TotalValue(),
	)
}

func (l *LogObserver) OnSystemCleared() {
	l.logger.Debug("arrived in new system")
}
