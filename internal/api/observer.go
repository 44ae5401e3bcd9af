/*
Package api
File: observer.go
Description:
    Bridges engine notifications onto the WebSocket Hub.

    Each notification becomes one Message envelope. Payloads are read
    through the engine's snapshot methods, so nothing here touches live
    galaxy records.
*/

package api

import (
	"encoding/json"
	"log/slog"

	"github.com/everforgeworks/galaxies-exolog/internal/game"
	"github.com/everforgeworks/galaxies-exolog/internal/trip"
)

// Message types pushed to displays.
const (
	MessageRefresh       = "refresh"
	MessageBodyAdded     = "body_added"
	MessageSystemCleared = "system_cleared"
)

// Source is the read side of the engine.
type Source interface {
	Summary() trip.Summary
	CurrentSystem() trip.SystemView
	BodyView(key game.BodyKey) (trip.BodyView, bool)
}

// Publisher accepts marshalled messages.
type Publisher interface {
	Publish(message []byte)
}

// HubObserver implements trip.Observer by publishing messages.
type HubObserver struct {
	source    Source
	publisher Publisher
	logger    *slog.Logger
}

var _ trip.Observer = (*HubObserver)(nil)

// NewHubObserver creates an observer publishing to the given hub.
func NewHubObserver(source Source, publisher Publisher, logger *slog.Logger) *HubObserver {
	return &HubObserver{source: source, publisher: publisher, logger: logger.With("component", "hub_observer")}
}

func (o *HubObserver) OnRefresh() {
	summary := o.source.Summary()
	o.publish(MessageRefresh, summary.ID.String(), summary)
}

func (o *HubObserver) OnBodyAdded(body *game.Body) {
	view, ok := o.source.BodyView(body.Key)
	if !ok {
		return
	}
	o.publish(MessageBodyAdded, o.source.Summary().ID.String(), view)
}

func (o *HubObserver) OnSystemCleared() {
	o.publish(MessageSystemCleared, o.source.Summary().ID.String(), o.source.CurrentSystem())
}

func (o *HubObserver) publish(kind, sender string, payload any) {
	data, err := json.Marshal(Message{Type: kind, Payload: payload, Sender: sender})
	if err != nil {
		o.logger.Error("marshal message", "type", kind, "error", err)
		return
	}
	o.publisher.Publish(data)
}
