/*
Package journal
File: decode.go
Description:
    Turns one journal line into a typed Event. Kinds the engine does not
    consume are reported with ErrUnhandled so readers can skip them.
*/

package journal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnhandled is returned for valid lines of a kind the engine ignores.
var ErrUnhandled = errors.New("unhandled journal event")

// Decode parses one journal line.
func Decode(line []byte) (Event, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return nil, ErrUnhandled
	}

	var header Header
	if err := json.Unmarshal(line, &header); err != nil {
		return nil, fmt.Errorf("decode journal header: %w", err)
	}

	var ev Event
	switch header.Event {
	case KindFSDJump, KindCarrierJump, KindLocation:
		ev = &FSDJump{}
	case KindFSSDiscoveryScan:
		ev = &FSSDiscoveryScan{}
	case KindScan:
		ev = &Scan{}
	case KindSAAScanComplete:
		ev = &SAAScanComplete{}
	case KindFSSBodySignals:
		ev = &FSSBodySignals{}
	case KindSAASignalsFound:
		ev = &SAASignalsFound{}
	case KindSellExplorationData, KindMultiSellExplorationData, KindSellOrganicData:
		ev = &Sale{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnhandled, header.Event)
	}

	if err := json.Unmarshal(line, ev); err != nil {
		return nil, fmt.Errorf("decode %s: %w", header.Event, err)
	}
	return ev, nil
}

// IsSale reports whether the event closes a trip.
func IsSale(ev Event) bool {
	switch ev.Kind() {
	case KindSellExplorationData, KindMultiSellExplorationData, KindSellOrganicData:
		return true
	}
	return false
}
