// Package spacetrack queries the space-track.org general perturbations API.
package spacetrack

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// epochLayout matches Space-Track's naive EPOCH timestamps. The trailing
// .999999 accepts the fractional seconds the gp class emits while still
// parsing whole-second values.
const epochLayout = "2006-01-02T15:04:05.999999"

// Epoch is a provider timestamp with no timezone offset.
type Epoch struct {
	time.Time
}

func (e *Epoch) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(epochLayout, s)
	if err != nil {
		return fmt.Errorf("parsing epoch %q: %w", s, err)
	}
	e.Time = t
	return nil
}

func (e Epoch) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Format(epochLayout))
}

// Record is one decoded general perturbations element set. Name and
// InternationalDesignator stay nil when the provider omits them; any
// defaulting is the output writer's concern.
type Record struct {
	Name                    *string
	InternationalDesignator *string
	NoradID                 string
	Epoch                   time.Time
	RevAtEpoch              string
	Line1                   string
	Line2                   string
}

// wireRecord mirrors the provider's JSON field names exactly. Pointer
// fields let decode distinguish absent from empty so required fields can
// be enforced after unmarshalling.
type wireRecord struct {
	ObjectName *string `json:"OBJECT_NAME"`
	ObjectID   *string `json:"OBJECT_ID"`
	NoradID    *string `json:"NORAD_CAT_ID"`
	Epoch      *Epoch  `json:"EPOCH"`
	RevAtEpoch *string `json:"REV_AT_EPOCH"`
	Line1      *string `json:"TLE_LINE1"`
	Line2      *string `json:"TLE_LINE2"`
}

func (w wireRecord) toRecord() (Record, error) {
	switch {
	case w.NoradID == nil:
		return Record{}, fmt.Errorf("missing required field NORAD_CAT_ID")
	case w.Epoch == nil:
		return Record{}, fmt.Errorf("missing required field EPOCH")
	case w.RevAtEpoch == nil:
		return Record{}, fmt.Errorf("missing required field REV_AT_EPOCH")
	case w.Line1 == nil:
		return Record{}, fmt.Errorf("missing required field TLE_LINE1")
	case w.Line2 == nil:
		return Record{}, fmt.Errorf("missing required field TLE_LINE2")
	}
	return Record{
		Name:                    w.ObjectName,
		InternationalDesignator: w.ObjectID,
		NoradID:                 *w.NoradID,
		Epoch:                   w.Epoch.Time,
		RevAtEpoch:              *w.RevAtEpoch,
		Line1:                   *w.Line1,
		Line2:                   *w.Line2,
	}, nil
}

// DecodeRecords decodes a JSON array response body into records, one per
// array element, preserving order. A single malformed element fails the
// whole decode.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var wire []wireRecord
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decoding response body: %w", err)
	}
	records := make([]Record, 0, len(wire))
	for i, w := range wire {
		rec, err := w.toRecord()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
