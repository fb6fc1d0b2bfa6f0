package model

import (
	"encoding/json"
	"testing"
)

func TestOverridePatchUnmarshalKeepsUnknownKeys(t *testing.T) {
	raw := []byte(`{"event_date":"2026-02-05","start_time":"21:00","ticket_note":"door only","capacity":40}`)

	var p OverridePatch
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if p.EventDate != "2026-02-05" || p.StartTime != "21:00" {
		t.Errorf("known fields not extracted: %+v", p)
	}
	if len(p.Extra) != 2 {
		t.Fatalf("Extra has %d keys, want 2", len(p.Extra))
	}
	if _, ok := p.Extra["ticket_note"]; !ok {
		t.Error("unknown key ticket_note dropped")
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var round map[string]json.RawMessage
	if err := json.Unmarshal(out, &round); err != nil {
		t.Fatalf("unmarshal round trip: %v", err)
	}
	for _, key := range []string{"event_date", "start_time", "ticket_note", "capacity"} {
		if _, ok := round[key]; !ok {
			t.Errorf("key %s lost on round trip", key)
		}
	}
	if _, ok := round["end_time"]; ok {
		t.Error("unset known field must not be emitted")
	}
}

func TestOverridePatchIsZero(t *testing.T) {
	if !(OverridePatch{}).IsZero() {
		t.Error("empty patch should be zero")
	}
	if (OverridePatch{StartTime: "21:00"}).IsZero() {
		t.Error("patch with a start time is not zero")
	}
	if (OverridePatch{Extra: map[string]json.RawMessage{"x": nil}}).IsZero() {
		t.Error("patch with passthrough keys is not zero")
	}
}
