// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package crisp

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	runID := uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")
	records := []Record{
		{ID: 0, Kind: KindFormula, Verdict: Accepted},
		{ID: 1, Kind: KindClause, Verdict: Accepted, SubForm: SubFormFL2},
		{ID: 2, Kind: KindClause, Verdict: Rejected, Reason: ReasonEquality},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, runID, records); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	gotID, gotRecords, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if gotID != runID {
		t.Errorf("expected run id %v, got %v", runID, gotID)
	}
	if len(gotRecords) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(gotRecords))
	}
	for i, want := range records {
		if gotRecords[i] != want {
			t.Errorf("record %d: expected %+v, got %+v", i, want, gotRecords[i])
		}
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x01, 0x02, 0x03})
	if _, _, err := Decode(&buf); err == nil {
		t.Errorf("expected an error decoding a non-trace stream")
	}
}

func TestEncodeEmptyRecords(t *testing.T) {
	runID := uuid.New()
	var buf bytes.Buffer
	if err := Encode(&buf, runID, nil); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	gotID, gotRecords, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if gotID != runID {
		t.Errorf("expected run id %v, got %v", runID, gotID)
	}
	if len(gotRecords) != 0 {
		t.Errorf("expected no records, got %d", len(gotRecords))
	}
}
