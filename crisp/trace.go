// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package crisp implements a compact classification trace protocol: a
// sequence of formula/clause classification decisions, varint-encoded
// the way this pipeline's SAT-solving ancestor's crisp package encoded
// its incremental-solving wire messages, so `flu check --emit-trace`
// can stream decisions to another process (e.g. a visualizer) without
// paying JSON's overhead.
package crisp

import (
	"bufio"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Kind distinguishes a formula-level decision (before clausification)
// from a clause-level one (after).
type Kind uint8

const (
	KindFormula Kind = iota
	KindClause
)

// Verdict is the classifier's accept/reject outcome for one record.
type Verdict uint8

const (
	Accepted Verdict = iota
	Rejected
)

// SubForm names which clause sub-form (§4.4) a clause-level acceptance
// matched. Meaningless (None) for formula-level records and rejections.
type SubForm uint8

const (
	SubFormNone SubForm = iota
	SubFormFL1
	SubFormFL2
	SubFormFL3
)

// Reason is a coarse rejection code, set by the caller alongside a
// Rejected verdict; left at ReasonNone for an Accepted record.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonEquality
	ReasonVariableGap
	ReasonFunctionalMismatch
	ReasonOuterStackViolation
	ReasonOther
)

// Record is one classification decision: the formula or clause id
// classified, what kind it was, the verdict, and (for clause-level
// acceptances) which sub-form matched, or (for rejections) why.
type Record struct {
	ID      int
	Kind    Kind
	Verdict Verdict
	SubForm SubForm
	Reason  Reason
}

const magic = uint32(0xf1a7ed00) // "flated", trace format marker

// Encode writes runID followed by every record in records to w. runID
// identifies one `flu check`/`flu solve` invocation, the same role a
// request id plays in codenerd/AleutianFOSS's use of google/uuid.
func Encode(w io.Writer, runID uuid.UUID, records []Record) error {
	bw := bufio.NewWriter(w)
	if err := writeVu32(bw, magic); err != nil {
		return err
	}
	if err := writeVu32(bw, uint32(V)); err != nil {
		return err
	}
	idBytes, err := runID.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := bw.Write(idBytes); err != nil {
		return err
	}
	if err := writeVu32(bw, uint32(len(records))); err != nil {
		return err
	}
	for _, r := range records {
		if err := writeRecord(bw, r); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeRecord(bw *bufio.Writer, r Record) error {
	if err := writeVu32(bw, uint32(r.ID)); err != nil {
		return err
	}
	fields := [4]byte{byte(r.Kind), byte(r.Verdict), byte(r.SubForm), byte(r.Reason)}
	_, err := bw.Write(fields[:])
	return err
}

// Decode reads a trace previously written by Encode, returning the run
// id and the decoded records in order.
func Decode(r io.Reader) (uuid.UUID, []Record, error) {
	br := bufio.NewReader(r)
	got, err := readVu32(br)
	if err != nil {
		return uuid.Nil, nil, err
	}
	if got != magic {
		return uuid.Nil, nil, fmt.Errorf("crisp: bad trace magic %x", got)
	}
	if _, err := readVu32(br); err != nil { // protocol version, unchecked for now
		return uuid.Nil, nil, err
	}
	idBytes := make([]byte, 16)
	if _, err := io.ReadFull(br, idBytes); err != nil {
		return uuid.Nil, nil, err
	}
	runID, err := uuid.FromBytes(idBytes)
	if err != nil {
		return uuid.Nil, nil, err
	}
	n, err := readVu32(br)
	if err != nil {
		return uuid.Nil, nil, err
	}
	records := make([]Record, 0, n)
	for i := uint32(0); i < n; i++ {
		rec, err := readRecord(br)
		if err != nil {
			return uuid.Nil, nil, err
		}
		records = append(records, rec)
	}
	return runID, records, nil
}

func readRecord(br *bufio.Reader) (Record, error) {
	id, err := readVu32(br)
	if err != nil {
		return Record{}, err
	}
	var fields [4]byte
	if _, err := io.ReadFull(br, fields[:]); err != nil {
		return Record{}, err
	}
	return Record{
		ID:      int(id),
		Kind:    Kind(fields[0]),
		Verdict: Verdict(fields[1]),
		SubForm: SubForm(fields[2]),
		Reason:  Reason(fields[3]),
	}, nil
}
