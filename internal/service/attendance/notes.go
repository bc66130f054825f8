package attendance

import (
	"regexp"
	"strings"
)

// Automatic note labels, matching the wording HR expects on exports.
const (
	noteMissingCheckout = "سهو بصمة"
	noteMissingCheckin  = "سهو بصمة دخول"
	noteEarlyLeave      = "انصراف مبكر"
)

// noteDelimiter joins note tokens; splitting accepts both the Arabic and
// Latin comma so re-imported notes round-trip.
const noteDelimiter = "، "

var noteSplitRegex = regexp.MustCompile(`[،,]`)

// appendNotes merges additions into an existing free-text note string,
// de-duplicating tokens while preserving first-seen order. Idempotent:
// running it on its own output adds nothing.
func appendNotes(existing string, additions []string) string {
	var ordered []string
	seen := make(map[string]struct{})
	add := func(note string) {
		note = strings.TrimSpace(note)
		if note == "" {
			return
		}
		if _, ok := seen[note]; ok {
			return
		}
		seen[note] = struct{}{}
		ordered = append(ordered, note)
	}

	for _, note := range noteSplitRegex.Split(existing, -1) {
		add(note)
	}
	for _, note := range additions {
		add(note)
	}

	return strings.Join(ordered, noteDelimiter)
}

type notesInput struct {
	ExistingNotes            string
	CheckInExists            bool
	CheckOutExists           bool
	MissingStampExcused      bool
	EarlyLeaveExcused        bool
	CheckOutBeforeEarlyLeave bool
}

// automaticNotes derives the day's annotations (missing stamps, early
// leave) and merges them with any operator-entered notes.
func automaticNotes(in notesInput) string {
	var additions []string
	if in.CheckInExists && !in.CheckOutExists && !in.MissingStampExcused {
		additions = append(additions, noteMissingCheckout)
	}
	if !in.CheckInExists && in.CheckOutExists && !in.MissingStampExcused {
		additions = append(additions, noteMissingCheckin)
	}
	if in.CheckOutExists && in.CheckOutBeforeEarlyLeave && !in.EarlyLeaveExcused {
		additions = append(additions, noteEarlyLeave)
	}
	return appendNotes(in.ExistingNotes, additions)
}
