// Package main - feedback.go
//
// Result collection and serialization for timelist.
//
// This file implements the result list handed back to the launcher:
// - Items are appended in display order and never mutated or removed
// - Identifiers are deterministic per item role so the launcher can address
//   rows stably across runs
// - Finalize serializes the list exactly once, either as a plain JSON array
//   or wrapped in the Alfred script-filter envelope

package main

import (
	"encoding/json"
	"io"
)

// Icon points the launcher at an image for a result row. Only emitted in
// script-filter mode.
type Icon struct {
	Path string `json:"path"`
}

// Item is one alternate representation of the resolved instant.
type Item struct {
	UID      string `json:"uid"`
	Arg      string `json:"arg"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Valid    bool   `json:"valid"`
	Icon     *Icon  `json:"icon,omitempty"`
}

// scriptFilter is the envelope Alfred's JSON script-filter format expects.
type scriptFilter struct {
	Items []Item `json:"items"`
}

// Feedback accumulates result items in insertion order.
type Feedback struct {
	items []Item
}

// Add appends one result item. Every item is valid; the launcher contract
// has no actionable-only rows.
func (f *Feedback) Add(uid, arg, title, subtitle string) {
	f.items = append(f.items, Item{
		UID:      uid,
		Arg:      arg,
		Title:    title,
		Subtitle: subtitle,
		Valid:    true,
	})
}

// Items returns the collected items in display order.
func (f *Feedback) Items() []Item {
	return f.items
}

// Finalize writes the serialized result list. In script-filter mode the list
// is wrapped in the Alfred envelope and each row carries the workflow icon.
func (f *Feedback) Finalize(w io.Writer, alfred bool) error {
	enc := json.NewEncoder(w)
	if !alfred {
		items := f.items
		if items == nil {
			items = []Item{}
		}
		return enc.Encode(items)
	}

	wrapped := scriptFilter{Items: make([]Item, len(f.items))}
	for i, item := range f.items {
		item.Icon = &Icon{Path: "icon.png"}
		wrapped.Items[i] = item
	}
	return enc.Encode(wrapped)
}
