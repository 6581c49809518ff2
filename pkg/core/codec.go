package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// TimeLayout is the persisted layout of CreatedAt. It keeps nanoseconds.
const TimeLayout = time.RFC3339Nano

// record is the persisted shape of a note.
// Tags is optional: older records do not carry it.
type record struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	CreatedAt string   `json:"createdAt"`
	Tags      []string `json:"tags"`
}

// EncodeNotes serializes the whole collection as a JSON array of records.
func EncodeNotes(notes []Note) ([]byte, error) {
	records := make([]record, 0, len(notes))
	for _, n := range notes {
		tags := n.Tags
		if tags == nil {
			tags = []string{}
		}
		records = append(records, record{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			CreatedAt: n.CreatedAt.UTC().Format(TimeLayout),
			Tags:      tags,
		})
	}
	return json.Marshal(records)
}

// DecodeNotes parses a blob produced by EncodeNotes, or by any older layout
// of the same records. A single bad record fails the whole batch with a
// *StorageCorruptError.
func DecodeNotes(data []byte) ([]Note, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &StorageCorruptError{Err: fmt.Errorf("invalid json: %w", err)}
	}
	if raw == nil {
		return nil, &StorageCorruptError{Err: errors.New("record is null, want an array")}
	}

	notes := make([]Note, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, item := range raw {
		n, err := decodeRecord(item)
		if err != nil {
			var corrupt *StorageCorruptError
			if errors.As(err, &corrupt) {
				return nil, corrupt
			}
			return nil, &StorageCorruptError{Err: fmt.Errorf("record %d: %w", i, err)}
		}
		if _, dup := seen[n.ID]; dup {
			return nil, &StorageCorruptError{ID: n.ID, Err: errors.New("duplicate id")}
		}
		seen[n.ID] = struct{}{}
		notes = append(notes, n)
	}
	return notes, nil
}

func decodeRecord(item json.RawMessage) (Note, error) {
	if bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
		return Note{}, errors.New("null record")
	}

	var r record
	if err := json.Unmarshal(item, &r); err != nil {
		// Recover the id for the diagnostic when only another field is bad.
		var probe struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(item, &probe)
		return Note{}, &StorageCorruptError{ID: probe.ID, Err: err}
	}
	if r.ID == "" {
		return Note{}, errors.New("missing id")
	}

	createdAt, err := time.Parse(TimeLayout, r.CreatedAt)
	if err != nil {
		return Note{}, &StorageCorruptError{ID: r.ID, Err: fmt.Errorf("invalid createdAt: %w", err)}
	}

	return Note{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: createdAt.UTC(),
		Tags:      SanitizeTags(r.Tags),
	}, nil
}
