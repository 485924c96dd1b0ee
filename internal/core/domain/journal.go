package domain

import (
	"bytes"
	"sort"

	"github.com/goccy/go-json"
)

// JournalEntry is a single user-authored record with free text and a caller-supplied date.
type JournalEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Date      string `json:"date"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"` // Empty until the first update

	// Extra holds fields of a stored entry that this type does not model.
	// They are written back unchanged.
	Extra map[string]json.RawMessage `json:"-"`
}

// journalEntryFields has the JSON layout of JournalEntry without its codec methods.
type journalEntryFields JournalEntry

var journalEntryKeys = []string{"id", "text", "date", "createdAt", "updatedAt"}

// UnmarshalJSON decodes the known fields and keeps any others in Extra.
func (e *JournalEntry) UnmarshalJSON(data []byte) error {
	var fields journalEntryFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, key := range journalEntryKeys {
		delete(all, key)
	}
	fields.Extra = nil
	if len(all) > 0 {
		fields.Extra = all
	}
	*e = JournalEntry(fields)
	return nil
}

// MarshalJSON encodes the known fields followed by Extra in key order.
func (e JournalEntry) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(journalEntryFields(e))
	if err != nil || len(e.Extra) == 0 {
		return data, err
	}

	keys := make([]string, 0, len(e.Extra))
	for key := range e.Extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.Write(data[:len(data)-1])
	for _, key := range keys {
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(e.Extra[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// JournalDocument is the whole persisted collection of entries, read and written as one unit.
// Entries are ordered most-recently-created first.
type JournalDocument struct {
	Entries []JournalEntry `json:"entries"`
}

// NewJournalDocument returns a document with zero entries.
func NewJournalDocument() JournalDocument {
	return JournalDocument{Entries: []JournalEntry{}}
}

// IndexOf returns the position of the entry with the given id, or -1.
func (d JournalDocument) IndexOf(id string) int {
	for i := range d.Entries {
		if d.Entries[i].ID == id {
			return i
		}
	}
	return -1
}

// Prepend inserts the entry at the head of the document.
func (d *JournalDocument) Prepend(entry JournalEntry) {
	d.Entries = append([]JournalEntry{entry}, d.Entries...)
}

// RemoveAt drops the entry at index i, keeping the relative order of the rest.
func (d *JournalDocument) RemoveAt(i int) {
	d.Entries = append(d.Entries[:i:i], d.Entries[i+1:]...)
}
