package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// mistakesRecord is the name of the row in records holding the mistake ids.
const mistakesRecord = "mistakes"

// MistakeRepo is the durable set of kana entry ids the learner has missed.
// Membership lives in memory and is written back to the database after every
// mutation. A failed write leaves membership intact — durability degrades,
// the session never does.
type MistakeRepo struct {
	db    *sql.DB
	order []string
	set   map[string]bool
}

// loadMistakes reads the persisted id list. A missing record or corrupt
// JSON yields an empty set, never an error.
func loadMistakes(db *sql.DB) *MistakeRepo {
	r := &MistakeRepo{db: db, set: make(map[string]bool)}

	var raw string
	err := db.QueryRow(`SELECT value FROM records WHERE name = ?`, mistakesRecord).Scan(&raw)
	if err != nil {
		return r
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return r
	}
	for _, id := range ids {
		if id == "" || r.set[id] {
			continue
		}
		r.set[id] = true
		r.order = append(r.order, id)
	}
	return r
}

// Contains reports whether id is in the set.
func (r *MistakeRepo) Contains(id string) bool { return r.set[id] }

// Len returns the number of ids in the set.
func (r *MistakeRepo) Len() int { return len(r.order) }

// All returns the ids in insertion order.
func (r *MistakeRepo) All() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Add inserts id into the set. A no-op for ids already present. The returned
// error reports persistence failure only.
func (r *MistakeRepo) Add(id string) error {
	if r.set[id] {
		return nil
	}
	r.set[id] = true
	r.order = append(r.order, id)
	return r.save()
}

// Remove deletes id from the set. A no-op for absent ids.
func (r *MistakeRepo) Remove(id string) error {
	if !r.set[id] {
		return nil
	}
	delete(r.set, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return r.save()
}

// Clear empties the set.
func (r *MistakeRepo) Clear() error {
	if len(r.order) == 0 {
		return nil
	}
	r.set = make(map[string]bool)
	r.order = nil
	return r.save()
}

func (r *MistakeRepo) save() error {
	ids := r.order
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal mistakes: %w", err)
	}
	_, err = r.db.Exec(
		`INSERT INTO records (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		mistakesRecord, string(raw))
	if err != nil {
		return fmt.Errorf("save mistakes: %w", err)
	}
	return nil
}
