// Package storage persists orbit collections to a kv.Store. Every call
// reports through a Result and never returns an error to the caller: a load
// that cannot read or decode its key hands back an empty collection.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/orbit/internal/constants"
	apperrors "github.com/julianstephens/orbit/internal/errors"
	"github.com/julianstephens/orbit/internal/kv"
	"github.com/julianstephens/orbit/internal/logger"
	"github.com/julianstephens/orbit/internal/models"
)

// AllKeys lists every key the repository owns.
var AllKeys = []string{
	constants.KeyHistory,
	constants.KeyTasks,
	constants.KeyMoods,
	constants.KeyJournal,
	constants.KeyBreathing,
}

type Repository struct {
	store kv.Store
	loc   *time.Location
}

// NewRepository binds a store and the location used to rebuild calendar days.
func NewRepository(store kv.Store, loc *time.Location) *Repository {
	if loc == nil {
		loc = time.Local
	}
	return &Repository{store: store, loc: loc}
}

func (r *Repository) Location() *time.Location { return r.loc }

func (r *Repository) SaveHistory(records []models.DailyRecord) Result {
	wire := make([]dailyRecordWire, 0, len(records))
	for _, rec := range records {
		wire = append(wire, encodeRecord(rec))
	}
	return saveAll(r, constants.KeyHistory, wire)
}

// LoadHistory restores the rollup in stored order. Records with an unusable
// date or counters are skipped, as are later duplicates of a day.
func (r *Repository) LoadHistory() ([]models.DailyRecord, Result) {
	raw, res := loadAll[dailyRecordWire](r, constants.KeyHistory)
	out := make([]models.DailyRecord, 0, len(raw))
	seen := make(map[int64]struct{}, len(raw))
	for _, w := range raw {
		rec, err := decodeRecord(w, r.loc)
		if err != nil {
			logger.Debug("Skipping history record", "date", w.Date, "error", err)
			res.Skipped++
			continue
		}
		if _, dup := seen[rec.Date.Unix()]; dup {
			res.Skipped++
			continue
		}
		seen[rec.Date.Unix()] = struct{}{}
		out = append(out, rec)
	}
	return out, finishLoad(constants.KeyHistory, res)
}

func (r *Repository) SaveTasks(tasks []models.Task) Result {
	wire := make([]taskWire, 0, len(tasks))
	for _, t := range tasks {
		wire = append(wire, encodeTask(t))
	}
	return saveAll(r, constants.KeyTasks, wire)
}

func (r *Repository) LoadTasks() ([]models.Task, Result) {
	raw, res := loadAll[taskWire](r, constants.KeyTasks)
	out := make([]models.Task, 0, len(raw))
	for _, w := range raw {
		t, err := decodeTask(w, r.loc)
		if err != nil {
			res.Skipped++
			continue
		}
		out = append(out, t)
	}
	return out, finishLoad(constants.KeyTasks, res)
}

func (r *Repository) SaveMoods(entries []models.MoodEntry) Result {
	wire := make([]moodEntryWire, 0, len(entries))
	for _, m := range entries {
		wire = append(wire, encodeMoodEntry(m))
	}
	return saveAll(r, constants.KeyMoods, wire)
}

func (r *Repository) LoadMoods() ([]models.MoodEntry, Result) {
	raw, res := loadAll[moodEntryWire](r, constants.KeyMoods)
	out := make([]models.MoodEntry, 0, len(raw))
	for _, w := range raw {
		m, err := decodeMoodEntry(w, r.loc)
		if err != nil {
			res.Skipped++
			continue
		}
		out = append(out, m)
	}
	return out, finishLoad(constants.KeyMoods, res)
}

func (r *Repository) SaveJournal(entries []models.JournalEntry) Result {
	wire := make([]journalWire, 0, len(entries))
	for _, j := range entries {
		wire = append(wire, encodeJournal(j))
	}
	return saveAll(r, constants.KeyJournal, wire)
}

func (r *Repository) LoadJournal() ([]models.JournalEntry, Result) {
	raw, res := loadAll[journalWire](r, constants.KeyJournal)
	out := make([]models.JournalEntry, 0, len(raw))
	for _, w := range raw {
		j, err := decodeJournal(w, r.loc)
		if err != nil {
			res.Skipped++
			continue
		}
		out = append(out, j)
	}
	return out, finishLoad(constants.KeyJournal, res)
}

func (r *Repository) SaveBreathing(sessions []models.BreathingSession) Result {
	wire := make([]breathingWire, 0, len(sessions))
	for _, b := range sessions {
		wire = append(wire, encodeBreathing(b))
	}
	return saveAll(r, constants.KeyBreathing, wire)
}

func (r *Repository) LoadBreathing() ([]models.BreathingSession, Result) {
	raw, res := loadAll[breathingWire](r, constants.KeyBreathing)
	out := make([]models.BreathingSession, 0, len(raw))
	for _, w := range raw {
		b, err := decodeBreathing(w, r.loc)
		if err != nil {
			res.Skipped++
			continue
		}
		out = append(out, b)
	}
	return out, finishLoad(constants.KeyBreathing, res)
}

// Clear removes every collection.
func (r *Repository) Clear() Result {
	if err := r.store.Delete(AllKeys...); err != nil {
		err = fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
		logger.Warn("Failed to clear storage", "error", err)
		return failed("clear failed", err)
	}
	return ok()
}

func saveAll[W any](r *Repository, key string, items []W) Result {
	if items == nil {
		items = []W{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		err = fmt.Errorf("%w: %v", apperrors.ErrCorruptData, err)
		logger.Warn("Failed to encode collection", "key", key, "error", err)
		return failed("encode failed", err)
	}
	if err := r.store.Set(key, string(data)); err != nil {
		err = fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
		logger.Warn("Failed to save collection", "key", key, "error", err)
		return failed("write failed", err)
	}
	return ok()
}

// loadAll decodes the array stored at key element by element so one bad
// entry does not discard its neighbours.
func loadAll[W any](r *Repository, key string) ([]W, Result) {
	value, found, err := r.store.Get(key)
	if err != nil {
		err = fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
		return nil, failed("read failed", err)
	}
	if !found || value == "" {
		return nil, empty("no value stored")
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(value), &elems); err != nil {
		err = fmt.Errorf("%w: %v", apperrors.ErrCorruptData, err)
		return nil, failed("unparsable value", err)
	}

	res := ok()
	out := make([]W, 0, len(elems))
	for _, elem := range elems {
		var w W
		if err := json.Unmarshal(elem, &w); err != nil {
			res.Skipped++
			continue
		}
		out = append(out, w)
	}
	return out, res
}

func finishLoad(key string, res Result) Result {
	switch {
	case res.Failed():
		logger.Warn("Failed to load collection", "key", key, "reason", res.Reason, "error", res.Err)
	case res.Skipped > 0:
		logger.Warn("Skipped unreadable entries", "key", key, "skipped", res.Skipped)
	}
	return res
}
