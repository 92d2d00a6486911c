package storage

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/orbit/internal/constants"
	apperrors "github.com/julianstephens/orbit/internal/errors"
	"github.com/julianstephens/orbit/internal/kv"
	"github.com/julianstephens/orbit/internal/models"
)

type brokenStore struct{}

var errBroken = errors.New("quota exceeded")

func (brokenStore) Get(string) (string, bool, error) { return "", false, errBroken }
func (brokenStore) Set(string, string) error         { return errBroken }
func (brokenStore) Delete(...string) error           { return errBroken }
func (brokenStore) Close() error                     { return nil }
func (brokenStore) Path() string                     { return "" }

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Skipf("timezone %s unavailable: %v", name, err)
	}
	return loc
}

func sampleHistory(loc *time.Location) []models.DailyRecord {
	return []models.DailyRecord{
		{
			Date:             time.Date(2026, 10, 14, 0, 0, 0, 0, loc),
			Mood:             &models.Mood{Emoji: "😊", Label: models.MoodHappy, Confidence: 0.9},
			TasksCompleted:   1,
			TasksTotal:       2,
			Highlights:       []string{"Mood: Happy 😊", "Completed: Write report"},
			TaskIDs:          []string{"a", "b"},
			CompletedTaskIDs: []string{"a"},
		},
		{
			Date:       time.Date(2026, 10, 12, 0, 0, 0, 0, loc),
			TasksTotal: 0,
		},
	}
}

func TestHistoryRoundTripIsIdempotent(t *testing.T) {
	loc := mustLoc(t, "America/New_York")
	store := kv.NewMemoryStore()
	repo := NewRepository(store, loc)

	if res := repo.SaveHistory(sampleHistory(loc)); !res.OK() {
		t.Fatalf("SaveHistory() = %+v", res)
	}
	first, _, _ := store.Get(constants.KeyHistory)

	for i := 0; i < 2; i++ {
		records, res := repo.LoadHistory()
		if !res.OK() {
			t.Fatalf("LoadHistory() = %+v", res)
		}
		if res := repo.SaveHistory(records); !res.OK() {
			t.Fatalf("SaveHistory() = %+v", res)
		}
	}

	second, _, _ := store.Get(constants.KeyHistory)
	if first != second {
		t.Errorf("save(load()) changed output:\n%s\n%s", first, second)
	}
	if !strings.Contains(first, `"highlights":[]`) {
		t.Errorf("empty highlights should encode as an array: %s", first)
	}
}

func TestLoadHistoryRestoresCalendarDays(t *testing.T) {
	loc := mustLoc(t, "America/New_York")
	repo := NewRepository(kv.NewMemoryStore(), loc)
	repo.SaveHistory(sampleHistory(loc))

	records, res := repo.LoadHistory()
	if !res.OK() || len(records) != 2 {
		t.Fatalf("LoadHistory() = %d records, %+v", len(records), res)
	}

	want := time.Date(2026, 10, 14, 0, 0, 0, 0, loc)
	got := records[0]
	if !got.Date.Equal(want) || got.Date.Location() != loc {
		t.Errorf("Date = %v (%v), want %v", got.Date, got.Date.Location(), want)
	}
	if got.Mood == nil || got.Mood.Label != models.MoodHappy || got.Mood.Confidence != 0.9 {
		t.Errorf("Mood = %+v", got.Mood)
	}
	if len(got.CompletedTaskIDs) != 1 || got.CompletedTaskIDs[0] != "a" {
		t.Errorf("CompletedTaskIDs = %v", got.CompletedTaskIDs)
	}
	if records[1].Highlights == nil {
		t.Error("Highlights should never decode as nil")
	}
}

func TestLoadHistoryKeepsDayAcrossTimezones(t *testing.T) {
	tokyo := mustLoc(t, "Asia/Tokyo")
	ny := mustLoc(t, "America/New_York")
	store := kv.NewMemoryStore()

	NewRepository(store, tokyo).SaveHistory([]models.DailyRecord{
		{Date: time.Date(2026, 10, 14, 0, 0, 0, 0, tokyo)},
	})

	records, _ := NewRepository(store, ny).LoadHistory()
	if len(records) != 1 {
		t.Fatalf("got %d records", len(records))
	}
	if want := time.Date(2026, 10, 14, 0, 0, 0, 0, ny); !records[0].Date.Equal(want) {
		t.Errorf("Date = %v, want %v", records[0].Date, want)
	}
}

func TestLoadHistoryDayOfStoredInstant(t *testing.T) {
	tokyo := mustLoc(t, "Asia/Tokyo")
	ny := mustLoc(t, "America/New_York")

	tests := []struct {
		name   string
		stored string
		loc    *time.Location
		want   time.Time
	}{
		{
			name:   "utc instant after tokyo midnight",
			stored: "2026-10-13T15:00:00.000Z",
			loc:    tokyo,
			want:   time.Date(2026, 10, 14, 0, 0, 0, 0, tokyo),
		},
		{
			name:   "utc instant before tokyo midnight",
			stored: "2026-10-13T14:59:59Z",
			loc:    tokyo,
			want:   time.Date(2026, 10, 13, 0, 0, 0, 0, tokyo),
		},
		{
			name:   "midnight in its own offset keeps its date",
			stored: "2026-10-14T00:00:00+09:00",
			loc:    ny,
			want:   time.Date(2026, 10, 14, 0, 0, 0, 0, ny),
		},
		{
			name:   "bare date",
			stored: "2026-10-14",
			loc:    tokyo,
			want:   time.Date(2026, 10, 14, 0, 0, 0, 0, tokyo),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := kv.NewMemoryStore()
			blob := `[{"date":"` + tt.stored + `","tasksCompleted":0,"tasksTotal":0,"highlights":[]}]`
			if err := store.Set(constants.KeyHistory, blob); err != nil {
				t.Fatal(err)
			}

			records, res := NewRepository(store, tt.loc).LoadHistory()
			if !res.OK() || len(records) != 1 {
				t.Fatalf("LoadHistory() = %d records, %s", len(records), res.Status)
			}
			if !records[0].Date.Equal(tt.want) {
				t.Errorf("Date = %v, want %v", records[0].Date, tt.want)
			}
		})
	}
}

func TestLoadResults(t *testing.T) {
	tests := []struct {
		name        string
		stored      *string
		wantStatus  Status
		wantLen     int
		wantSkipped int
		wantErr     error
	}{
		{name: "absent", stored: nil, wantStatus: StatusEmpty},
		{name: "corrupt", stored: strptr("{not json"), wantStatus: StatusFailed, wantErr: apperrors.ErrCorruptData},
		{name: "object instead of array", stored: strptr(`{"date":"x"}`), wantStatus: StatusFailed, wantErr: apperrors.ErrCorruptData},
		{name: "empty array", stored: strptr(`[]`), wantStatus: StatusOK},
		{
			name:        "bad date skipped",
			stored:      strptr(`[{"date":"yesterday","tasksCompleted":0,"tasksTotal":0,"highlights":[]},{"date":"2026-10-14","tasksCompleted":1,"tasksTotal":1,"highlights":["Completed: x"]}]`),
			wantStatus:  StatusOK,
			wantLen:     1,
			wantSkipped: 1,
		},
		{
			name:        "invalid counters skipped",
			stored:      strptr(`[{"date":"2026-10-14","tasksCompleted":3,"tasksTotal":1,"highlights":[]}]`),
			wantStatus:  StatusOK,
			wantSkipped: 1,
		},
		{
			name:        "duplicate day skipped",
			stored:      strptr(`[{"date":"2026-10-14","tasksCompleted":0,"tasksTotal":1,"highlights":[]},{"date":"2026-10-14T00:00:00Z","tasksCompleted":0,"tasksTotal":0,"highlights":[]}]`),
			wantStatus:  StatusOK,
			wantLen:     1,
			wantSkipped: 1,
		},
		{
			name:        "wrong element type skipped",
			stored:      strptr(`[42,{"date":"2026-10-14","tasksCompleted":0,"tasksTotal":0,"highlights":null}]`),
			wantStatus:  StatusOK,
			wantLen:     1,
			wantSkipped: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := kv.NewMemoryStore()
			if tt.stored != nil {
				store.Set(constants.KeyHistory, *tt.stored)
			}
			records, res := NewRepository(store, time.UTC).LoadHistory()

			if res.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v (%+v)", res.Status, tt.wantStatus, res)
			}
			if records == nil {
				t.Error("LoadHistory() must return a usable slice")
			}
			if len(records) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(records), tt.wantLen)
			}
			if res.Skipped != tt.wantSkipped {
				t.Errorf("Skipped = %d, want %d", res.Skipped, tt.wantSkipped)
			}
			if tt.wantErr != nil && !errors.Is(res.Err, tt.wantErr) {
				t.Errorf("Err = %v, want %v", res.Err, tt.wantErr)
			}
		})
	}
}

func TestBrokenStoreNeverErrors(t *testing.T) {
	repo := NewRepository(brokenStore{}, time.UTC)

	if res := repo.SaveHistory(sampleHistory(time.UTC)); !res.Failed() || !errors.Is(res.Err, apperrors.ErrStorageUnavailable) {
		t.Errorf("SaveHistory() = %+v, want failed storage unavailable", res)
	}
	records, res := repo.LoadHistory()
	if !res.Failed() || len(records) != 0 || records == nil {
		t.Errorf("LoadHistory() = %v, %+v", records, res)
	}
	if res := repo.Clear(); !res.Failed() {
		t.Errorf("Clear() = %+v, want failed", res)
	}
}

func TestCollectionsRoundTrip(t *testing.T) {
	loc := mustLoc(t, "Europe/Berlin")
	repo := NewRepository(kv.NewMemoryStore(), loc)
	at := time.Date(2026, 10, 14, 9, 30, 0, 0, loc)
	due := time.Date(2026, 10, 15, 0, 0, 0, 0, loc)

	tasks := []models.Task{{
		ID: "t1", Title: "Call mom", Category: "personal", Priority: models.PriorityHigh,
		DueDate: &due, DueTime: "18:00", IsRecurring: true, Recurrence: models.RecurrenceWeekly,
		Completed: true, CreatedAt: at,
	}}
	if res := repo.SaveTasks(tasks); !res.OK() {
		t.Fatalf("SaveTasks() = %+v", res)
	}
	gotTasks, res := repo.LoadTasks()
	if !res.OK() || len(gotTasks) != 1 {
		t.Fatalf("LoadTasks() = %v, %+v", gotTasks, res)
	}
	if g := gotTasks[0]; !g.CreatedAt.Equal(at) || g.DueDate == nil || !g.DueDate.Equal(due) || g.Recurrence != models.RecurrenceWeekly || !g.Completed {
		t.Errorf("task = %+v", g)
	}

	moods := []models.MoodEntry{{ID: "m1", Emoji: "😌", Label: models.MoodCalm, Confidence: 0.4, Timestamp: at, Context: "after walk"}}
	repo.SaveMoods(moods)
	gotMoods, res := repo.LoadMoods()
	if !res.OK() || len(gotMoods) != 1 || gotMoods[0] != moods[0] {
		t.Errorf("LoadMoods() = %+v, %+v", gotMoods, res)
	}

	journal := []models.JournalEntry{{ID: "j1", Text: "good day", WordCount: 2, CreatedAt: at}}
	repo.SaveJournal(journal)
	gotJournal, _ := repo.LoadJournal()
	if len(gotJournal) != 1 || gotJournal[0] != journal[0] {
		t.Errorf("LoadJournal() = %+v", gotJournal)
	}

	sessions := []models.BreathingSession{{ID: "b1", Exercise: "box", Cycles: 4, Seconds: 64, CompletedAt: at}}
	repo.SaveBreathing(sessions)
	gotSessions, _ := repo.LoadBreathing()
	if len(gotSessions) != 1 || gotSessions[0] != sessions[0] {
		t.Errorf("LoadBreathing() = %+v", gotSessions)
	}
}

func TestClearEmptiesEveryCollection(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore(), time.UTC)
	repo.SaveHistory(sampleHistory(time.UTC))
	repo.SaveMoods([]models.MoodEntry{{ID: "m", Label: models.MoodSad, Timestamp: time.Now()}})

	if res := repo.Clear(); !res.OK() {
		t.Fatalf("Clear() = %+v", res)
	}
	if records, res := repo.LoadHistory(); len(records) != 0 || res.Status != StatusEmpty {
		t.Errorf("LoadHistory() after Clear = %v, %+v", records, res)
	}
	if moods, res := repo.LoadMoods(); len(moods) != 0 || res.Status != StatusEmpty {
		t.Errorf("LoadMoods() after Clear = %v, %+v", moods, res)
	}
}

func strptr(s string) *string { return &s }
