package habits

import (
	"path/filepath"
	"testing"
	"time"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) (*cli.Context, func()) {
	gokeyring.MockInit()
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	user := models.User{ID: "7d0f8e7c-6a3f-4e7b-9b53-1f4c8f6f1a01", Name: "ada", CreatedAt: time.Now()}
	if err := store.AddUser(user); err != nil {
		t.Fatalf("failed to add user: %v", err)
	}

	ctx := &cli.Context{
		Store: store,
		Now: func() time.Time {
			return time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)
		},
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, cleanup
}

func addHabit(t *testing.T, ctx *cli.Context, name string) models.Habit {
	t.Helper()
	cmd := &HabitAddCmd{Name: name, Category: "mindfulness", Difficulty: "easy"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("habit add failed: %v", err)
	}
	user, _ := ctx.CurrentUser()
	habit, err := ctx.Store.GetHabitByName(user.ID, name)
	if err != nil {
		t.Fatalf("habit not stored: %v", err)
	}
	return habit
}

func TestHabitAddCmd(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	habit := addHabit(t, ctx, "Meditate")
	if habit.Category != "mindfulness" || !habit.Active {
		t.Errorf("unexpected habit: %+v", habit)
	}

	dup := &HabitAddCmd{Name: "meditate", Category: "mindfulness", Difficulty: "easy"}
	if err := dup.Run(ctx); err == nil {
		t.Error("expected duplicate habit name to be rejected")
	}
}

func TestHabitAddCmd_InvalidCategory(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &HabitAddCmd{Name: "Juggle", Category: "circus", Difficulty: "easy"}
	if err := cmd.Run(ctx); err == nil {
		t.Error("expected invalid category to be rejected")
	}
}

func TestHabitMarkCmd_Toggles(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	habit := addHabit(t, ctx, "Meditate")

	mark := &HabitMarkCmd{Name: "Meditate", Rating: 4, Note: "calm"}
	if err := mark.Run(ctx); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	comp, err := ctx.Store.GetCompletion(habit.ID, "2024-03-10")
	if err != nil {
		t.Fatalf("expected completion for today: %v", err)
	}
	if comp.Rating == nil || *comp.Rating != 4 || comp.Notes != "calm" {
		t.Errorf("unexpected completion: %+v", comp)
	}

	if err := mark.Run(ctx); err != nil {
		t.Fatalf("second mark failed: %v", err)
	}
	if _, err := ctx.Store.GetCompletion(habit.ID, "2024-03-10"); err == nil {
		t.Error("expected second mark to remove the completion")
	}
}

func TestHabitMarkCmd_ByDateAndID(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	habit := addHabit(t, ctx, "Stretch")
	mark := &HabitMarkCmd{Name: habit.ID, Date: "2024-03-08"}
	if err := mark.Run(ctx); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if _, err := ctx.Store.GetCompletion(habit.ID, "2024-03-08"); err != nil {
		t.Errorf("expected completion on 2024-03-08: %v", err)
	}
}

func TestHabitMarkCmd_UnknownHabit(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	mark := &HabitMarkCmd{Name: "Nope"}
	if err := mark.Run(ctx); err == nil {
		t.Error("expected error for unknown habit")
	}
}

func TestHabitReadCommands(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	addHabit(t, ctx, "Meditate")
	for _, day := range []string{"2024-03-08", "2024-03-09", "2024-03-10"} {
		if err := (&HabitMarkCmd{Name: "Meditate", Date: day}).Run(ctx); err != nil {
			t.Fatalf("mark %s failed: %v", day, err)
		}
	}

	tests := []struct {
		name string
		cmd  interface{ Run(*cli.Context) error }
	}{
		{"list", &HabitListCmd{ShowIDs: true}},
		{"today", &HabitTodayCmd{}},
		{"log", &HabitLogCmd{Days: 7}},
		{"log single", &HabitLogCmd{Days: 3, Habit: "Meditate"}},
		{"streak", &HabitStreakCmd{Name: "Meditate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Run(ctx); err != nil {
				t.Errorf("%s failed: %v", tt.name, err)
			}
		})
	}
}

func TestHabitLogCmd_DaysBounds(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	for _, days := range []int{0, 367} {
		if err := (&HabitLogCmd{Days: days}).Run(ctx); err == nil {
			t.Errorf("expected error for --days %d", days)
		}
	}
}

func TestHabitDeleteAndRestore(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	habit := addHabit(t, ctx, "Journal")

	if err := (&HabitDeleteCmd{Name: "Journal"}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	got, err := ctx.Store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("habit row should be kept: %v", err)
	}
	if got.Active {
		t.Error("expected habit to be inactive")
	}

	if err := (&HabitRestoreCmd{Name: "journal"}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	got, _ = ctx.Store.GetHabit(habit.ID)
	if !got.Active {
		t.Error("expected habit to be active again")
	}

	if err := (&HabitRestoreCmd{Name: "Journal"}).Run(ctx); err == nil {
		t.Error("expected restoring an active habit to fail")
	}
}
