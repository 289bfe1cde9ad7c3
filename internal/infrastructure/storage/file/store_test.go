package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gameops/ticket-board/internal/core/domain"
)

var testSeed = Seed{
	AdminUsername:     "123",
	AdminPasswordHash: "$2a$10$fakehashforseedtestsonly",
	AdminRole:         "admin",
	Supervisor:        "qwe123",
}

func TestOpen_SeedsMissingTables(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir, testSeed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	for _, name := range []string{usersFile, playersFile, supervisorsFile, statusesFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("table %s not created: %v", name, err)
		}
	}

	user, err := NewUserRepository(store).FindByUsername(context.Background(), "123")
	if err != nil {
		t.Fatalf("seed admin missing: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Errorf("seed admin role = %q", user.Role)
	}

	ok, err := NewSupervisorRepository(store).Exists(context.Background(), "qwe123")
	if err != nil || !ok {
		t.Errorf("seed supervisor missing: ok=%v err=%v", ok, err)
	}
}

func TestOpen_DoesNotReseedExistingTables(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir, testSeed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := NewSupervisorRepository(store).Add(context.Background(), "newsup"); err != nil {
		t.Fatalf("add: %v", err)
	}

	// A second open with a different seed must keep the stored data.
	reopened, err := Open(dir, Seed{AdminUsername: "other", Supervisor: "other"})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	names, err := NewSupervisorRepository(reopened).List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 2 || names[0] != "qwe123" || names[1] != "newsup" {
		t.Fatalf("unexpected supervisors after reopen: %v", names)
	}
	if _, err := NewUserRepository(reopened).FindByUsername(context.Background(), "other"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatal("second seed was applied over existing data")
	}
}

func TestPlayerRepository_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir, testSeed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	repo := NewPlayerRepository(store)
	ctx := context.Background()

	player := &domain.Player{
		SteamID:    "STEAM_1:0:12345",
		Name:       "Alice",
		Discord:    "alice#1",
		Supervisor: "qwe123",
	}
	if err := repo.Create(ctx, player); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, player); !errors.Is(err, domain.ErrPlayerExists) {
		t.Fatalf("expected ErrPlayerExists, got %v", err)
	}

	// Survives a reopen.
	reopened, err := Open(dir, testSeed)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := NewPlayerRepository(reopened).FindBySteamID(ctx, "STEAM_1:0:12345")
	if err != nil {
		t.Fatalf("find after reopen: %v", err)
	}
	if *got != *player {
		t.Fatalf("got %+v, want %+v", got, player)
	}
}

func TestPlayerRepository_ListFiltersBySupervisor(t *testing.T) {
	store, err := Open(t.TempDir(), testSeed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	repo := NewPlayerRepository(store)
	ctx := context.Background()

	for _, p := range []*domain.Player{
		{SteamID: "STEAM_1:0:1", Name: "A", Discord: "a#1", Supervisor: "qwe123"},
		{SteamID: "STEAM_1:0:2", Name: "B", Discord: "b#2", Supervisor: "other"},
	} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create %s: %v", p.SteamID, err)
		}
	}

	mine, err := repo.List(ctx, "qwe123")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].SteamID != "STEAM_1:0:1" {
		t.Fatalf("filtered list = %+v", mine)
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 players, got %d", len(all))
	}
}

func TestStatusRepository_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir, testSeed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	repo := NewStatusRepository(store)
	ctx := context.Background()

	status := &domain.Status{
		SteamID:   "STEAM_1:0:1",
		Kind:      domain.StatusVacation,
		EndDate:   "2026-09-15",
		ReturnDay: domain.DaySunday,
	}
	if err := repo.Set(ctx, status); err != nil {
		t.Fatalf("set: %v", err)
	}

	reopened, err := Open(dir, testSeed)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := NewStatusRepository(reopened).Find(ctx, "STEAM_1:0:1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if *got != *status {
		t.Fatalf("got %+v, want %+v", got, status)
	}
}

func TestStatusRepository_DeleteBatch(t *testing.T) {
	store, err := Open(t.TempDir(), testSeed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	repo := NewStatusRepository(store)
	ctx := context.Background()

	for _, id := range []string{"STEAM_1:0:1", "STEAM_1:0:2", "STEAM_1:0:3"} {
		if err := repo.Set(ctx, &domain.Status{SteamID: id, Kind: domain.StatusFreeze, EndDate: "2026-09-15"}); err != nil {
			t.Fatalf("set %s: %v", id, err)
		}
	}

	if err := repo.DeleteBatch(ctx, []string{"STEAM_1:0:1", "STEAM_1:0:3", "STEAM_1:0:99"}); err != nil {
		t.Fatalf("delete batch: %v", err)
	}
	left, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(left) != 1 || left[0].SteamID != "STEAM_1:0:2" {
		t.Fatalf("unexpected remainder: %+v", left)
	}
}

func TestSupervisorRepository_KeepsOrder(t *testing.T) {
	store, err := Open(t.TempDir(), testSeed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	repo := NewSupervisorRepository(store)
	ctx := context.Background()

	for _, name := range []string{"bravo", "alpha"} {
		if err := repo.Add(ctx, name); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	if err := repo.Remove(ctx, "bravo"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	names, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// Registration order, not sorted.
	if len(names) != 2 || names[0] != "qwe123" || names[1] != "alpha" {
		t.Fatalf("unexpected order: %v", names)
	}
}

func TestUserRepository_DeleteRestoresOnSaveFailure(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir, testSeed)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	repo := NewUserRepository(store)
	ctx := context.Background()

	// Make the data dir unwritable so the rewrite fails.
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	if err := repo.Delete(ctx, "123"); err == nil {
		t.Skip("filesystem ignores directory permissions")
	}

	// The in-memory table must have rolled back.
	if _, err := repo.FindByUsername(ctx, "123"); err != nil {
		t.Fatalf("user vanished after failed delete: %v", err)
	}
}
