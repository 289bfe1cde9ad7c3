package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gameops/ticket-board/internal/core/domain"
	"github.com/gameops/ticket-board/internal/core/ports"
)

func TestRosterService_AddPlayer_NormalizesID(t *testing.T) {
	players := newStubPlayerRepo()
	supervisors := &stubSupervisorRepo{names: []string{"qwe123"}}
	svc := NewRosterService(players, supervisors, false, false, zerolog.Nop())

	p, err := svc.AddPlayer(context.Background(), ports.AddPlayerInput{
		SteamID:    "76561197960290418",
		Name:       "Alice",
		Discord:    "alice#1",
		Supervisor: "qwe123",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.SteamID != "STEAM_1:0:12345" {
		t.Fatalf("expected canonical id, got %q", p.SteamID)
	}
	if _, ok := players.players["STEAM_1:0:12345"]; !ok {
		t.Fatal("player not stored under canonical id")
	}
}

func TestRosterService_AddPlayer_Duplicate(t *testing.T) {
	players := newStubPlayerRepo()
	supervisors := &stubSupervisorRepo{names: []string{"qwe123"}}
	svc := NewRosterService(players, supervisors, false, false, zerolog.Nop())

	input := ports.AddPlayerInput{
		SteamID:    "STEAM_1:0:12345",
		Name:       "Alice",
		Discord:    "alice#1",
		Supervisor: "qwe123",
	}
	if _, err := svc.AddPlayer(context.Background(), input); err != nil {
		t.Fatalf("first add: %v", err)
	}

	// Same identity under a different encoding.
	input.SteamID = "76561197960290418"
	input.Name = "Impostor"
	if _, err := svc.AddPlayer(context.Background(), input); !errors.Is(err, domain.ErrPlayerExists) {
		t.Fatalf("expected ErrPlayerExists, got %v", err)
	}
	if players.players["STEAM_1:0:12345"].Name != "Alice" {
		t.Fatal("duplicate add modified the stored player")
	}
}

func TestRosterService_AddPlayer_MissingFields(t *testing.T) {
	svc := NewRosterService(newStubPlayerRepo(), &stubSupervisorRepo{}, false, false, zerolog.Nop())

	_, err := svc.AddPlayer(context.Background(), ports.AddPlayerInput{SteamID: "STEAM_1:0:1"})
	if !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestRosterService_AddPlayer_UnknownSupervisor(t *testing.T) {
	svc := NewRosterService(newStubPlayerRepo(), &stubSupervisorRepo{}, false, false, zerolog.Nop())

	_, err := svc.AddPlayer(context.Background(), ports.AddPlayerInput{
		SteamID:    "STEAM_1:0:1",
		Name:       "Bob",
		Discord:    "bob#2",
		Supervisor: "nobody",
	})
	if !errors.Is(err, domain.ErrUnknownSupervisor) {
		t.Fatalf("expected ErrUnknownSupervisor, got %v", err)
	}
}

func TestRosterService_AddPlayer_UnknownSupervisorAllowed(t *testing.T) {
	players := newStubPlayerRepo()
	svc := NewRosterService(players, &stubSupervisorRepo{}, false, true, zerolog.Nop())

	if _, err := svc.AddPlayer(context.Background(), ports.AddPlayerInput{
		SteamID:    "STEAM_1:0:1",
		Name:       "Bob",
		Discord:    "bob#2",
		Supervisor: "nobody",
	}); err != nil {
		t.Fatalf("permissive mode rejected the player: %v", err)
	}
}

func TestRosterService_RemovePlayer_AnyEncoding(t *testing.T) {
	players := newStubPlayerRepo()
	players.players["STEAM_1:0:12345"] = &domain.Player{SteamID: "STEAM_1:0:12345"}
	svc := NewRosterService(players, &stubSupervisorRepo{}, false, false, zerolog.Nop())

	if err := svc.RemovePlayer(context.Background(), "76561197960290418"); err != nil {
		t.Fatalf("remove by steamid64: %v", err)
	}
	if len(players.players) != 0 {
		t.Fatal("player not removed")
	}
}

func TestRosterService_RemovePlayer_NotFound(t *testing.T) {
	svc := NewRosterService(newStubPlayerRepo(), &stubSupervisorRepo{}, false, false, zerolog.Nop())

	if err := svc.RemovePlayer(context.Background(), "STEAM_1:0:99"); !errors.Is(err, domain.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}
