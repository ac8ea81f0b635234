package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/riftwatch/riot-client/internal/testutil"
)

func TestGetLiveGame_InGame(t *testing.T) {
	mock := testutil.NewMockRiot()
	defer mock.Close()

	path := "/lol/spectator/v5/active-games/by-summoner/p1"
	mock.SetJSON(path, `{"gameId":7001,"gameMode":"CLASSIC","platformId":"EUW1","participants":[{"puuid":"p1","championId":62,"teamId":100}]}`)

	c := testClient(t, mock)
	ctx := context.Background()

	game, err := c.GetLiveGame(ctx, "p1")
	if err != nil {
		t.Fatalf("GetLiveGame failed: %v", err)
	}
	if game == nil || game.GameID != 7001 {
		t.Fatalf("game = %+v, want gameId 7001", game)
	}

	// Second lookup hits the live-game cache.
	if _, err := c.GetLiveGame(ctx, "p1"); err != nil {
		t.Fatalf("cached GetLiveGame failed: %v", err)
	}
	if mock.RequestCount(path) != 1 {
		t.Errorf("upstream calls = %d, want 1", mock.RequestCount(path))
	}
}

func TestGetLiveGame_NotInGame(t *testing.T) {
	mock := testutil.NewMockRiot()
	defer mock.Close()

	path := "/lol/spectator/v5/active-games/by-summoner/p2"
	mock.SetResponse(path, testutil.MockResponse{
		StatusCode: http.StatusNotFound,
		Body:       `{"status":{"message":"Data not found","status_code":404}}`,
	})

	c := testClient(t, mock)
	ctx := context.Background()

	game, err := c.GetLiveGame(ctx, "p2")
	if err != nil {
		t.Fatalf("not-found must be a valid no-game result, got error: %v", err)
	}
	if game != nil {
		t.Fatalf("game = %+v, want nil", game)
	}

	// The absence is cached: no second upstream call.
	if _, err := c.GetLiveGame(ctx, "p2"); err != nil {
		t.Fatalf("cached no-game lookup failed: %v", err)
	}
	if mock.RequestCount(path) != 1 {
		t.Errorf("upstream calls = %d, want 1 (absence cached)", mock.RequestCount(path))
	}
}

func TestGetLiveGame_ErrorNotCachedAsAbsence(t *testing.T) {
	mock := testutil.NewMockRiot()
	defer mock.Close()

	path := "/lol/spectator/v5/active-games/by-summoner/p3"
	mock.SetResponse(path, testutil.MockResponse{StatusCode: http.StatusInternalServerError, Body: `{}`})

	c := testClient(t, mock)
	ctx := context.Background()

	if _, err := c.GetLiveGame(ctx, "p3"); err == nil {
		t.Fatal("expected upstream error")
	}

	// A genuine failure must not be remembered as "no game": the next call
	// goes upstream again.
	if _, err := c.GetLiveGame(ctx, "p3"); err == nil {
		t.Fatal("expected upstream error on second call")
	}
	if mock.RequestCount(path) != 2 {
		t.Errorf("upstream calls = %d, want 2 (errors are never cached as absence)", mock.RequestCount(path))
	}
}

func TestGetLiveGame_AuthErrorPropagates(t *testing.T) {
	mock := testutil.NewMockRiot()
	defer mock.Close()

	path := "/lol/spectator/v5/active-games/by-summoner/p4"
	mock.SetResponse(path, testutil.MockResponse{StatusCode: http.StatusUnauthorized, Body: `{}`})

	c := testClient(t, mock)
	_, err := c.GetLiveGame(context.Background(), "p4")
	if !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("error = %v, want ErrInvalidCredential", err)
	}
}
