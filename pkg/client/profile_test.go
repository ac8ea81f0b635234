package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/riftwatch/riot-client/internal/testutil"
)

func TestGetPlayerProfile(t *testing.T) {
	mock := testutil.NewMockRiot()
	defer mock.Close()

	mock.SetJSON("/riot/account/v1/accounts/by-riot-id/Caps/EUW",
		`{"puuid":"p-caps","gameName":"Caps","tagLine":"EUW"}`)
	mock.SetJSON("/lol/summoner/v4/summoners/by-puuid/p-caps",
		`{"id":"s-caps","puuid":"p-caps","summonerLevel":512}`)
	mock.SetJSON("/lol/league/v4/entries/by-puuid/p-caps",
		`[{"queueType":"RANKED_SOLO_5x5","tier":"CHALLENGER","rank":"I","leaguePoints":1024,"wins":300,"losses":200}]`)

	c := testClient(t, mock)
	profile, err := c.GetPlayerProfile(context.Background(), "Caps", "EUW")
	if err != nil {
		t.Fatalf("GetPlayerProfile failed: %v", err)
	}

	if profile.Account.PUUID != "p-caps" {
		t.Errorf("account puuid = %s, want p-caps", profile.Account.PUUID)
	}
	if profile.Summoner.SummonerLevel != 512 {
		t.Errorf("summoner level = %d, want 512", profile.Summoner.SummonerLevel)
	}
	if len(profile.Ranked) != 1 || profile.Ranked[0].Tier != "CHALLENGER" {
		t.Errorf("ranked = %+v, want one CHALLENGER entry", profile.Ranked)
	}
}

func TestGetPlayerProfile_IdentityFailureShortCircuits(t *testing.T) {
	mock := testutil.NewMockRiot()
	defer mock.Close()

	path := "/riot/account/v1/accounts/by-riot-id/Ghost/NA"
	mock.SetResponse(path, testutil.MockResponse{StatusCode: http.StatusNotFound, Body: `{}`})

	c := testClient(t, mock)
	_, err := c.GetPlayerProfile(context.Background(), "Ghost", "NA")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if mock.TotalRequests() != 1 {
		t.Errorf("total requests = %d, want 1 (dependent fetches must not run)", mock.TotalRequests())
	}
}

func TestGetPlayerProfile_DependentFailurePropagates(t *testing.T) {
	mock := testutil.NewMockRiot()
	defer mock.Close()

	mock.SetJSON("/riot/account/v1/accounts/by-riot-id/Jankos/EUW",
		`{"puuid":"p-j","gameName":"Jankos","tagLine":"EUW"}`)
	mock.SetJSON("/lol/summoner/v4/summoners/by-puuid/p-j", `{"id":"s-j","puuid":"p-j"}`)
	mock.SetResponse("/lol/league/v4/entries/by-puuid/p-j",
		testutil.MockResponse{StatusCode: http.StatusInternalServerError, Body: `{}`})

	c := testClient(t, mock)
	_, err := c.GetPlayerProfile(context.Background(), "Jankos", "EUW")
	if err == nil {
		t.Fatal("expected dependent fetch failure to propagate")
	}
}
