package client

// AccountDTO is the account-v1 identity record.
type AccountDTO struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// SummonerDTO is the summoner-v4 record.
type SummonerDTO struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	PUUID         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int64  `json:"summonerLevel"`
}

// LeagueEntryDTO is one ranked queue entry from league-v4.
type LeagueEntryDTO struct {
	LeagueID     string `json:"leagueId"`
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	PUUID        string `json:"puuid"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
	Veteran      bool   `json:"veteran"`
	FreshBlood   bool   `json:"freshBlood"`
	Inactive     bool   `json:"inactive"`
}

// ChampionMasteryDTO is one champion mastery record.
type ChampionMasteryDTO struct {
	PUUID                        string `json:"puuid"`
	ChampionID                   int    `json:"championId"`
	ChampionLevel                int    `json:"championLevel"`
	ChampionPoints               int    `json:"championPoints"`
	LastPlayTime                 int64  `json:"lastPlayTime"`
	ChampionPointsSinceLastLevel int64  `json:"championPointsSinceLastLevel"`
	ChampionPointsUntilNextLevel int64  `json:"championPointsUntilNextLevel"`
	ChestGranted                 bool   `json:"chestGranted"`
	TokensEarned                 int    `json:"tokensEarned"`
}

// MatchDTO is a completed match from match-v5.
type MatchDTO struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata identifies a match and its participants.
type MatchMetadata struct {
	DataVersion  string   `json:"dataVersion"`
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

// MatchInfo holds the match-level details.
type MatchInfo struct {
	GameCreation       int64            `json:"gameCreation"`
	GameDuration       int64            `json:"gameDuration"`
	GameEndTimestamp   int64            `json:"gameEndTimestamp"`
	GameMode           string           `json:"gameMode"`
	GameType           string           `json:"gameType"`
	GameVersion        string           `json:"gameVersion"`
	MapID              int              `json:"mapId"`
	QueueID            int              `json:"queueId"`
	PlatformID         string           `json:"platformId"`
	Participants       []ParticipantDTO `json:"participants"`
}

// ParticipantDTO is one player's result within a match.
type ParticipantDTO struct {
	PUUID          string `json:"puuid"`
	RiotIDGameName string `json:"riotIdGameName"`
	RiotIDTagline  string `json:"riotIdTagline"`
	ChampionID     int    `json:"championId"`
	ChampionName   string `json:"championName"`
	TeamID         int    `json:"teamId"`
	TeamPosition   string `json:"teamPosition"`
	Kills          int    `json:"kills"`
	Deaths         int    `json:"deaths"`
	Assists        int    `json:"assists"`
	GoldEarned     int    `json:"goldEarned"`
	TotalDamage    int    `json:"totalDamageDealtToChampions"`
	VisionScore    int    `json:"visionScore"`
	Win            bool   `json:"win"`
	Item0          int    `json:"item0"`
	Item1          int    `json:"item1"`
	Item2          int    `json:"item2"`
	Item3          int    `json:"item3"`
	Item4          int    `json:"item4"`
	Item5          int    `json:"item5"`
	Item6          int    `json:"item6"`
	Summoner1ID    int    `json:"summoner1Id"`
	Summoner2ID    int    `json:"summoner2Id"`
}

// TimelineDTO is the minute-by-minute match timeline from match-v5.
type TimelineDTO struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     TimelineInfo  `json:"info"`
}

// TimelineInfo holds the timeline frames.
type TimelineInfo struct {
	FrameInterval int64           `json:"frameInterval"`
	Frames        []TimelineFrame `json:"frames"`
}

// TimelineFrame is one timeline sample.
type TimelineFrame struct {
	Timestamp int64           `json:"timestamp"`
	Events    []TimelineEvent `json:"events"`
}

// TimelineEvent is one discrete event within a frame.
type TimelineEvent struct {
	Type          string `json:"type"`
	Timestamp     int64  `json:"timestamp"`
	ParticipantID int    `json:"participantId"`
	KillerID      int    `json:"killerId"`
	VictimID      int    `json:"victimId"`
	ItemID        int    `json:"itemId"`
}

// CurrentGameInfo is a live game from spectator-v5.
type CurrentGameInfo struct {
	GameID            int64                    `json:"gameId"`
	GameType          string                   `json:"gameType"`
	GameStartTime     int64                    `json:"gameStartTime"`
	MapID             int64                    `json:"mapId"`
	GameLength        int64                    `json:"gameLength"`
	PlatformID        string                   `json:"platformId"`
	GameMode          string                   `json:"gameMode"`
	GameQueueConfigID int64                    `json:"gameQueueConfigId"`
	BannedChampions   []BannedChampion         `json:"bannedChampions"`
	Participants      []CurrentGameParticipant `json:"participants"`
}

// BannedChampion is one champion ban in the live game.
type BannedChampion struct {
	PickTurn   int   `json:"pickTurn"`
	ChampionID int64 `json:"championId"`
	TeamID     int64 `json:"teamId"`
}

// CurrentGameParticipant is one player in the live game.
type CurrentGameParticipant struct {
	PUUID      string `json:"puuid"`
	ChampionID int64  `json:"championId"`
	TeamID     int64  `json:"teamId"`
	Spell1ID   int64  `json:"spell1Id"`
	Spell2ID   int64  `json:"spell2Id"`
	Bot        bool   `json:"bot"`
}

// PlayerProfile is the composite identity + summoner + ranked result.
type PlayerProfile struct {
	Account  *AccountDTO      `json:"account"`
	Summoner *SummonerDTO     `json:"summoner"`
	Ranked   []LeagueEntryDTO `json:"ranked"`
}
