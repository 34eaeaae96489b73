package domain

import "fmt"

// RankedSoloQueue is the queue type reported in the player summary.
const RankedSoloQueue = "RANKED_SOLO_5x5"

const (
	MatchResultVictory = "Victory"
	MatchResultDefeat  = "Defeat"
)

// DefaultMasteryLimit is how many mastery entries the API returns.
const DefaultMasteryLimit = 5

// DefaultMatchCount is used when the matches request carries no usable count.
const DefaultMatchCount = 5

type PlayerIdentity struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type PlayerSummary struct {
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Winrate      string `json:"winrate"`
}

// UnrankedSummary is reported when the player has no solo/duo entry.
func UnrankedSummary() PlayerSummary {
	return PlayerSummary{Tier: "UNRANKED", Rank: "", Winrate: Winrate(0, 0)}
}

// Winrate formats wins over total games as a truncated integer percentage.
func Winrate(wins, losses int) string {
	total := wins + losses
	if total <= 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", wins*100/total)
}

type ChampionMastery struct {
	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`
	MasteryLevel int    `json:"masteryLevel"`
	Points       int    `json:"points"`
}

type MatchSummary struct {
	MatchID   string `json:"matchId"`
	Champion  string `json:"champion"`
	KDA       string `json:"kda"`
	Result    string `json:"result"`
	Timestamp int64  `json:"timestamp"`
}

// LiveGame describes an in-progress game. Every field except IsPlaying is nil
// when the player is not in a game.
type LiveGame struct {
	IsPlaying    bool    `json:"isPlaying"`
	GameID       *int64  `json:"gameId"`
	ChampionID   *int    `json:"championId"`
	ChampionName *string `json:"championName"`
	StartTime    *int64  `json:"startTime"`
}

func NotPlaying() LiveGame {
	return LiveGame{IsPlaying: false}
}

func Playing(gameID int64, champion ChampionLookup, startTime int64) LiveGame {
	championID := champion.ID
	championName := champion.Name
	return LiveGame{
		IsPlaying:    true,
		GameID:       &gameID,
		ChampionID:   &championID,
		ChampionName: &championName,
		StartTime:    &startTime,
	}
}
