package testutil

import (
	"fmt"
	"time"

	"github.com/dom/league-profile-gateway/internal/riot"
)

// Champions seeded by SeedStandardChampions
var StandardChampions = map[int]string{
	1:   "Annie",
	11:  "Master Yi",
	103: "Ahri",
	157: "Yasuo",
	222: "Jinx",
	238: "Zed",
	266: "Aatrox",
}

// SeedStandardChampions publishes StandardChampions on the fake Data Dragon
func SeedStandardChampions(dd *FakeDataDragon) {
	for key, name := range StandardChampions {
		dd.AddChampion(key, name)
	}
}

// MatchBuilder creates Match-V5 documents with a builder pattern
type MatchBuilder struct {
	match riot.Match
}

// NewMatchBuilder creates a match with ID matchID ending now
func NewMatchBuilder(matchID string) *MatchBuilder {
	return &MatchBuilder{
		match: riot.Match{
			Metadata: riot.MatchMetadata{MatchID: matchID},
			Info: riot.MatchInfo{
				GameCreation:     time.Now().Add(-30 * time.Minute).UnixMilli(),
				GameDuration:     1800,
				GameEndTimestamp: time.Now().UnixMilli(),
				GameMode:         "CLASSIC",
				QueueID:          420,
			},
		},
	}
}

// EndingAt sets gameEndTimestamp in milliseconds
func (b *MatchBuilder) EndingAt(ms int64) *MatchBuilder {
	b.match.Info.GameEndTimestamp = ms
	return b
}

// WithParticipant adds a participant
func (b *MatchBuilder) WithParticipant(puuid, championName string, kills, deaths, assists int, win bool) *MatchBuilder {
	b.match.Metadata.Participants = append(b.match.Metadata.Participants, puuid)
	b.match.Info.Participants = append(b.match.Info.Participants, riot.Participant{
		PUUID:        puuid,
		ChampionName: championName,
		Kills:        kills,
		Deaths:       deaths,
		Assists:      assists,
		Win:          win,
	})
	return b
}

// WithFiller adds n anonymous participants
func (b *MatchBuilder) WithFiller(n int) *MatchBuilder {
	for i := 0; i < n; i++ {
		b.WithParticipant(fmt.Sprintf("filler-%d", i), "Annie", 0, 0, 0, i%2 == 0)
	}
	return b
}

func (b *MatchBuilder) Build() riot.Match {
	return b.match
}

// SoloQueueEntry returns a ranked solo/duo league entry
func SoloQueueEntry(tier, rank string, lp, wins, losses int) riot.LeagueEntry {
	return riot.LeagueEntry{
		LeagueID:     "league-solo",
		QueueType:    "RANKED_SOLO_5x5",
		Tier:         tier,
		Rank:         rank,
		LeaguePoints: lp,
		Wins:         wins,
		Losses:       losses,
	}
}

// FlexQueueEntry returns a ranked flex league entry
func FlexQueueEntry(tier, rank string, lp, wins, losses int) riot.LeagueEntry {
	entry := SoloQueueEntry(tier, rank, lp, wins, losses)
	entry.LeagueID = "league-flex"
	entry.QueueType = "RANKED_FLEX_SR"
	return entry
}

// Masteries returns n masteries for champion IDs in order, points descending
func Masteries(puuid string, championIDs ...int) []riot.ChampionMastery {
	masteries := make([]riot.ChampionMastery, len(championIDs))
	for i, id := range championIDs {
		masteries[i] = riot.ChampionMastery{
			PUUID:          puuid,
			ChampionID:     id,
			ChampionLevel:  10 - i,
			ChampionPoints: 100000 - i*1000,
		}
	}
	return masteries
}
