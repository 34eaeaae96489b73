package riot

import (
	"context"
	"fmt"
	"net/url"
)

// LeagueEntry is one ranked queue standing from League-V4.
type LeagueEntry struct {
	LeagueID     string `json:"leagueId"`
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

func (c *Client) LeagueEntriesByPUUID(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	path := fmt.Sprintf("/lol/league/v4/entries/by-puuid/%s", url.PathEscape(puuid))

	var entries []LeagueEntry
	if err := c.getJSON(ctx, Platform, "league.entries-by-puuid", path, nil, &entries); err != nil {
		return nil, fmt.Errorf("failed to get league entries: %w", err)
	}
	return entries, nil
}

// ChampionMastery is one Champion-Mastery-V4 entry.
type ChampionMastery struct {
	PUUID          string `json:"puuid"`
	ChampionID     int    `json:"championId"`
	ChampionLevel  int    `json:"championLevel"`
	ChampionPoints int    `json:"championPoints"`
}

// MasteriesByPUUID returns masteries in the order upstream sends them.
func (c *Client) MasteriesByPUUID(ctx context.Context, puuid string) ([]ChampionMastery, error) {
	path := fmt.Sprintf("/lol/champion-mastery/v4/champion-masteries/by-puuid/%s", url.PathEscape(puuid))

	var masteries []ChampionMastery
	if err := c.getJSON(ctx, Platform, "mastery.by-puuid", path, nil, &masteries); err != nil {
		return nil, fmt.Errorf("failed to get champion masteries: %w", err)
	}
	return masteries, nil
}

// ChampionRotation is the Champion-V3 free rotation.
type ChampionRotation struct {
	FreeChampionIDs              []int `json:"freeChampionIds"`
	FreeChampionIDsForNewPlayers []int `json:"freeChampionIdsForNewPlayers"`
	MaxNewPlayerLevel            int   `json:"maxNewPlayerLevel"`
}

func (c *Client) ChampionRotation(ctx context.Context) (*ChampionRotation, error) {
	var rotation ChampionRotation
	if err := c.getJSON(ctx, Platform, "platform.champion-rotations", "/lol/platform/v3/champion-rotations", nil, &rotation); err != nil {
		return nil, fmt.Errorf("failed to get champion rotation: %w", err)
	}
	return &rotation, nil
}
