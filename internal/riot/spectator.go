package riot

import (
	"context"
	"fmt"
	"net/url"
)

// ActiveGame is a Spectator-V5 in-progress game.
type ActiveGame struct {
	GameID        int64                   `json:"gameId"`
	GameMode      string                  `json:"gameMode"`
	GameStartTime int64                   `json:"gameStartTime"`
	Participants  []ActiveGameParticipant `json:"participants"`
}

type ActiveGameParticipant struct {
	PUUID      string `json:"puuid"`
	ChampionID int    `json:"championId"`
	TeamID     int    `json:"teamId"`
}

func (g *ActiveGame) FindParticipant(puuid string) *ActiveGameParticipant {
	for i := range g.Participants {
		if g.Participants[i].PUUID == puuid {
			return &g.Participants[i]
		}
	}
	return nil
}

// ActiveGameByPUUID returns the player's current game. A player who is not in
// a game yields a 404 *StatusError.
func (c *Client) ActiveGameByPUUID(ctx context.Context, puuid string) (*ActiveGame, error) {
	path := fmt.Sprintf("/lol/spectator/v5/active-games/by-summoner/%s", url.PathEscape(puuid))

	var game ActiveGame
	if err := c.getJSON(ctx, Platform, "spectator.active-game", path, nil, &game); err != nil {
		return nil, fmt.Errorf("failed to get active game: %w", err)
	}
	return &game, nil
}
