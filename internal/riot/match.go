package riot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Match is the subset of a Match-V5 document this service reads.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	GameCreation     int64         `json:"gameCreation"`
	GameDuration     int64         `json:"gameDuration"`
	GameEndTimestamp int64         `json:"gameEndTimestamp"`
	GameMode         string        `json:"gameMode"`
	QueueID          int           `json:"queueId"`
	Participants     []Participant `json:"participants"`
}

type Participant struct {
	PUUID        string `json:"puuid"`
	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	Win          bool   `json:"win"`
}

// FindParticipant returns the participant with puuid, or nil.
func (m *Match) FindParticipant(puuid string) *Participant {
	for i := range m.Info.Participants {
		if m.Info.Participants[i].PUUID == puuid {
			return &m.Info.Participants[i]
		}
	}
	return nil
}

// MatchIDsByPUUID returns up to count recent match IDs starting at the most recent.
func (c *Client) MatchIDsByPUUID(ctx context.Context, puuid string, count int) ([]string, error) {
	path := fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids", url.PathEscape(puuid))
	query := url.Values{}
	query.Set("start", "0")
	query.Set("count", strconv.Itoa(count))

	var ids []string
	if err := c.getJSON(ctx, Routing, "match.ids-by-puuid", path, query, &ids); err != nil {
		return nil, fmt.Errorf("failed to get match IDs: %w", err)
	}
	return ids, nil
}

func (c *Client) Match(ctx context.Context, matchID string) (*Match, error) {
	var match Match
	if err := c.getJSON(ctx, Routing, "match.by-id", matchPath(matchID), nil, &match); err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return &match, nil
}

// MatchRaw returns the full upstream match document without decoding it.
func (c *Client) MatchRaw(ctx context.Context, matchID string) (*Response, error) {
	return c.do(ctx, http.MethodGet, Routing, matchPath(matchID), nil, nil, "match.by-id")
}

func matchPath(matchID string) string {
	return fmt.Sprintf("/lol/match/v5/matches/%s", url.PathEscape(matchID))
}
