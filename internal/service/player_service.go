package service

import (
	"context"
	"fmt"

	"github.com/dom/league-profile-gateway/internal/domain"
	"github.com/dom/league-profile-gateway/internal/riot"
	log "github.com/sirupsen/logrus"
)

// PlayerService reshapes Riot player, match and spectator data.
type PlayerService struct {
	riot    RiotAPI
	catalog *domain.ChampionCatalog
}

func NewPlayerService(riotAPI RiotAPI, catalog *domain.ChampionCatalog) *PlayerService {
	return &PlayerService{riot: riotAPI, catalog: catalog}
}

func (s *PlayerService) Identify(ctx context.Context, gameName, tagLine string) (*domain.PlayerIdentity, error) {
	account, err := s.riot.AccountByRiotID(ctx, gameName, tagLine)
	if err != nil {
		return nil, err
	}

	return &domain.PlayerIdentity{
		PUUID:    account.PUUID,
		GameName: account.GameName,
		TagLine:  account.TagLine,
	}, nil
}

// Summary reports the player's ranked solo/duo standing, or an unranked
// summary when there is none.
func (s *PlayerService) Summary(ctx context.Context, puuid string) (*domain.PlayerSummary, error) {
	entries, err := s.riot.LeagueEntriesByPUUID(ctx, puuid)
	if err != nil {
		return nil, err
	}

	summary := domain.UnrankedSummary()
	for _, entry := range entries {
		if entry.QueueType != domain.RankedSoloQueue {
			continue
		}
		summary = domain.PlayerSummary{
			Tier:         entry.Tier,
			Rank:         entry.Rank,
			LeaguePoints: entry.LeaguePoints,
			Wins:         entry.Wins,
			Losses:       entry.Losses,
			Winrate:      domain.Winrate(entry.Wins, entry.Losses),
		}
		break
	}

	return &summary, nil
}

// Mastery returns the first DefaultMasteryLimit masteries in upstream order.
func (s *PlayerService) Mastery(ctx context.Context, puuid string) ([]domain.ChampionMastery, error) {
	masteries, err := s.riot.MasteriesByPUUID(ctx, puuid)
	if err != nil {
		return nil, err
	}

	if len(masteries) > domain.DefaultMasteryLimit {
		masteries = masteries[:domain.DefaultMasteryLimit]
	}

	result := make([]domain.ChampionMastery, 0, len(masteries))
	for _, m := range masteries {
		result = append(result, domain.ChampionMastery{
			ChampionID:   m.ChampionID,
			ChampionName: s.catalog.Name(m.ChampionID),
			MasteryLevel: m.ChampionLevel,
			Points:       m.ChampionPoints,
		})
	}
	return result, nil
}

// MatchHistory fetches up to count match IDs and then each match in turn.
// Matches that fail to load, or that the player is not part of, are left out.
func (s *PlayerService) MatchHistory(ctx context.Context, puuid string, count int) ([]domain.MatchSummary, error) {
	matchIDs, err := s.riot.MatchIDsByPUUID(ctx, puuid, count)
	if err != nil {
		return nil, err
	}

	matches := make([]domain.MatchSummary, 0, len(matchIDs))
	for _, matchID := range matchIDs {
		match, err := s.riot.Match(ctx, matchID)
		if err != nil {
			log.WithFields(log.Fields{
				"matchId": matchID,
				"error":   err,
			}).Debug("dropping match from history")
			continue
		}

		participant := match.FindParticipant(puuid)
		if participant == nil {
			continue
		}

		result := domain.MatchResultDefeat
		if participant.Win {
			result = domain.MatchResultVictory
		}

		matches = append(matches, domain.MatchSummary{
			MatchID:   matchID,
			Champion:  participant.ChampionName,
			KDA:       fmt.Sprintf("%d/%d/%d", participant.Kills, participant.Deaths, participant.Assists),
			Result:    result,
			Timestamp: match.Info.GameEndTimestamp,
		})
	}

	return matches, nil
}

// MatchDetails returns the upstream match document untouched, whatever its status.
func (s *PlayerService) MatchDetails(ctx context.Context, matchID string) (*riot.Response, error) {
	return s.riot.MatchRaw(ctx, matchID)
}

// LiveGame reports the player's in-progress game. An upstream 404 means the
// player is not in a game.
func (s *PlayerService) LiveGame(ctx context.Context, puuid string) (*domain.LiveGame, error) {
	game, err := s.riot.ActiveGameByPUUID(ctx, puuid)
	if err != nil {
		if riot.IsNotFound(err) {
			notPlaying := domain.NotPlaying()
			return &notPlaying, nil
		}
		return nil, err
	}

	championID := 0
	if participant := game.FindParticipant(puuid); participant != nil {
		championID = participant.ChampionID
	}

	live := domain.Playing(game.GameID, s.catalog.Lookup(championID), game.GameStartTime)
	return &live, nil
}
