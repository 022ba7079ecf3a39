package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/pageza/healthscan/backend/internal/types"
)

// RedisLeaderboard keeps current scores in a sorted set, with display
// names and streaks in side hashes keyed by user id.
type RedisLeaderboard struct {
	redis     redis.Cmdable
	keyPrefix string
}

// Ensure RedisLeaderboard implements Leaderboard
var _ Leaderboard = (*RedisLeaderboard)(nil)

func NewRedisLeaderboard(client redis.Cmdable, keyPrefix string) *RedisLeaderboard {
	if keyPrefix == "" {
		keyPrefix = "leaderboard"
	}
	return &RedisLeaderboard{redis: client, keyPrefix: keyPrefix}
}

func (l *RedisLeaderboard) scoresKey() string  { return l.keyPrefix + ":scores" }
func (l *RedisLeaderboard) namesKey() string   { return l.keyPrefix + ":names" }
func (l *RedisLeaderboard) streaksKey() string { return l.keyPrefix + ":streaks" }

// Record stores the user's latest score, name and streak.
func (l *RedisLeaderboard) Record(ctx context.Context, entry types.LeaderboardEntry) error {
	_, err := l.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, l.scoresKey(), redis.Z{Score: float64(entry.Score), Member: entry.UserID})
		pipe.HSet(ctx, l.namesKey(), entry.UserID, entry.Name)
		pipe.HSet(ctx, l.streaksKey(), entry.UserID, entry.Streak)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record leaderboard entry: %w", err)
	}
	return nil
}

// Remove takes the user off the board.
func (l *RedisLeaderboard) Remove(ctx context.Context, userID string) error {
	_, err := l.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, l.scoresKey(), userID)
		pipe.HDel(ctx, l.namesKey(), userID)
		pipe.HDel(ctx, l.streaksKey(), userID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove leaderboard entry: %w", err)
	}
	return nil
}

// Rank returns the 1-based position of the user, or 0 when unranked.
func (l *RedisLeaderboard) Rank(ctx context.Context, userID string) (int, error) {
	rank, err := l.redis.ZRevRank(ctx, l.scoresKey(), userID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read rank: %w", err)
	}
	return int(rank) + 1, nil
}

// Top returns the n best scores, highest first.
func (l *RedisLeaderboard) Top(ctx context.Context, n int) ([]types.LeaderboardEntry, error) {
	if n <= 0 {
		return []types.LeaderboardEntry{}, nil
	}
	scores, err := l.redis.ZRevRangeWithScores(ctx, l.scoresKey(), 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	if len(scores) == 0 {
		return []types.LeaderboardEntry{}, nil
	}

	ids := make([]string, len(scores))
	for i, z := range scores {
		ids[i] = fmt.Sprint(z.Member)
	}
	names, err := l.redis.HMGet(ctx, l.namesKey(), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard names: %w", err)
	}
	streaks, err := l.redis.HMGet(ctx, l.streaksKey(), ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard streaks: %w", err)
	}

	entries := make([]types.LeaderboardEntry, len(scores))
	for i, z := range scores {
		entry := types.LeaderboardEntry{
			UserID: ids[i],
			Score:  int(z.Score),
			Rank:   i + 1,
		}
		if name, ok := names[i].(string); ok {
			entry.Name = name
		}
		if raw, ok := streaks[i].(string); ok {
			entry.Streak, _ = strconv.Atoi(raw)
		}
		entries[i] = entry
	}
	return entries, nil
}
