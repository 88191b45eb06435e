package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gamegalaxy/tictactoe-backend/internal/apperror"
	"github.com/gamegalaxy/tictactoe-backend/internal/entity"
)

const recentResultsKey = "results:recent"

// ResultRepository archives finished games. A session id is reused across
// rematches, so Save overwrites the previous result of the same session and
// the recent list may name one session more than once.
type ResultRepository interface {
	Save(ctx context.Context, result *entity.GameResult) error
	GetBySessionID(ctx context.Context, sessionID string) (*entity.GameResult, error)
	Recent(ctx context.Context, limit int64) ([]*entity.GameResult, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.GameResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	resultKey := "result:" + result.SessionID
	if err = that.client.Set(ctx, resultKey, resultJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set result: %w", err)
	}

	if err = that.client.LPush(ctx, recentResultsKey, resultJSON).Err(); err != nil {
		return fmt.Errorf("failed to push recent result: %w", err)
	}

	return nil
}

func (that *dbResult) GetBySessionID(ctx context.Context, sessionID string) (*entity.GameResult, error) {
	resultKey := "result:" + sessionID

	response, err := that.client.Get(ctx, resultKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by session id: %w", err)
	}

	var result entity.GameResult
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

func (that *dbResult) Recent(ctx context.Context, limit int64) ([]*entity.GameResult, error) {
	if limit <= 0 {
		return nil, nil
	}

	entries, err := that.client.LRange(ctx, recentResultsKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent results: %w", err)
	}

	results := make([]*entity.GameResult, 0, len(entries))
	for _, entry := range entries {
		var result entity.GameResult
		if err = json.Unmarshal([]byte(entry), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
		results = append(results, &result)
	}

	return results, nil
}
