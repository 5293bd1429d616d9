package contentservice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	httpclient "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/http-client"
	questionnaireTypes "github.com/HealthResearchAuthority/rsp-iras-portal-sub005/pkg/questionnaire/types"
)

// ContentService fetches question sets and section lists from the downstream
// question set service, with a redis cache in front. Cache problems are never
// fatal, they degrade to a direct fetch.
type ContentService struct {
	client      httpclient.ClientConfig
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewContentService(client httpclient.ClientConfig, redisClient *redis.Client, cacheTTL time.Duration) *ContentService {
	return &ContentService{
		client:      client,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func (cs *ContentService) GetQuestionSet(ctx context.Context, categoryID string) ([]questionnaireTypes.Question, error) {
	cacheKey := "question-set:" + categoryID

	var resp QuestionSetResponse
	if cs.readCached(ctx, cacheKey, &resp) {
		return toQuestions(resp), nil
	}

	if err := cs.client.RunHTTPGet(fmt.Sprintf("/question-sets/%s", categoryID), &resp); err != nil {
		return nil, err
	}
	cs.writeCached(ctx, cacheKey, resp)
	return toQuestions(resp), nil
}

func (cs *ContentService) GetSections(ctx context.Context, categoryID string) ([]questionnaireTypes.Section, error) {
	cacheKey := "sections:" + categoryID

	var resp SectionsResponse
	if cs.readCached(ctx, cacheKey, &resp) {
		return resp.Sections, nil
	}

	if err := cs.client.RunHTTPGet(fmt.Sprintf("/question-sets/%s/sections", categoryID), &resp); err != nil {
		return nil, err
	}
	cs.writeCached(ctx, cacheKey, resp)
	return resp.Sections, nil
}

// InvalidateCategory drops the cached payloads of one category, e.g. after
// the question set was republished.
func (cs *ContentService) InvalidateCategory(ctx context.Context, categoryID string) {
	if cs.redisClient == nil {
		return
	}
	if err := cs.redisClient.Del(ctx, "question-set:"+categoryID, "sections:"+categoryID).Err(); err != nil {
		slog.Warn("could not invalidate question set cache", slog.String("categoryID", categoryID), slog.String("error", err.Error()))
	}
}

func (cs *ContentService) readCached(ctx context.Context, key string, target interface{}) bool {
	if cs.redisClient == nil {
		return false
	}
	payload, err := cs.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("question set cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return false
	}
	if err := json.Unmarshal(payload, target); err != nil {
		slog.Warn("could not decode cached question set payload", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

func (cs *ContentService) writeCached(ctx context.Context, key string, value interface{}) {
	if cs.redisClient == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := cs.redisClient.Set(ctx, key, payload, cs.cacheTTL).Err(); err != nil {
		slog.Warn("question set cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func toQuestions(resp QuestionSetResponse) []questionnaireTypes.Question {
	questions := make([]questionnaireTypes.Question, len(resp.Questions))
	for i, dto := range resp.Questions {
		questions[i] = dto.ToQuestion()
	}
	return questions
}
