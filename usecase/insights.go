package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"main/model"
	"main/utils"
	"strings"
	"sync"
	"sync/atomic"
)

// InsightGenerator is the external generative capability: one prompt in,
// free-form text out. Initialization is one-time-on-success; a failed
// attempt must be retryable.
type InsightGenerator interface {
	IsReady() bool
	TryInitialize(key string) bool
	Generate(ctx context.Context, prompt string) (string, error)
}

// InsightCache optionally persists the latest generated set outside the
// process. May be nil.
type InsightCache interface {
	StoreLatest(ctx context.Context, insights []model.Insight) error
	Latest(ctx context.Context) ([]model.Insight, error)
}

// InsightService turns recent entries into narrative insights via the
// external generator, degrading to a fixed fallback set on any failure.
// Callers always receive a valid list; errors never escape this boundary.
type InsightService struct {
	trackers  *TrackerService
	generator InsightGenerator
	cache     InsightCache
	apiKey    string

	// seq orders generation cycles so a slow, superseded response cannot
	// overwrite a newer stored result.
	seq       atomic.Uint64
	mu        sync.Mutex
	latest    []model.Insight
	latestSeq uint64
}

func NewInsightService(trackers *TrackerService, generator InsightGenerator, cache InsightCache, apiKey string) *InsightService {
	return &InsightService{
		trackers:  trackers,
		generator: generator,
		cache:     cache,
		apiKey:    apiKey,
	}
}

// GenerateInsights runs one full generation cycle: build prompt from the
// last 30 days of entries, call the external model, parse, and store. Any
// failure along the way yields the fixed fallback set instead of an error.
func (svc *InsightService) GenerateInsights(ctx context.Context) []model.Insight {
	seq := svc.seq.Add(1)

	if !svc.generator.IsReady() && !svc.generator.TryInitialize(svc.apiKey) {
		log.Printf("Insight generator unavailable, serving fallback insights")
		utils.TrackInsightGeneration("fallback")
		return svc.finish(ctx, seq, FallbackInsights())
	}

	prompt := BuildPrompt(svc.trackers.RecentActivity(RecentWindowDays))

	timer := utils.TrackInsightCall()
	text, err := svc.generator.Generate(ctx, prompt)
	timer.ObserveDuration()
	if err != nil {
		log.Printf("Error generating insights: %v", err)
		utils.TrackError("insight")
		utils.TrackInsightGeneration("fallback")
		return svc.finish(ctx, seq, FallbackInsights())
	}

	insights, err := ParseInsights(text)
	if err != nil {
		log.Printf("Error parsing insights: %v", err)
		utils.TrackError("insight")
		utils.TrackInsightGeneration("fallback")
		return svc.finish(ctx, seq, FallbackInsights())
	}

	utils.TrackInsightGeneration("generated")
	return svc.finish(ctx, seq, insights)
}

// finish stores the cycle's result unless a newer cycle already finished,
// then returns it. The returned set is always what this cycle produced;
// only the stored "latest" respects the ordering guard.
func (svc *InsightService) finish(ctx context.Context, seq uint64, insights []model.Insight) []model.Insight {
	svc.mu.Lock()
	stale := seq < svc.latestSeq
	if !stale {
		svc.latest = insights
		svc.latestSeq = seq
	}
	svc.mu.Unlock()

	if !stale && svc.cache != nil {
		if err := svc.cache.StoreLatest(ctx, insights); err != nil {
			log.Printf("Failed to cache insights: %v", err)
			utils.TrackError("cache")
		}
	}
	return insights
}

// Latest returns the most recently stored insight set, consulting the
// external cache when the process has not generated any yet, and falling
// back to the fixed set when neither has anything.
func (svc *InsightService) Latest(ctx context.Context) []model.Insight {
	svc.mu.Lock()
	latest := svc.latest
	svc.mu.Unlock()
	if latest != nil {
		return latest
	}

	if svc.cache != nil {
		cached, err := svc.cache.Latest(ctx)
		if err != nil {
			log.Printf("Failed to read cached insights: %v", err)
			utils.TrackError("cache")
		} else if cached != nil {
			return cached
		}
	}
	return FallbackInsights()
}

const promptInstruction = "Based on the following health and wellness data, generate 3 personalized insights. " +
	"Format your response as a JSON array with objects containing 'title', 'description', 'confidence' (as a percentage string), " +
	"and 'type' (which should be one of 'recommendation', 'trend', or 'goal'). " +
	"Make the insights actionable, specific, and data-driven.\n\n"

const promptNoData = "No specific user data is available. Please generate general wellness insights that would be " +
	"helpful for anyone tracking their health, study habits, workouts, meals, and sleep."

// BuildPrompt serializes the recent-window extract into the generation
// prompt. Trackers without recent entries are omitted entirely; when all
// four are empty a generic-wellness instruction replaces the entry dump.
func BuildPrompt(recent RecentActivity) string {
	var b strings.Builder
	b.WriteString(promptInstruction)

	if recent.Empty() {
		b.WriteString(promptNoData)
		return b.String()
	}

	writeSection := func(label string, data interface{}, n int) {
		if n == 0 {
			return
		}
		serialized, err := json.Marshal(data)
		if err != nil {
			return
		}
		fmt.Fprintf(&b, "%s data: %s\n", label, serialized)
	}
	writeSection("Study", recent.Study, len(recent.Study))
	writeSection("Workout", recent.Workout, len(recent.Workout))
	writeSection("Meal", recent.Meal, len(recent.Meal))
	writeSection("Sleep", recent.Sleep, len(recent.Sleep))

	return b.String()
}

// rawInsight tolerates partially formed items from the model.
type rawInsight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Confidence  string `json:"confidence"`
	Type        string `json:"type"`
}

// ParseInsights extracts the first JSON-array-shaped substring from the
// model's response (the model may wrap it in prose), fills defaults for
// missing fields, and truncates to at most 3 items. It never pads.
func ParseInsights(text string) ([]model.Insight, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no valid JSON found in response")
	}

	var raw []rawInsight
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("decode insights: %w", err)
	}

	if len(raw) > 3 {
		raw = raw[:3]
	}

	insights := make([]model.Insight, 0, len(raw))
	for _, r := range raw {
		insight := model.Insight{
			Title:       r.Title,
			Description: r.Description,
			Confidence:  r.Confidence,
			Type:        model.InsightType(r.Type),
		}
		if insight.Title == "" {
			insight.Title = "AI Insight"
		}
		if insight.Description == "" {
			insight.Description = "No description provided"
		}
		if insight.Confidence == "" {
			insight.Confidence = "85%"
		}
		switch insight.Type {
		case model.InsightRecommendation, model.InsightTrend, model.InsightGoal:
		default:
			insight.Type = model.InsightRecommendation
		}
		insights = append(insights, insight)
	}
	return insights, nil
}

// FallbackInsights is the fixed set shown whenever the external capability
// is unavailable or its output cannot be parsed. Deterministic on purpose:
// user-facing behavior under outage never varies.
func FallbackInsights() []model.Insight {
	return []model.Insight{
		{
			Title:       "Smart Recommendations",
			Description: "Consider scheduling complex study tasks in the morning when cognitive performance tends to be higher for most people.",
			Confidence:  "90%",
			Type:        model.InsightRecommendation,
		},
		{
			Title:       "Progress Trend",
			Description: "Consistent workouts, even short ones, lead to better long-term results than occasional intense sessions.",
			Confidence:  "85%",
			Type:        model.InsightTrend,
		},
		{
			Title:       "Goal Adjustment",
			Description: "Setting a regular sleep schedule can significantly improve your overall wellness and productivity.",
			Confidence:  "92%",
			Type:        model.InsightGoal,
		},
	}
}
