package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"main/model"
)

// stubGenerator scripts the external model for a test.
type stubGenerator struct {
	ready     bool
	initOK    bool
	initCalls int
	response  string
	err       error
	prompts   []string
}

func (g *stubGenerator) IsReady() bool { return g.ready }

func (g *stubGenerator) TryInitialize(key string) bool {
	g.initCalls++
	if g.initOK {
		g.ready = true
	}
	return g.initOK
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.response, g.err
}

// memoryCache is an in-process InsightCache for tests.
type memoryCache struct {
	stored []model.Insight
	err    error
}

func (c *memoryCache) StoreLatest(ctx context.Context, insights []model.Insight) error {
	if c.err != nil {
		return c.err
	}
	c.stored = insights
	return nil
}

func (c *memoryCache) Latest(ctx context.Context) ([]model.Insight, error) {
	return c.stored, c.err
}

func newInsightFixture(gen *stubGenerator, cache InsightCache) *InsightService {
	_, trackers, _ := newFixture()
	return NewInsightService(trackers, gen, cache, "test-key")
}

func TestParseInsightsProseWrapped(t *testing.T) {
	text := `Sure, here are your insights:
[{"title":"Sleep More","description":"Go to bed earlier.","confidence":"88%","type":"goal"}]
Hope that helps!`

	insights, err := ParseInsights(text)
	if err != nil {
		t.Fatalf("ParseInsights: %v", err)
	}
	if len(insights) != 1 {
		t.Fatalf("got %d insights, want 1", len(insights))
	}
	want := model.Insight{Title: "Sleep More", Description: "Go to bed earlier.", Confidence: "88%", Type: model.InsightGoal}
	if insights[0] != want {
		t.Errorf("insight = %+v, want %+v", insights[0], want)
	}
}

func TestParseInsightsDefaults(t *testing.T) {
	insights, err := ParseInsights(`[{"type":"bogus"},{"title":"Only Title"}]`)
	if err != nil {
		t.Fatalf("ParseInsights: %v", err)
	}
	if len(insights) != 2 {
		t.Fatalf("got %d insights, want 2", len(insights))
	}
	first := insights[0]
	if first.Title != "AI Insight" || first.Description != "No description provided" || first.Confidence != "85%" {
		t.Errorf("defaults not applied: %+v", first)
	}
	if first.Type != model.InsightRecommendation {
		t.Errorf("unknown type = %q, want recommendation", first.Type)
	}
	if insights[1].Title != "Only Title" {
		t.Errorf("provided title overwritten: %+v", insights[1])
	}
}

func TestParseInsightsTruncatesToThree(t *testing.T) {
	insights, err := ParseInsights(`[{"title":"1"},{"title":"2"},{"title":"3"},{"title":"4"},{"title":"5"}]`)
	if err != nil {
		t.Fatalf("ParseInsights: %v", err)
	}
	if len(insights) != 3 {
		t.Fatalf("got %d insights, want 3", len(insights))
	}
	if insights[2].Title != "3" {
		t.Errorf("truncation kept wrong items: %+v", insights)
	}
}

func TestParseInsightsNoArray(t *testing.T) {
	for _, text := range []string{"no json here", "", "] backwards ["} {
		if _, err := ParseInsights(text); err == nil {
			t.Errorf("ParseInsights(%q) = nil error, want failure", text)
		}
	}
}

func TestParseInsightsMalformedJSON(t *testing.T) {
	if _, err := ParseInsights(`[{"title": broken}]`); err == nil {
		t.Error("ParseInsights on malformed JSON = nil error, want failure")
	}
}

func TestBuildPromptSections(t *testing.T) {
	recent := RecentActivity{
		Study: []model.StudyEntry{{Subject: "Math", DurationHours: 2, Efficiency: 4}},
		Sleep: []model.SleepEntry{{DurationHours: 8, Quality: 4}},
	}
	prompt := BuildPrompt(recent)

	if !strings.HasPrefix(prompt, promptInstruction) {
		t.Error("prompt missing the instruction preamble")
	}
	if !strings.Contains(prompt, "Study data: ") || !strings.Contains(prompt, `"Math"`) {
		t.Error("prompt missing study section")
	}
	if !strings.Contains(prompt, "Sleep data: ") {
		t.Error("prompt missing sleep section")
	}
	if strings.Contains(prompt, "Workout data:") || strings.Contains(prompt, "Meal data:") {
		t.Error("prompt includes sections for empty trackers")
	}
}

func TestBuildPromptEmpty(t *testing.T) {
	prompt := BuildPrompt(RecentActivity{})
	if prompt != promptInstruction+promptNoData {
		t.Errorf("empty prompt = %q", prompt)
	}
}

func TestGenerateInsightsSuccess(t *testing.T) {
	gen := &stubGenerator{
		ready:    true,
		response: `[{"title":"Hydrate","description":"Drink more water.","confidence":"91%","type":"recommendation"}]`,
	}
	svc := newInsightFixture(gen, nil)

	got := svc.GenerateInsights(context.Background())
	want := []model.Insight{{Title: "Hydrate", Description: "Drink more water.", Confidence: "91%", Type: model.InsightRecommendation}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GenerateInsights = %+v, want %+v", got, want)
	}

	if !reflect.DeepEqual(svc.Latest(context.Background()), want) {
		t.Error("Latest does not return the generated set")
	}
}

func TestGenerateInsightsGeneratorError(t *testing.T) {
	gen := &stubGenerator{ready: true, err: errors.New("quota exceeded")}
	svc := newInsightFixture(gen, nil)

	got := svc.GenerateInsights(context.Background())
	if !reflect.DeepEqual(got, FallbackInsights()) {
		t.Errorf("generator error should yield the fallback set, got %+v", got)
	}
}

func TestGenerateInsightsUnparseableResponse(t *testing.T) {
	gen := &stubGenerator{ready: true, response: "I cannot produce JSON today."}
	svc := newInsightFixture(gen, nil)

	got := svc.GenerateInsights(context.Background())
	if !reflect.DeepEqual(got, FallbackInsights()) {
		t.Errorf("unparseable response should yield the fallback set, got %+v", got)
	}
}

func TestGenerateInsightsInitRetries(t *testing.T) {
	gen := &stubGenerator{initOK: false}
	svc := newInsightFixture(gen, nil)

	if got := svc.GenerateInsights(context.Background()); !reflect.DeepEqual(got, FallbackInsights()) {
		t.Fatalf("failed init should yield the fallback set, got %+v", got)
	}

	// A later cycle retries initialization; once it succeeds the generator
	// is actually called.
	gen.initOK = true
	gen.response = `[{"title":"Back Online","description":"d","confidence":"80%","type":"trend"}]`
	got := svc.GenerateInsights(context.Background())
	if gen.initCalls != 2 {
		t.Errorf("initCalls = %d, want 2", gen.initCalls)
	}
	if len(got) != 1 || got[0].Title != "Back Online" {
		t.Errorf("post-recovery insights = %+v", got)
	}
}

func TestGenerateInsightsStoresInCache(t *testing.T) {
	gen := &stubGenerator{ready: true, response: `[{"title":"Cached","description":"d","confidence":"80%","type":"trend"}]`}
	cache := &memoryCache{}
	svc := newInsightFixture(gen, cache)

	svc.GenerateInsights(context.Background())
	if len(cache.stored) != 1 || cache.stored[0].Title != "Cached" {
		t.Errorf("cache content = %+v", cache.stored)
	}
}

func TestGenerateInsightsCacheFailureIsNonFatal(t *testing.T) {
	gen := &stubGenerator{ready: true, response: `[{"title":"Ok","description":"d","confidence":"80%","type":"trend"}]`}
	cache := &memoryCache{err: errors.New("redis down")}
	svc := newInsightFixture(gen, cache)

	got := svc.GenerateInsights(context.Background())
	if len(got) != 1 || got[0].Title != "Ok" {
		t.Errorf("cache write failure must not change the result: %+v", got)
	}
}

func TestLatestFallsBackThroughCache(t *testing.T) {
	cache := &memoryCache{stored: []model.Insight{{Title: "From Cache", Description: "d", Confidence: "70%", Type: model.InsightTrend}}}
	svc := newInsightFixture(&stubGenerator{}, cache)

	got := svc.Latest(context.Background())
	if len(got) != 1 || got[0].Title != "From Cache" {
		t.Errorf("Latest should consult the cache before falling back, got %+v", got)
	}
}

func TestLatestWithNothingStored(t *testing.T) {
	svc := newInsightFixture(&stubGenerator{}, nil)
	if got := svc.Latest(context.Background()); !reflect.DeepEqual(got, FallbackInsights()) {
		t.Errorf("Latest with no history should return the fallback set, got %+v", got)
	}
}

func TestFallbackInsightsShape(t *testing.T) {
	insights := FallbackInsights()
	if len(insights) != 3 {
		t.Fatalf("fallback set has %d items, want 3", len(insights))
	}
	wantTypes := []model.InsightType{model.InsightRecommendation, model.InsightTrend, model.InsightGoal}
	for i, insight := range insights {
		if insight.Type != wantTypes[i] {
			t.Errorf("fallback[%d].Type = %q, want %q", i, insight.Type, wantTypes[i])
		}
		if insight.Title == "" || insight.Description == "" || insight.Confidence == "" {
			t.Errorf("fallback[%d] has empty fields: %+v", i, insight)
		}
	}
}
