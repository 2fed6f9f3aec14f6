package model

// InsightType classifies a generated insight.
type InsightType string

const (
	InsightRecommendation InsightType = "recommendation"
	InsightTrend          InsightType = "trend"
	InsightGoal           InsightType = "goal"
)

// Insight is a short generated recommendation, trend, or goal statement.
// Confidence is a percentage string such as "85%".
type Insight struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Confidence  string      `json:"confidence"`
	Type        InsightType `json:"type"`
}
