package mcp

import (
	"context"
	"log/slog"

	"github.com/ganot/teampulse/internal/domain/baseline"
	"github.com/ganot/teampulse/internal/domain/drift"
	"github.com/ganot/teampulse/internal/domain/metric"
	"github.com/ganot/teampulse/internal/domain/recommend"
	"github.com/ganot/teampulse/internal/domain/scoring"
	"github.com/ganot/teampulse/internal/domain/team"
	"github.com/ganot/teampulse/internal/engine"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `teampulse exposes a behavioral baseline and drift
scoring engine for team-level collaboration metrics. Feed daily aggregates
with record_aggregate, then calibrate_team to learn a baseline, detect_drift
to compare the recent window against it, team_scores for the composite
indices, and run_team for the full pipeline. All outputs are team-level;
teams below the privacy floor never receive scores.`

// BaselineService defines calibration operations needed by MCP.
type BaselineService interface {
	Calibrate(ctx context.Context, teamID string, windowLength int) (*baseline.Baseline, error)
	Current(ctx context.Context, teamID string) (*baseline.Baseline, error)
	History(ctx context.Context, teamID string, limit int) ([]baseline.Baseline, error)
}

// DriftService defines detection operations needed by MCP.
type DriftService interface {
	Detect(ctx context.Context, teamID string, recentWindow int) ([]drift.Event, error)
	History(ctx context.Context, teamID string, limit int) ([]drift.Event, error)
}

// ScoringService defines composite-index operations needed by MCP.
type ScoringService interface {
	Scores(ctx context.Context, teamID string) (*scoring.Set, error)
}

// RecommendService defines recommendation operations needed by MCP.
type RecommendService interface {
	History(ctx context.Context, teamID string, limit int) ([]recommend.Recommendation, error)
}

// EngineService defines orchestration operations needed by MCP.
type EngineService interface {
	RunTeam(ctx context.Context, teamID string) (*engine.Report, error)
	RunAll(ctx context.Context) ([]engine.TeamResult, error)
}

// AggregateSink accepts metric aggregates from upstream collectors.
type AggregateSink interface {
	Append(ctx context.Context, agg *metric.Aggregate) error
}

// TeamSink accepts team records from the upstream directory.
type TeamSink interface {
	Create(ctx context.Context, t *team.Team) error
}

// SampleSink accepts anonymized member sample captures.
type SampleSink interface {
	Replace(ctx context.Context, teamID string, samples []metric.MemberSample) error
}

// Services contains all domain services needed by MCP.
type Services struct {
	Baselines  BaselineService
	Drift      DriftService
	Scoring    ScoringService
	Recommend  RecommendService
	Engine     EngineService
	Aggregates AggregateSink
	Teams      TeamSink
	Samples    SampleSink
}

// Defaults holds window lengths applied when a tool call omits them.
type Defaults struct {
	BaselineWindow int
	RecentWindow   int
}

// Config contains server configuration.
type Config struct {
	Services Services
	Defaults Defaults
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "teampulse",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger))

	registerTools(server, cfg.Services, cfg.Defaults)

	return server
}
