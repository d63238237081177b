package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/ganot/teampulse/internal/domain/baseline"
	"github.com/ganot/teampulse/internal/domain/drift"
	"github.com/ganot/teampulse/internal/domain/metric"
	"github.com/ganot/teampulse/internal/domain/recommend"
	"github.com/ganot/teampulse/internal/domain/scoring"
	"github.com/ganot/teampulse/internal/domain/team"
	"github.com/ganot/teampulse/internal/engine"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type recordAggregateParams struct {
	TeamID  string             `json:"team_id" jsonschema:"team identifier"`
	Date    string             `json:"date" jsonschema:"aggregate period in YYYY-MM-DD form"`
	Signals map[string]float64 `json:"signals" jsonschema:"signal name to value, e.g. meeting_load_index"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type registerTeamParams struct {
	TeamID      string `json:"team_id" jsonschema:"team identifier"`
	OrgID       string `json:"org_id" jsonschema:"organization identifier"`
	Name        string `json:"name" jsonschema:"team display name"`
	MemberCount int    `json:"member_count" jsonschema:"number of members"`
	ManagerID   string `json:"manager_id,omitempty" jsonschema:"optional manager identifier"`
}

type memberSampleParams struct {
	MeetingHours     float64 `json:"meeting_hours"`
	AfterHoursHours  float64 `json:"after_hours_hours"`
	ResponsePressure float64 `json:"response_pressure"`
}

type memberSamplesParams struct {
	TeamID  string               `json:"team_id" jsonschema:"team identifier"`
	Samples []memberSampleParams `json:"samples" jsonschema:"anonymized per-member samples, order carries no meaning"`
}

type teamWindowParams struct {
	TeamID string `json:"team_id" jsonschema:"team identifier"`
	Window int    `json:"window,omitempty" jsonschema:"window length in periods (0 uses the configured default)"`
}

type teamParams struct {
	TeamID string `json:"team_id" jsonschema:"team identifier"`
}

type teamLimitParams struct {
	TeamID string `json:"team_id" jsonschema:"team identifier"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of results"`
}

type eventsResponse struct {
	Events []drift.Event `json:"events"`
}

type baselineHistoryResponse struct {
	Snapshots []baseline.Baseline `json:"snapshots"`
}

type recommendationsResponse struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

type runAllResponse struct {
	Reports []engine.Report `json:"reports"`
	Failed  []string        `json:"failed,omitempty"`
}

// registerTools registers all engine tools on the server.
func registerTools(server *sdkmcp.Server, services Services, defaults Defaults) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "record_aggregate",
		Description: "Store one daily team-level metric aggregate (append-only)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params recordAggregateParams) (*sdkmcp.CallToolResult, statusResponse, error) {
		date, err := time.Parse("2006-01-02", params.Date)
		if err != nil {
			return nil, statusResponse{}, fmt.Errorf("invalid date %q: %w", params.Date, err)
		}
		signals := make(map[metric.Signal]float64, len(params.Signals))
		for name, value := range params.Signals {
			signals[metric.Signal(name)] = value
		}
		agg := &metric.Aggregate{TeamID: params.TeamID, Date: date, Signals: signals}
		if err := services.Aggregates.Append(ctx, agg); err != nil {
			return nil, statusResponse{}, err
		}
		return nil, statusResponse{Status: "ok"}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "register_team",
		Description: "Register a team from the upstream directory so aggregates can be attributed to it",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params registerTeamParams) (*sdkmcp.CallToolResult, statusResponse, error) {
		t := &team.Team{
			ID:          params.TeamID,
			OrgID:       params.OrgID,
			Name:        params.Name,
			MemberCount: params.MemberCount,
		}
		if params.ManagerID != "" {
			t.ManagerID = &params.ManagerID
		}
		if err := services.Teams.Create(ctx, t); err != nil {
			return nil, statusResponse{}, err
		}
		return nil, statusResponse{Status: "ok"}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "record_member_samples",
		Description: "Replace a team's anonymized per-member workload samples (no identifiers)",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params memberSamplesParams) (*sdkmcp.CallToolResult, statusResponse, error) {
		samples := make([]metric.MemberSample, len(params.Samples))
		for i, s := range params.Samples {
			samples[i] = metric.MemberSample{
				MeetingHours:     s.MeetingHours,
				AfterHoursHours:  s.AfterHoursHours,
				ResponsePressure: s.ResponsePressure,
			}
		}
		if err := services.Samples.Replace(ctx, params.TeamID, samples); err != nil {
			return nil, statusResponse{}, err
		}
		return nil, statusResponse{Status: "ok"}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "calibrate_team",
		Description: "Learn a team's behavioral baseline from the observation window",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params teamWindowParams) (*sdkmcp.CallToolResult, *baseline.Baseline, error) {
		window := params.Window
		if window <= 0 {
			window = defaults.BaselineWindow
		}
		b, err := services.Baselines.Calibrate(ctx, params.TeamID, window)
		if err != nil {
			return nil, nil, err
		}
		return nil, b, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "baseline_history",
		Description: "List a team's baseline snapshots, newest first",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params teamLimitParams) (*sdkmcp.CallToolResult, baselineHistoryResponse, error) {
		history, err := services.Baselines.History(ctx, params.TeamID, params.Limit)
		if err != nil {
			return nil, baselineHistoryResponse{}, err
		}
		return nil, baselineHistoryResponse{Snapshots: history}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "detect_drift",
		Description: "Compare the recent window against the team baseline and emit drift events",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params teamWindowParams) (*sdkmcp.CallToolResult, eventsResponse, error) {
		window := params.Window
		if window <= 0 {
			window = defaults.RecentWindow
		}
		events, err := services.Drift.Detect(ctx, params.TeamID, window)
		if err != nil {
			return nil, eventsResponse{}, err
		}
		return nil, eventsResponse{Events: events}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "drift_history",
		Description: "List a team's past drift events, newest first",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params teamLimitParams) (*sdkmcp.CallToolResult, eventsResponse, error) {
		events, err := services.Drift.History(ctx, params.TeamID, params.Limit)
		if err != nil {
			return nil, eventsResponse{}, err
		}
		return nil, eventsResponse{Events: events}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "team_scores",
		Description: "Compute the capacity, load-balance and cost-of-drift composite scores",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params teamParams) (*sdkmcp.CallToolResult, *scoring.Set, error) {
		scores, err := services.Scoring.Scores(ctx, params.TeamID)
		if err != nil {
			return nil, nil, err
		}
		return nil, scores, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "team_recommendations",
		Description: "List a team's past recommendations, newest first",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params teamLimitParams) (*sdkmcp.CallToolResult, recommendationsResponse, error) {
		recs, err := services.Recommend.History(ctx, params.TeamID, params.Limit)
		if err != nil {
			return nil, recommendationsResponse{}, err
		}
		return nil, recommendationsResponse{Recommendations: recs}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "run_team",
		Description: "Run the full pipeline for one team: calibrate, detect, score, recommend",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params teamParams) (*sdkmcp.CallToolResult, *engine.Report, error) {
		report, err := services.Engine.RunTeam(ctx, params.TeamID)
		if err != nil {
			return nil, nil, err
		}
		return nil, report, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "run_all",
		Description: "Run the full pipeline for every team; per-team failures are reported, not fatal",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params struct{}) (*sdkmcp.CallToolResult, runAllResponse, error) {
		results, err := services.Engine.RunAll(ctx)
		if err != nil {
			return nil, runAllResponse{}, err
		}
		var resp runAllResponse
		for _, result := range results {
			if result.Err != nil {
				resp.Failed = append(resp.Failed, fmt.Sprintf("%s: %v", result.TeamID, result.Err))
				continue
			}
			resp.Reports = append(resp.Reports, *result.Report)
		}
		return nil, resp, nil
	})
}
