package presenter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
	"github.com/secmon-lab/threatcalc/pkg/presenter"
	"github.com/secmon-lab/threatcalc/pkg/usecase"
)

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00%"},
		{0.14, "14.00%"},
		{0.0312, "3.12%"},
		{0.12345, "12.35%"},
		{0.00873, "0.87%"},
		{1, "100.00%"},
	}
	for _, tt := range tests {
		gt.Value(t, presenter.FormatPercent(tt.in)).Equal(tt.want)
	}
}

func TestText_ThreatProfile(t *testing.T) {
	profile, err := usecase.New().Threat.EvaluateProfile(context.Background(), model.DefaultThreatProfileInput())
	gt.NoError(t, err).Required()

	var buf bytes.Buffer
	gt.NoError(t, presenter.NewText(&buf, presenter.WithColor(false)).ThreatProfile(profile)).Required()

	out := buf.String()
	gt.String(t, out).Contains("Raw Threat")
	gt.String(t, out).Contains("14.00%  Risk Tier: 🟠 Significant")
	gt.String(t, out).Contains("Risk Tier: 🟡 Moderate")
	gt.String(t, out).Contains("0.87%  Risk Tier: 🟢 Low")
	gt.String(t, out).Contains("CVEO Risk Profile (Success Probability)")
	gt.Bool(t, strings.Contains(out, "\x1b[")).False()
}

func TestText_Chart(t *testing.T) {
	chart := model.NewChart("Title", "Axis", model.ChartVertical,
		model.ChartBar{Label: "full", Value: 0.5},
		model.ChartBar{Label: "half", Value: 0.25},
		model.ChartBar{Label: "zero", Value: 0},
	)

	var buf bytes.Buffer
	gt.NoError(t, presenter.NewText(&buf, presenter.WithColor(false), presenter.WithBarWidth(12)).Chart(chart)).Required()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	gt.Array(t, lines).Length(4).Required()
	// limit is 0.6, so 0.5 fills 10 of 12 cells and 0.25 fills 5
	gt.Number(t, strings.Count(lines[1], "█")).Equal(10)
	gt.Number(t, strings.Count(lines[2], "█")).Equal(5)
	gt.Number(t, strings.Count(lines[3], "█")).Equal(0)
	gt.String(t, lines[3]).Contains("0.00%")
}

func TestText_ComplexityReport(t *testing.T) {
	report, err := usecase.New().Complexity.Evaluate(context.Background(), model.DefaultComplexitySplitParameters())
	gt.NoError(t, err).Required()

	var buf bytes.Buffer
	gt.NoError(t, presenter.NewText(&buf, presenter.WithColor(false)).ComplexityReport(report)).Required()
	gt.String(t, buf.String()).Contains("13.12%  Risk Tier: 🟠 Significant")
	gt.String(t, buf.String()).Contains("30.00%")
	gt.String(t, buf.String()).Contains("Undetected (Low Complexity)")
}

func TestText_Sweep(t *testing.T) {
	points, err := usecase.New().Sweep(context.Background(), model.DefaultThreatProfileInput(), model.ParamAttackGivenIntent, 4)
	gt.NoError(t, err).Required()

	var buf bytes.Buffer
	gt.NoError(t, presenter.NewText(&buf, presenter.WithColor(false)).Sweep(model.ParamAttackGivenIntent, points)).Required()
	gt.String(t, buf.String()).Contains("attack_given_intent")
	gt.String(t, buf.String()).Contains("1.0000")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, presenter.JSON(&buf, model.DefaultComplexitySplitParameters())).Required()

	var decoded map[string]float64
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &decoded)).Required()
	gt.Value(t, decoded["probability_low_complexity"]).Equal(0.7)
}
