package presenter

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
	"github.com/secmon-lab/threatcalc/pkg/domain/types"
)

const defaultBarWidth = 40

// FormatPercent formats a probability as a percentage with two decimals, e.g. 0.1312 -> "13.12%"
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}

// Text renders evaluation results for terminals
type Text struct {
	w        io.Writer
	colored  bool
	barWidth int
}

type Option func(*Text)

// WithColor enables or disables ANSI colors
func WithColor(enabled bool) Option {
	return func(x *Text) {
		x.colored = enabled
	}
}

// WithBarWidth sets the width in characters of a full scale bar
func WithBarWidth(width int) Option {
	return func(x *Text) {
		if width > 0 {
			x.barWidth = width
		}
	}
}

func NewText(w io.Writer, opts ...Option) *Text {
	x := &Text{
		w:        w,
		colored:  !color.NoColor,
		barWidth: defaultBarWidth,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// printer keeps the first write error so rendering code can stay linear
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (x *Text) paint(attr color.Attribute, s string) string {
	c := color.New(attr)
	if x.colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func tierAttribute(tier types.RiskTier) color.Attribute {
	switch tier {
	case types.RiskTierLow:
		return color.FgGreen
	case types.RiskTierModerate:
		return color.FgYellow
	case types.RiskTierSignificant:
		return color.FgHiRed
	case types.RiskTierHigh:
		return color.FgRed
	default:
		return color.Reset
	}
}

func barAttribute(hex string) color.Attribute {
	switch strings.ToLower(hex) {
	case "#d62728":
		return color.FgRed
	case "#ff7f0e":
		return color.FgYellow
	case "#2ca02c":
		return color.FgGreen
	default:
		return color.FgCyan
	}
}

func (x *Text) tier(tier types.RiskTier) string {
	return x.paint(tierAttribute(tier), tier.Label())
}

// ThreatProfile renders the three metrics with their tiers followed by the chart
func (x *Text) ThreatProfile(profile *model.ThreatProfile) error {
	p := &printer{w: x.w}
	p.printf("%s\n", x.paint(color.Bold, "CVEO Threat Risk Estimator"))
	for _, a := range profile.Assessments() {
		p.printf("  %-24s %8s  Risk Tier: %s\n", a.Label+" Threat", FormatPercent(a.Probability), x.tier(a.Tier))
	}
	p.printf("\n")
	if p.err != nil {
		return goerr.Wrap(p.err, "failed to render threat profile")
	}
	return x.Chart(profile.Chart)
}

// ComplexityReport renders the overall estimate, its breakdown and the chart
func (x *Text) ComplexityReport(report *model.ComplexityReport) error {
	p := &printer{w: x.w}
	p.printf("%s\n", x.paint(color.Bold, "Complexity Split Risk Estimate"))
	p.printf("  %-30s %8s  Risk Tier: %s\n", "Overall Success Probability", FormatPercent(report.Estimate.Probability), x.tier(report.Tier))
	p.printf("  %-30s %8s\n", "High Complexity Share", FormatPercent(report.Parameters.ProbabilityHighComplexity()))
	p.printf("\n")
	if p.err != nil {
		return goerr.Wrap(p.err, "failed to render complexity report")
	}
	return x.Chart(report.Chart)
}

// Chart renders bars scaled to the chart limit, labelled with percentages
func (x *Text) Chart(chart model.Chart) error {
	p := &printer{w: x.w}
	p.printf("%s (%s)\n", x.paint(color.Bold, chart.Title), chart.AxisLabel)

	labelWidth := 0
	for _, b := range chart.Bars {
		labelWidth = max(labelWidth, len(b.Label))
	}

	for _, b := range chart.Bars {
		n := 0
		if chart.Limit > 0 {
			n = int(math.Round(b.Value / chart.Limit * float64(x.barWidth)))
		}
		n = min(max(n, 0), x.barWidth)
		bar := x.paint(barAttribute(b.Color), strings.Repeat("█", n))
		p.printf("  %-*s %s%s %s\n", labelWidth, b.Label, bar, strings.Repeat(" ", x.barWidth-n), FormatPercent(b.Value))
	}

	if p.err != nil {
		return goerr.Wrap(p.err, "failed to render chart")
	}
	return nil
}

// Sweep renders one line per sweep point
func (x *Text) Sweep(parameter string, points []model.SweepPoint) error {
	p := &printer{w: x.w}
	p.printf("%s\n", x.paint(color.Bold, "Sensitivity of residual threat to "+parameter))
	p.printf("  %8s %10s %10s  %s\n", "value", "raw", "residual", "tier")
	for _, pt := range points {
		p.printf("  %8.4f %10s %10s  %s\n", pt.Value, FormatPercent(pt.Raw), FormatPercent(pt.Residual), x.tier(pt.Tier))
	}
	if p.err != nil {
		return goerr.Wrap(p.err, "failed to render sweep")
	}
	return nil
}

// Batch renders every scenario result under its name
func (x *Text) Batch(results []model.ScenarioResult) error {
	for i, r := range results {
		p := &printer{w: x.w}
		if i > 0 {
			p.printf("\n")
		}
		p.printf("%s %s\n", x.paint(color.FgCyan, "==="), x.paint(color.Bold, r.Name))
		if p.err != nil {
			return goerr.Wrap(p.err, "failed to render batch")
		}

		switch {
		case r.Threat != nil:
			if err := x.ThreatProfile(r.Threat); err != nil {
				return err
			}
		case r.Complexity != nil:
			if err := x.ComplexityReport(r.Complexity); err != nil {
				return err
			}
		}
	}
	return nil
}

// JSON writes v as indented JSON
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode JSON")
	}
	return nil
}
