package model

// ChartOrientation selects vertical or horizontal bars
type ChartOrientation string

const (
	ChartVertical   ChartOrientation = "vertical"
	ChartHorizontal ChartOrientation = "horizontal"
)

// Minimum value axis limit, so an all-zero chart still has a visible scale
const minChartLimit = 0.01

// chartHeadroom leaves space above the tallest bar for its value label
const chartHeadroom = 1.2

// ChartBar is a single labelled bar
type ChartBar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Chart is a renderer independent description of a bar chart
type Chart struct {
	Title       string           `json:"title"`
	AxisLabel   string           `json:"axis_label"`
	Orientation ChartOrientation `json:"orientation"`
	Limit       float64          `json:"limit"`
	Bars        []ChartBar       `json:"bars"`
}

// NewChart builds a chart whose value axis spans [0, max(0.01, max bar) × 1.2]
func NewChart(title, axisLabel string, orientation ChartOrientation, bars ...ChartBar) Chart {
	peak := minChartLimit
	for _, b := range bars {
		if b.Value > peak {
			peak = b.Value
		}
	}

	return Chart{
		Title:       title,
		AxisLabel:   axisLabel,
		Orientation: orientation,
		Limit:       peak * chartHeadroom,
		Bars:        bars,
	}
}
