package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
)

func TestNewChart(t *testing.T) {
	t.Run("limit leaves headroom over the tallest bar", func(t *testing.T) {
		c := model.NewChart("title", "axis", model.ChartVertical,
			model.ChartBar{Label: "a", Value: 0.14},
			model.ChartBar{Label: "b", Value: 0.03},
		)
		assertClose(t, c.Limit, 0.168)
		gt.Array(t, c.Bars).Length(2)
	})

	t.Run("small values use the minimum limit", func(t *testing.T) {
		c := model.NewChart("title", "axis", model.ChartHorizontal,
			model.ChartBar{Label: "a", Value: 0.001},
		)
		assertClose(t, c.Limit, 0.012)
	})

	t.Run("no bars", func(t *testing.T) {
		c := model.NewChart("title", "axis", model.ChartVertical)
		assertClose(t, c.Limit, 0.012)
		gt.Array(t, c.Bars).Length(0)
	})
}
