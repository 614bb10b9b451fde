package metrics_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/secmon-lab/threatcalc/pkg/domain/model"
	"github.com/secmon-lab/threatcalc/pkg/domain/types"
	"github.com/secmon-lab/threatcalc/pkg/service/metrics"
)

func TestCollector(t *testing.T) {
	ctx := context.Background()
	c := metrics.New()

	c.ObserveEvaluation(ctx, "raw", 0.14, types.RiskTierSignificant)
	c.ObserveEvaluation(ctx, "raw", 0.2, types.RiskTierHigh)
	c.ObserveRejection(ctx, "raw", model.ValidateProbability("attack_given_intent", 2))
	c.ObserveRejection(ctx, "raw", errors.New("unexpected"))

	count, err := testutil.GatherAndCount(c.Registry(), "threatcalc_evaluations_total")
	gt.NoError(t, err).Required()
	gt.Value(t, count).Equal(2)

	count, err = testutil.GatherAndCount(c.Registry(), "threatcalc_rejections_total")
	gt.NoError(t, err).Required()
	gt.Value(t, count).Equal(2)

	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	gt.Value(t, w.Code).Equal(http.StatusOK)
	gt.String(t, w.Body.String()).Contains(`threatcalc_evaluations_total{model="raw",tier="SIGNIFICANT"} 1`)
	gt.String(t, w.Body.String()).Contains(`threatcalc_rejections_total{model="raw",reason="domain_violation"} 1`)
	gt.String(t, w.Body.String()).Contains(`threatcalc_rejections_total{model="raw",reason="other"} 1`)
}
