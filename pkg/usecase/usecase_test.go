package usecase_test

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/secmon-lab/threatcalc/pkg/domain/types"
	"github.com/secmon-lab/threatcalc/pkg/usecase"
)

const epsilon = 1e-9

func assertClose(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("got %.12f, want %.12f", got, want)
	}
}

type observation struct {
	model       string
	probability float64
	tier        types.RiskTier
}

type recordingObserver struct {
	mu         sync.Mutex
	evaluated  []observation
	rejections map[string]int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{rejections: make(map[string]int)}
}

func (x *recordingObserver) ObserveEvaluation(_ context.Context, modelName string, probability float64, tier types.RiskTier) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.evaluated = append(x.evaluated, observation{modelName, probability, tier})
}

func (x *recordingObserver) ObserveRejection(_ context.Context, modelName string, _ error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.rejections[modelName]++
}

func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("eval-%d", n)
	}
}

func newTestUseCases(observer *recordingObserver) *usecase.UseCases {
	return usecase.New(
		usecase.WithObserver(observer),
		usecase.WithIDGenerator(sequentialIDs()),
	)
}
