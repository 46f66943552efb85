package scoring

import (
	"testing"

	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestClassifyTime(t *testing.T) {
	tests := []struct {
		timeTakenMs int
		behavior    models.TimeBehavior
		adjustment  int
	}{
		{0, models.TimeBehaviorTooFast, -20},
		{14999, models.TimeBehaviorTooFast, -20},
		{15000, models.TimeBehaviorOptimal, 0},
		{29999, models.TimeBehaviorOptimal, 0},
		{30000, models.TimeBehaviorOptimal, 5},
		{60000, models.TimeBehaviorOptimal, 5},
		{TooSlowFromMs, models.TimeBehaviorTooSlow, -20},
		{-1, models.TimeBehaviorTooFast, -20},
	}

	for _, tt := range tests {
		behavior, adjustment := ClassifyTime(tt.timeTakenMs)
		assert.Equal(t, tt.behavior, behavior, "time %d", tt.timeTakenMs)
		assert.Equal(t, tt.adjustment, adjustment, "time %d", tt.timeTakenMs)
	}
}
