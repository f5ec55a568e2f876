package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"locklight/internal/indicator"
)

func TestUrgencyForStyle(t *testing.T) {
	assert.Equal(t, urgencyLow, urgencyForStyle(indicator.StyleInactive))
	assert.Equal(t, urgencyNormal, urgencyForStyle(indicator.StyleActive))
	assert.Equal(t, urgencyCritical, urgencyForStyle(indicator.StyleNotice))
}
