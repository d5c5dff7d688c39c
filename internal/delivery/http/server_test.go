package http

import (
	stdhttp "net/http"
	"testing"
	"time"

	"closet/config"

	"github.com/stretchr/testify/assert"
)

func TestApplyTimeouts(t *testing.T) {
	server := &stdhttp.Server{}
	applyTimeouts(server, config.HTTPTimeouts{
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	})

	assert.Equal(t, 10*time.Second, server.ReadTimeout)
	assert.Equal(t, 5*time.Second, server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, server.WriteTimeout)
	assert.Equal(t, 60*time.Second, server.IdleTimeout)
}

func TestApplyTimeouts_ZeroLeavesLimitsOff(t *testing.T) {
	server := &stdhttp.Server{}
	applyTimeouts(server, config.HTTPTimeouts{})

	assert.Zero(t, server.ReadTimeout)
	assert.Zero(t, server.WriteTimeout)
}
