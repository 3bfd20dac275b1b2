package model_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"weather-bridge/internal/domain/model"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("connection refused")
	fault := model.NewFault(model.NetworkFailure, cause)

	assert.Equal(t, model.NetworkFailure, model.KindOf(fault))
	assert.ErrorIs(t, fault, cause)

	wrapped := fmt.Errorf("fetch failed for location 7: %w", fault)
	assert.Equal(t, model.NetworkFailure, model.KindOf(wrapped))

	assert.Equal(t, model.FailureKind(""), model.KindOf(errors.New("plain")))
	assert.Equal(t, model.FailureKind(""), model.KindOf(nil))
}

func TestFaultError(t *testing.T) {
	fault := model.Faultf(model.UpstreamStatusError, "provider returned status %d", 503)
	assert.Contains(t, fault.Error(), "UPSTREAM_STATUS_ERROR")
	assert.Contains(t, fault.Error(), "503")

	bare := model.NewFault(model.ParseError, nil)
	assert.Equal(t, "PARSE_ERROR", bare.Error())
}
