package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasePath(t *testing.T) {
	assert.True(t, RootBase.Valid())
	assert.True(t, ParentMarker.Valid())
	assert.False(t, BasePath("../../").Valid())
	assert.False(t, BasePath("/").Valid())

	assert.Equal(t, "walkabout", RootBase.Prefix("walkabout"))
	assert.Equal(t, "../walkabout", ParentMarker.Prefix("walkabout"))
	assert.Equal(t, "../", ParentMarker.Prefix(""))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "injected", Injected.String())
	assert.Equal(t, "optimized", Optimized.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", Status(42).String())
}

func TestSummaryAdd(t *testing.T) {
	var summary Summary

	summary.Add(Generated)
	summary.Add(Generated)
	summary.Add(Skipped)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, map[Status]int{Generated: 2, Skipped: 1}, summary.Counts)
}
