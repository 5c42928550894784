package cascade

import (
	"testing"

	"github.com/npillmayer/cascade/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	reg := &Registry{}
	require.NoError(t, reg.Load())
	screen := reg.DefaultRules(false)
	assert.Equal(t, cssom.OriginUserAgent, screen.Origin)
	assert.NotEmpty(t, screen.Rules)
	assert.NotEmpty(t, reg.QuirksRules().Rules)
	hints := reg.HintRules()
	assert.Equal(t, cssom.OriginPresentational, hints.Origin)
	assert.NotEmpty(t, hints.Rules)
	// print rules include the @media print block
	assert.Greater(t, len(reg.DefaultRules(true).Rules), len(screen.Rules))
}

func TestRegistryReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cascade.engine")
	defer teardown()
	//
	reg := &Registry{}
	n := len(reg.DefaultRules(false).Rules)
	reg.Reset()
	assert.False(t, reg.loaded)
	assert.Empty(t, reg.screen.Rules)
	assert.Equal(t, n, len(reg.DefaultRules(false).Rules))
	assert.True(t, reg.loaded)
}

func TestDefaultRegistryIsShared(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
}
