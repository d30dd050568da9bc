package phases_test

import (
	"testing"

	"github.com/Quod-Financial/quantreplay-sub002/core/phases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsOpenResumed(t *testing.T) {
	var p phases.Phase

	assert.Equal(t, phases.PhaseOpen, p.Phase())
	assert.Equal(t, phases.StatusResume, p.Status())
	assert.True(t, p.AcceptsOrders())
	assert.True(t, p.AcceptsCancels())
}

func TestClosedPhaseForcesHalt(t *testing.T) {
	p := phases.New(phases.PhaseClosed, phases.StatusResume, nil)

	assert.Equal(t, phases.PhaseClosed, p.Phase())
	assert.Equal(t, phases.StatusHalt, p.Status())
	assert.False(t, p.AcceptsOrders())
	assert.False(t, p.AcceptsCancels())
}

func TestClosedPhaseDropsSettings(t *testing.T) {
	p := phases.New(phases.PhaseClosed, phases.StatusHalt,
		&phases.Settings{AllowCancels: true})

	assert.Nil(t, p.Settings())
	assert.False(t, p.AcceptsCancels())
}

func TestResumedPhaseDropsSettings(t *testing.T) {
	p := phases.New(phases.PhaseOpen, phases.StatusResume,
		&phases.Settings{AllowCancels: true})

	assert.Nil(t, p.Settings())
	assert.True(t, p.AcceptsOrders())
	assert.True(t, p.AcceptsCancels())
}

func TestExplicitHaltKeepsSettings(t *testing.T) {
	p := phases.New(phases.PhaseOpen, phases.StatusHalt,
		&phases.Settings{AllowCancels: true})

	settings := p.Settings()
	require.NotNil(t, settings)
	assert.True(t, settings.AllowCancels)

	assert.False(t, p.AcceptsOrders())
	assert.True(t, p.AcceptsCancels())
}

func TestExplicitHaltWithoutCancelPermission(t *testing.T) {
	p := phases.New(phases.PhaseOpen, phases.StatusHalt,
		&phases.Settings{AllowCancels: false})

	assert.False(t, p.AcceptsOrders())
	assert.False(t, p.AcceptsCancels())
}

func TestSettingsAreCopiedBothWays(t *testing.T) {
	in := &phases.Settings{AllowCancels: true}
	p := phases.New(phases.PhaseOpen, phases.StatusHalt, in)

	// mutating the input after construction changes nothing
	in.AllowCancels = false
	require.NotNil(t, p.Settings())
	assert.True(t, p.Settings().AllowCancels)

	// mutating the returned settings changes nothing either
	out := p.Settings()
	out.AllowCancels = false
	assert.True(t, p.Settings().AllowCancels)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "open/halt",
		phases.New(phases.PhaseOpen, phases.StatusHalt, nil).String())
	assert.Equal(t, "closed/halt",
		phases.New(phases.PhaseClosed, phases.StatusResume, nil).String())
}
