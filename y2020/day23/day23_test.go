package day23

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample(t *testing.T) {
	c, err := NewCircle("389125467", 0)
	require.NoError(t, err)
	assert.Equal(t, "25467389", c.Labels())

	c.Move()
	assert.Equal(t, "54673289", c.Labels())

	require.NoError(t, c.Play(9, nil))
	assert.Equal(t, "92658374", c.Labels())
	require.NoError(t, c.Play(90, nil))
	assert.Equal(t, "67384529", c.Labels())
}

func TestMillionCups(t *testing.T) {
	if testing.Short() {
		t.Skip("ten million moves")
	}
	c, err := NewCircle("389125467", Cups)
	require.NoError(t, err)
	require.NoError(t, c.Play(Moves, nil))
	assert.Equal(t, []int{934001, 159792}, c.After(2))
}

func TestNewCircle(t *testing.T) {
	c, err := NewCircle("312", 5)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 5, 3}, c.After(10))

	for _, labels := range []string{"1223", "104", "12a"} {
		_, err := NewCircle(labels, 0)
		assert.Error(t, err, labels)
	}
}

func TestPlay_cancel(t *testing.T) {
	c, err := NewCircle("389125467", 0)
	require.NoError(t, err)
	stop := errors.New("stop")
	assert.ErrorIs(t, c.Play(10, func() error { return stop }), stop)
	assert.Equal(t, "25467389", c.Labels(), "no moves made")
}
