package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeClock_AdvanceFiresInDeadlineOrder(t *testing.T) {
	c := Fake(epoch)
	var got []string
	c.AfterFunc(300*time.Millisecond, func() { got = append(got, "slow") })
	c.AfterFunc(100*time.Millisecond, func() { got = append(got, "fast") })
	c.AfterFunc(300*time.Millisecond, func() { got = append(got, "slow2") })

	c.Advance(99 * time.Millisecond)
	assert.Empty(t, got)
	assert.Equal(t, 3, c.Pending())

	c.Advance(time.Millisecond)
	assert.Equal(t, []string{"fast"}, got)

	c.Advance(time.Second)
	assert.Equal(t, []string{"fast", "slow", "slow2"}, got)
	assert.Zero(t, c.Pending())
	assert.Equal(t, epoch.Add(1100*time.Millisecond), c.Now())
}

func TestFakeClock_ZeroDelayRunsSynchronously(t *testing.T) {
	c := Fake(epoch)
	ran := false
	tm := c.AfterFunc(0, func() { ran = true })
	assert.True(t, ran)
	assert.False(t, tm.Stop())
}

func TestFakeClock_Stop(t *testing.T) {
	c := Fake(epoch)
	ran := false
	tm := c.AfterFunc(time.Second, func() { ran = true })
	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop())
	c.Advance(2 * time.Second)
	assert.False(t, ran)
}

func TestFakeClock_CallbackCanSchedule(t *testing.T) {
	c := Fake(epoch)
	n := 0
	c.AfterFunc(time.Second, func() {
		n++
		c.AfterFunc(time.Second, func() { n++ })
	})
	c.Advance(time.Second)
	assert.Equal(t, 1, n)
	c.Advance(time.Second)
	assert.Equal(t, 2, n)
}
