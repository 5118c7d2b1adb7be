package jeebie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-jeebie/jeebie/memory"
)

func TestNew_StartsWithNoCartridge(t *testing.T) {
	e := New()
	assert.NotNil(t, e.GetCPU())
	assert.NotNil(t, e.GetMMU())
	assert.Equal(t, uint16(0x0100), e.GetCPU().PC())
}

func TestNewWithFile_MissingFileReturnsError(t *testing.T) {
	_, err := NewWithFile("/nonexistent/rom.gb")
	assert.Error(t, err)
}

func TestRunUntilFrame_AdvancesFrameCount(t *testing.T) {
	e := New()
	e.RunUntilFrame()
	assert.Equal(t, uint64(1), e.GetFrameCount())
	assert.True(t, e.GetInstructionCount() > 0)
}

func TestRunUntilFrame_ProducesAFullFramebuffer(t *testing.T) {
	e := New()
	e.RunUntilFrame()
	frame := e.GetCurrentFrame()
	assert.NotNil(t, frame)
	assert.Equal(t, 160*144, len(frame.ToSlice()))
}

func TestPressAndReleaseButton_ReachJoypadRegister(t *testing.T) {
	e := New()
	mmu := e.GetMMU()

	mmu.Write(0xFF00, 0x20) // select the d-pad group
	before := mmu.Read(0xFF00)
	e.PressButton(memory.ButtonUp)
	after := mmu.Read(0xFF00)
	assert.NotEqual(t, before, after, "pressing Up should clear its bit in P1")

	e.ReleaseButton(memory.ButtonUp)
	assert.Equal(t, before, mmu.Read(0xFF00))
}
