package internal

import (
	"testing"
	"time"
)

func TestBreakInterruptsWait(t *testing.T) {
	interp := NewInterpreter()

	done := make(chan error, 1)
	go func() {
		_, err := interp.Execute(`wait 600`)
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	interp.Break("test break")

	select {
	case err := <-done:
		le, ok := err.(*LogoError)
		if !ok || le.Kind != KindInterruption {
			t.Fatalf("expected KindInterruption, got %v", err)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Execute did not return promptly after Break")
	}
}

func TestAlreadyRunningRejectsReentry(t *testing.T) {
	interp := NewInterpreter()

	go func() {
		interp.Execute(`wait 600`)
	}()

	time.Sleep(50 * time.Millisecond)

	_, err := interp.Execute(`print 1`)
	if err == nil {
		t.Fatal("expected already-running error for concurrent Execute")
	}
	le, ok := err.(*LogoError)
	if !ok || le.Kind != KindInterruption {
		t.Fatalf("expected KindInterruption for already-running, got %v", err)
	}

	interp.Break("cleanup")
}

func TestPauseParksCheckBreakUntilContinue(t *testing.T) {
	c := newControl()
	c.pause()

	done := make(chan struct{})
	go func() {
		c.checkBreak()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("checkBreak returned before continueRun was called")
	case <-time.After(50 * time.Millisecond):
	}

	c.continueRun()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("checkBreak did not resume after continueRun")
	}
}
