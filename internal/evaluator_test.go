package internal

import "testing"

// capturingInterpreter builds an Interpreter whose OnPrint hook appends
// every printed line to a slice, so a test can assert on exactly what a
// program printed.
func capturingInterpreter() (*Interpreter, *[]string) {
	interp := NewInterpreter()
	printed := []string{}
	interp.OnPrint = func(s string) {
		printed = append(printed, s)
	}
	return interp, &printed
}

func runAndCapture(t *testing.T, source string) []string {
	t.Helper()
	interp, printed := capturingInterpreter()
	if _, err := interp.Execute(source); err != nil {
		t.Fatalf("Execute(%q) failed: %v", source, err)
	}
	return *printed
}

func TestPrecedenceAndAssociativity(t *testing.T) {
	got := runAndCapture(t, `print 1 + 2 * 3 - 4`)
	if len(got) != 1 || got[0] != "3" {
		t.Fatalf("got %v, want [3]", got)
	}
}

func TestProcedureWithOutput(t *testing.T) {
	interp, printed := capturingInterpreter()
	_, err := interp.Execute(`to sq :n output :n * :n end print sq 7`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(*printed) != 1 || (*printed)[0] != "49" {
		t.Fatalf("got %v, want [49]", *printed)
	}

	// sq must remain defined across Execute calls on the same interpreter.
	if _, err := interp.Execute(`print sq 3`); err != nil {
		t.Fatalf("sq should still be defined: %v", err)
	}
	if len(*printed) != 2 || (*printed)[1] != "9" {
		t.Fatalf("got %v, want second entry 9", *printed)
	}
}

func TestStopShortCircuitsRepeat(t *testing.T) {
	got := runAndCapture(t, `to f repeat 10 [ print 1 stop print 2 ] end f`)
	if len(got) != 1 || got[0] != "1" {
		t.Fatalf("got %v, want exactly one print of 1", got)
	}
}

func TestListManipulation(t *testing.T) {
	got := runAndCapture(t, `print first butfirst [a b c]`)
	if len(got) != 1 || got[0] != "b" {
		t.Fatalf("got %v, want [b]", got)
	}

	got2 := runAndCapture(t, `print count [a [b c] d]`)
	if len(got2) != 1 || got2[0] != "3" {
		t.Fatalf("got %v, want [3]", got2)
	}
}

func TestUnaryMinus(t *testing.T) {
	got := runAndCapture(t, `print -3 + 4`)
	if len(got) != 1 || got[0] != "1" {
		t.Fatalf("got %v, want [1]", got)
	}
}

func TestBinaryMinusWithoutSpaceIsSyntaxError(t *testing.T) {
	interp, _ := capturingInterpreter()
	_, err := interp.Execute(`print 3 -4`)
	if err == nil {
		t.Fatal("two adjacent literals with nothing to combine them must be a syntax error")
	}
	le, ok := err.(*LogoError)
	if !ok || le.Kind != KindSyntax {
		t.Fatalf("expected KindSyntax, got %v", err)
	}
}

func TestUnboundProcedureErrors(t *testing.T) {
	interp, _ := capturingInterpreter()
	_, err := interp.Execute(`frobnicate 1`)
	le, ok := err.(*LogoError)
	if !ok || le.Kind != KindUnbound {
		t.Fatalf("expected KindUnbound, got %v", err)
	}
}

func TestVariadicCallForm(t *testing.T) {
	got := runAndCapture(t, `print (sum 1 2 3 4)`)
	if len(got) != 1 || got[0] != "10" {
		t.Fatalf("got %v, want [10]", got)
	}
}

func TestIfEvaluatesChosenBranchOnly(t *testing.T) {
	got := runAndCapture(t, `if 1 < 2 [ print "yes ] print "after`)
	if len(got) != 2 || got[0] != "yes" || got[1] != "after" {
		t.Fatalf("got %v", got)
	}
}
