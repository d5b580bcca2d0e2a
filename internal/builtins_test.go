package internal

import "testing"

func TestPredicates(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{`print emptyp []`, "true"},
		{`print emptyp [a]`, "false"},
		{`print equalp [1 2] [1 2]`, "true"},
		{`print listp [1]`, "true"},
		{`print listp 1`, "false"},
		{`print memberp "b [a b c]`, "true"},
		{`print memberp "z [a b c]`, "false"},
		{`print numberp 1`, "true"},
		{`print numberp "a`, "false"},
		{`print wordp "a`, "true"},
	}
	for _, c := range cases {
		got := runAndCapture(t, c.source)
		if len(got) != 1 || got[0] != c.want {
			t.Errorf("%s: got %v, want [%s]", c.source, got, c.want)
		}
	}
}

func TestVariablesMakeLocalGlobal(t *testing.T) {
	got := runAndCapture(t, `make "x 5 print thing "x`)
	if len(got) != 1 || got[0] != "5" {
		t.Fatalf("got %v, want [5]", got)
	}

	got2 := runAndCapture(t, `
		to f
			global "g
			make "g 42
		end
		f
		print thing "g
	`)
	if len(got2) != 1 || got2[0] != "42" {
		t.Fatalf("global should be visible outside the procedure that declared it: got %v", got2)
	}
}

func TestPush(t *testing.T) {
	got := runAndCapture(t, `make "stack [2 3] push "stack 1 print thing "stack`)
	if len(got) != 1 || got[0] != "[1 2 3]" {
		t.Fatalf("got %v, want [[1 2 3]]", got)
	}
}

func TestIfElseEvaluatesOnlyChosenBranch(t *testing.T) {
	got := runAndCapture(t, `ifelse 1 > 2 [ print "then ] [ print "else ]`)
	if len(got) != 1 || got[0] != "else" {
		t.Fatalf("got %v, want [else]", got)
	}
}

func TestTemplatesApplyForeachMap(t *testing.T) {
	got := runAndCapture(t, `print apply "sum [1 2 3]`)
	if len(got) != 1 || got[0] != "6" {
		t.Fatalf("got %v, want [6]", got)
	}

	got2 := runAndCapture(t, `foreach [1 2 3] [[x] print :x]`)
	want2 := []string{"1", "2", "3"}
	if len(got2) != len(want2) {
		t.Fatalf("got %v, want %v", got2, want2)
	}
	for i := range want2 {
		if got2[i] != want2[i] {
			t.Fatalf("got %v, want %v", got2, want2)
		}
	}

	got3 := runAndCapture(t, `print map [[x] :x * :x] [1 2 3]`)
	if len(got3) != 1 || got3[0] != "1 4 9" {
		t.Fatalf("got %v, want [1 4 9]", got3)
	}
}

func TestForeachLockStepStopsAtShortestSource(t *testing.T) {
	got := runAndCapture(t, `(foreach [1 2 3] [10 20] [[a b] print word :a :b])`)
	want := []string{"110", "220"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestAliasesOpBfBl(t *testing.T) {
	got := runAndCapture(t, `
		to f op 5 end
		print f
	`)
	if len(got) != 1 || got[0] != "5" {
		t.Fatalf("op should alias output: got %v", got)
	}

	got2 := runAndCapture(t, `print bf [a b c]`)
	if len(got2) != 1 || got2[0] != "b c" {
		t.Fatalf("bf should alias butfirst: got %v", got2)
	}

	got3 := runAndCapture(t, `print bl [a b c]`)
	if len(got3) != 1 || got3[0] != "a b" {
		t.Fatalf("bl should alias butlast: got %v", got3)
	}
}
