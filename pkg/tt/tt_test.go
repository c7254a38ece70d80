package tt

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testT implements the T interface and is used to verify the Test function's
// interaction with T.
type testT []string

func (t *testT) Helper() {}

func (t *testT) Errorf(format string, args ...any) {
	*t = append(*t, fmt.Sprintf(format, args...))
}

// Simple functions to test.

func add(x, y int) int {
	return x + y
}

func addsub(x int, y int) (int, int) {
	return x + y, x - y
}

var errNegative = errors.New("negative")

func checkPositive(x int) (int, error) {
	if x < 0 {
		return 0, fmt.Errorf("check %d: %w", x, errNegative)
	}
	return x, nil
}

func isNil(p *int) bool {
	return p == nil
}

type pair struct{ a, b int }

func swap(p pair) pair {
	return pair{p.b, p.a}
}

func TestTTPass(t *testing.T) {
	var testT testT
	Test(&testT, Fn("addsub", addsub), Table{
		Args(1, 10).Rets(11, -9),
		Args(1, 10).Rets(Any, -9),
	})
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass: %q", testT)
	}
}

func TestTTPass_WrappedError(t *testing.T) {
	var testT testT
	Test(&testT, Fn("checkPositive", checkPositive), Table{
		Args(-1).Rets(0, errNegative),
		Args(2).Rets(2, nil),
	})
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass: %q", testT)
	}
}

func TestTTPass_NilArg(t *testing.T) {
	var testT testT
	Test(&testT, Fn("isNil", isNil), Table{
		Args(nil).Rets(true),
	})
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass: %q", testT)
	}
}

func TestTTPass_Opts(t *testing.T) {
	var testT testT
	Test(&testT,
		Fn("swap", swap).Opts(cmp.AllowUnexported(pair{})),
		Table{Args(pair{1, 2}).Rets(pair{2, 1})},
	)
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass: %q", testT)
	}
}

func TestTTFailDefaultFmtOneReturn(t *testing.T) {
	var testT testT
	Test(&testT,
		Fn("add", add),
		Table{Args(1, 10).Rets(12)},
	)
	assertOneError(t, testT, "add(1, 10) returns (-want +got):\n#0:\n")
}

func TestTTFailDefaultFmtMultiReturn(t *testing.T) {
	var testT testT
	Test(&testT,
		Fn("addsub", addsub),
		Table{Args(1, 10).Rets(11, -90)},
	)
	assertOneError(t, testT, "addsub(1, 10) returns (-want +got):\n#1:\n")
}

func TestTTFailCustomFmt(t *testing.T) {
	var testT testT
	Test(&testT,
		Fn("addsub", addsub).ArgsFmt("x = %d, y = %d"),
		Table{Args(1, 10).Rets(11, -90)},
	)
	assertOneError(t, testT,
		"addsub(x = 1, y = 10) returns (-want +got):\n")
}

func TestTTFailWrongNumberOfRets(t *testing.T) {
	var testT testT
	Test(&testT,
		Fn("add", add),
		Table{Args(1, 10).Rets(11, 0)},
	)
	assertOneError(t, testT,
		"add(1, 10) returns (-want +got):\nwant 2 values, got 1\n")
}

func assertOneError(t *testing.T, testT testT, wantPrefix string) {
	t.Helper()
	switch len(testT) {
	case 0:
		t.Errorf("Test didn't error when it should have done so")
	case 1:
		if !strings.HasPrefix(testT[0], wantPrefix) {
			t.Errorf("Test wrote message:\nWanted: %q...\nActual: %q", wantPrefix, testT[0])
		}
	default:
		t.Errorf("Test wrote too many error messages")
	}
}
