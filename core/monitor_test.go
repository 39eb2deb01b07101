package core

import "testing"

func TestCheckMonitorIndex(t *testing.T) {
	cases := []struct {
		name     string
		count    int
		index    int
		wantCode int
	}{
		{"no monitors", 0, 0, ExitNoMonitors},
		{"no monitors high index", 0, 5, ExitNoMonitors},
		{"index out of range", 1, 5, ExitInvalidMonitor},
		{"index just past end", 2, 2, ExitInvalidMonitor},
		{"first monitor", 1, 0, 0},
		{"last monitor", 3, 2, 0},
	}
	for _, tc := range cases {
		err := checkMonitorIndex(tc.count, tc.index)
		if tc.wantCode == 0 {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("%s: expected a startup error", tc.name)
			continue
		}
		if got := ExitCode(err); got != tc.wantCode {
			t.Errorf("%s: exit code %d, want %d", tc.name, got, tc.wantCode)
		}
	}
}

func TestExitCodeFallsBackToOne(t *testing.T) {
	if got := ExitCode(errStub("boom")); got != 1 {
		t.Errorf("plain errors should map to exit 1, got %d", got)
	}
}

type errStub string

func (e errStub) Error() string { return string(e) }
