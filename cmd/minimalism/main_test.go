package main

import (
	"errors"
	"testing"
)

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr, expected string
	}{
		{":23234", "23234"},
		{"localhost:2222", "2222"},
		{"[::1]:22", "22"},
		{"2222", "2222"},
	}

	for _, tc := range tests {
		if got := portOf(tc.addr); got != tc.expected {
			t.Errorf("portOf(%q) = %q, expected %q", tc.addr, got, tc.expected)
		}
	}
}

func TestSplitJoined(t *testing.T) {
	a, b := errors.New("a"), errors.New("b")

	if got := splitJoined(errors.Join(a, b)); len(got) != 2 {
		t.Errorf("splitJoined(joined) = %v, expected 2 errors", got)
	}
	if got := splitJoined(a); len(got) != 1 || got[0] != a {
		t.Errorf("splitJoined(single) = %v", got)
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"play": false, "menu": false, "levels": false, "scores": false, "serve": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}

	for _, flag := range []string{"fps", "db", "config", "levels", "log-level", "log-file", "jump", "on-last"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("global flag --%s missing", flag)
		}
	}
	if playCmd.Flags().Lookup("watch") == nil {
		t.Error("play --watch missing")
	}
}
