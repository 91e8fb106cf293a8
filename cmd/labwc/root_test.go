package main

import "testing"

func TestNewRootCmdRegistersStartupFlag(t *testing.T) {
	cmd := newRootCmd()
	flag := cmd.Flags().Lookup("startup")
	if flag == nil {
		t.Fatal("expected a --startup/-s flag")
	}
	if flag.Shorthand != "s" {
		t.Fatalf("expected startup flag shorthand 's', got %q", flag.Shorthand)
	}
}
