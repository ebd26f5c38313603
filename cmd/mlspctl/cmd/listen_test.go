package cmd

import "testing"

func TestParseSourceValid(t *testing.T) {
	name, addr, err := parseSource("cam1@127.0.0.1:9001")
	if err != nil {
		t.Fatalf("parseSource: %v", err)
	}
	if name != "cam1" || addr != "127.0.0.1:9001" {
		t.Errorf("name=%q addr=%q", name, addr)
	}
}

func TestParseSourceMissingName(t *testing.T) {
	if _, _, err := parseSource("@127.0.0.1:9001"); err == nil {
		t.Fatal("expected an error for a missing name")
	}
}

func TestParseSourceMissingAddr(t *testing.T) {
	if _, _, err := parseSource("cam1@"); err == nil {
		t.Fatal("expected an error for a missing address")
	}
}

func TestParseSourceNoSeparator(t *testing.T) {
	if _, _, err := parseSource("127.0.0.1:9001"); err == nil {
		t.Fatal("expected an error when '@' is missing")
	}
}
