package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), append([]string{"mapcheck"}, args...))
	return out.String(), err
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	want := "ok cellar 8x6 players=0 warps=1\nok meadow 12x10 players=1 warps=1\n"
	if out != want {
		t.Fatalf("validate output:\n%s\nwant:\n%s", out, want)
	}
}

func TestView(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "centered_on_player",
			args: []string{"view", "--width", "5", "--height", "3", "meadow"},
			want: "#tggg\n#g@dd\n#gggg\n",
		},
		{
			name: "off_the_edge",
			args: []string{"view", "--x", "0", "--y", "0", "--width", "3", "--height", "3", "cellar"},
			want: "   \n ##\n #s\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			if err != nil {
				t.Fatalf("view: %v", err)
			}
			if out != tc.want {
				t.Fatalf("view output:\n%q\nwant:\n%q", out, tc.want)
			}
		})
	}
}

func TestDump(t *testing.T) {
	out, err := run(t, "dump", "cellar")
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(out, `Name: (string) (len=6) "cellar"`) {
		t.Fatalf("dump output missing level name:\n%s", out)
	}
}

func TestUnknownLevel(t *testing.T) {
	if _, err := run(t, "validate", "attic"); err == nil {
		t.Fatalf("validate attic should fail")
	}
	if _, err := run(t, "view"); err == nil {
		t.Fatalf("view without a level should fail")
	}
}
