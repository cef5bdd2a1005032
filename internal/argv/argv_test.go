package argv

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "a b c", []string{"a", "b", "c"}},
		{"quoted span", `"a b" c`, []string{"a b", "c"}},
		{"empty", "", nil},
		{"spaces only", "   ", nil},
		{"repeated separators", "a   b", []string{"a", "b"}},
		{"quote in the middle", `out"in between"side`, []string{"outin betweenside"}},
		{"unterminated quote", `a "b c`, []string{"a", "b c"}},
		{"adjacent quotes drop", `""a`, []string{"a"}},
		{"flag-looking args", `fsc /vserrors --test:ErrorRanges file.fs`, []string{"fsc", "/vserrors", "--test:ErrorRanges", "file.fs"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Split(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Split(%q) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSplitNeverProducesEmptyTokens(t *testing.T) {
	for _, in := range []string{"", " ", `""`, `" "`, `a  ""  b`, `  "x"  `} {
		for _, tok := range Split(in) {
			if tok == "" {
				t.Fatalf("Split(%q) produced an empty token", in)
			}
		}
	}
}

func TestScanFlags(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want Flags
	}{
		{"none", []string{"fsc", "file.fs"}, Flags{}},
		{"error ranges slash", []string{"/test:ErrorRanges"}, Flags{ErrorRanges: true}},
		{"error ranges dashes", []string{"--test:errorranges"}, Flags{ErrorRanges: true}},
		{"vserrors upper", []string{"--VSERRORS"}, Flags{VSErrors: true}},
		{"vserrors slash", []string{"/vserrors"}, Flags{VSErrors: true}},
		{"both after other args", []string{"fsc", "-o:out.dll", "/vserrors", "x.fs", "/test:ErrorRanges"}, Flags{ErrorRanges: true, VSErrors: true}},
		{"no prefix means no match", []string{"vserrors"}, Flags{}},
		{"empty vector", nil, Flags{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScanFlags(tc.args); got != tc.want {
				t.Fatalf("ScanFlags(%v) = %+v, want %+v", tc.args, got, tc.want)
			}
		})
	}
}

func TestEnsureLauncher(t *testing.T) {
	if got := EnsureLauncher(nil, "fsc"); !reflect.DeepEqual(got, []string{"fsc"}) {
		t.Fatalf("empty vector: got %#v", got)
	}
	if got := EnsureLauncher([]string{"file.fs"}, "fsc"); !reflect.DeepEqual(got, []string{"fsc", "file.fs"}) {
		t.Fatalf("missing launcher: got %#v", got)
	}
	for _, first := range []string{"fsc", "FSC.exe", "/usr/bin/fsc", `C:\tools\Fsc.EXE`} {
		got := EnsureLauncher([]string{first, "file.fs"}, "fsc")
		if len(got) != 2 || got[0] != first {
			t.Fatalf("launcher %q should be kept, got %#v", first, got)
		}
	}
}
