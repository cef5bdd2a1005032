package argv

import "strings"

// Flags reports which diagnostic-format compatibility switches were found
// in an argument vector. The switches change report formatting only,
// never compilation semantics, and stay in the vector untouched.
type Flags struct {
	ErrorRanges bool
	VSErrors    bool
}

// Recognized compatibility switches. Matching is case-insensitive over
// the whole vector and accepts either a slash or a double-dash prefix.
var compatSwitches = []struct {
	name string
	set  func(*Flags)
}{
	{"test:ErrorRanges", func(f *Flags) { f.ErrorRanges = true }},
	{"vserrors", func(f *Flags) { f.VSErrors = true }},
}

// ScanFlags inspects every argument without consuming any of them.
// Unrelated flag-like arguments are tolerated.
func ScanFlags(args []string) Flags {
	var flags Flags
	for _, arg := range args {
		name, ok := switchName(arg)
		if !ok {
			continue
		}
		for _, sw := range compatSwitches {
			if strings.EqualFold(name, sw.name) {
				sw.set(&flags)
			}
		}
	}
	return flags
}

func switchName(arg string) (string, bool) {
	switch {
	case strings.HasPrefix(arg, "--"):
		return arg[2:], true
	case strings.HasPrefix(arg, "/"):
		return arg[1:], true
	}
	return "", false
}

// EnsureLauncher guarantees the vector starts with something that looks
// like a path to the compiler binary. An empty vector becomes a single
// placeholder; a vector whose first element does not end with the binary
// name (with or without ".exe", case-insensitively) gets the placeholder
// prepended. The backend discards the element without interpreting it.
func EnsureLauncher(args []string, exe string) []string {
	if exe == "" {
		exe = "fsc"
	}
	if len(args) == 0 {
		return []string{exe}
	}
	if isLauncherPath(args[0], exe) {
		return args
	}
	return append([]string{exe}, args...)
}

func isLauncherPath(arg, exe string) bool {
	lower := strings.ToLower(arg)
	exe = strings.ToLower(exe)
	return strings.HasSuffix(lower, exe) || strings.HasSuffix(lower, exe+".exe")
}
