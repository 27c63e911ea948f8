package naming

import "testing"

func TestFlagName(t *testing.T) {
	tests := []struct {
		field  string
		prefix string
		want   string
	}{
		{"to_stderr", "log-", "log-to-stderr"},
		{"to_stderr", "log_", "log_to_stderr"},
		{"dir", "", "dir"},
		{"to_stderr", "", "to_stderr"},
		{"charset", "pw", "pw-charset"},
		{"length", "pw", "pw-length"},
		{"max_open_files", "db-", "db-max-open-files"},
		{"max_open_files", "db_", "db_max_open_files"},
		{"dir", "log-", "log-dir"},
	}
	for _, tc := range tests {
		t.Run(tc.prefix+"+"+tc.field, func(t *testing.T) {
			got := FlagName(tc.field, tc.prefix)
			if got != tc.want {
				t.Errorf("FlagName(%q, %q) = %q, want %q", tc.field, tc.prefix, got, tc.want)
			}
		})
	}
}

// The transform must be injective across one struct's fields: distinct
// field names may never collide after prefixing.
func TestFlagNameInjective(t *testing.T) {
	fields := []string{"dir", "to_stderr", "to-stderr_x", "level", "max_level"}
	for _, prefix := range []string{"", "log-", "log_", "log"} {
		seen := make(map[string]string)
		for _, f := range fields {
			name := FlagName(f, prefix)
			if prev, ok := seen[name]; ok {
				t.Errorf("prefix %q: fields %q and %q both map to %q", prefix, prev, f, name)
			}
			seen[name] = f
		}
	}
}

func TestCheckPrefix(t *testing.T) {
	valid := []string{"", "log-", "log_", "pw", "db2-", "A_b-"}
	for _, p := range valid {
		if err := CheckPrefix(p); err != nil {
			t.Errorf("CheckPrefix(%q) = %v, want nil", p, err)
		}
	}

	invalid := []string{"log.", "my prefix-", "café-", "log/"}
	for _, p := range invalid {
		if err := CheckPrefix(p); err == nil {
			t.Errorf("CheckPrefix(%q) = nil, want error", p)
		}
	}
}

func TestKebab(t *testing.T) {
	if got := Kebab("to_stderr"); got != "to-stderr" {
		t.Errorf("Kebab(to_stderr) = %q, want to-stderr", got)
	}
	if got := Kebab("dir"); got != "dir" {
		t.Errorf("Kebab(dir) = %q, want dir", got)
	}
}
