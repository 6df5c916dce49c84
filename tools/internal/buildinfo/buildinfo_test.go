// seehuhn.de/go/ldt - a library for reading and writing EULUMDAT files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromInfo(t *testing.T) {
	type testCase struct {
		version  string
		settings map[string]string
		want     string
	}
	testCases := []testCase{
		{"v0.2.0", nil, "v0.2.0"},
		{"(devel)", nil, "unknown"},
		{"(devel)", map[string]string{"vcs.revision": "0123456789abcdef"}, "01234567"},
		{"", map[string]string{"vcs.revision": "abc", "vcs.modified": "true"}, "abc+dirty"},
		{"v1.0.0", map[string]string{"vcs.revision": "abc"}, "v1.0.0"},
	}
	for i, tc := range testCases {
		info := &debug.BuildInfo{}
		info.Main.Version = tc.version
		for k, v := range tc.settings {
			info.Settings = append(info.Settings, debug.BuildSetting{Key: k, Value: v})
		}
		if got := fromInfo(info); got != tc.want {
			t.Errorf("%d: fromInfo() = %q, want %q", i, got, tc.want)
		}
	}
}

func TestLine(t *testing.T) {
	line := Line("ldt-inspect")
	if !strings.HasPrefix(line, "ldt-inspect ") {
		t.Errorf("unexpected version line %q", line)
	}
	if len(strings.Fields(line)) != 3 {
		t.Errorf("version line %q does not have three fields", line)
	}
}
