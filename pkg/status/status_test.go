// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestFormatLine(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{
			name:   "applied",
			result: Result{Folder: "/work/A", Outcome: Applied, IconPath: "/work/A/icon.png"},
			want:   "✓ A",
		},
		{
			name:   "removed",
			result: Result{Folder: "/work/A", Outcome: Removed, Remove: true},
			want:   "✓ A (icon removed)",
		},
		{
			name:   "not_found",
			result: Result{Folder: "/work/B", Outcome: NotFound},
			want:   "~ B (no icon found)",
		},
		{
			name:   "load_failed",
			result: Result{Folder: "/work/C", Outcome: LoadFailed, Err: errors.New("bad png")},
			want:   "✗ C (couldn't load icon)",
		},
		{
			name:   "set_failed",
			result: Result{Folder: "/work/D", Outcome: ApplyFailed},
			want:   "✗ D (failed to set icon)",
		},
		{
			name:   "remove_failed",
			result: Result{Folder: "/work/D", Outcome: ApplyFailed, Remove: true},
			want:   "✗ D (failed to remove icon)",
		},
		{
			name:   "target_missing",
			result: Result{Folder: "/work/E", Outcome: TargetMissing},
			want:   "✗ E (not found)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLine(tt.result), "formatted line should match")
			assert.Equal(t, tt.want, NewDefaultFormatter().FormatResult(tt.result), "formatter should match FormatLine")
		})
	}
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		outcome   Outcome
		str       string
		succeeded bool
		failed    bool
	}{
		{Applied, "applied", true, false},
		{Removed, "removed", true, false},
		{NotFound, "not_found", false, false},
		{LoadFailed, "load_failed", false, true},
		{ApplyFailed, "apply_failed", false, true},
		{TargetMissing, "target_missing", false, true},
		{OutcomeUnknown, "unknown", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.outcome.String(), "String() should match")
			assert.Equal(t, tt.succeeded, tt.outcome.Succeeded(), "Succeeded() should match")
			assert.Equal(t, tt.failed, tt.outcome.Failed(), "Failed() should match")
		})
	}
}

func TestTally(t *testing.T) {
	counts := Tally([]Result{
		{Folder: "/a", Outcome: Applied},
		{Folder: "/b", Outcome: Applied},
		{Folder: "/c", Outcome: NotFound},
	})
	assert.Equal(t, 2, counts[Applied], "applied count should match")
	assert.Equal(t, 1, counts[NotFound], "not found count should match")
	assert.Zero(t, counts[LoadFailed], "load failed count should be zero")
}
