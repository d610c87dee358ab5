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
	"path/filepath"
)

// 📊 Outcome is the result of processing one target folder
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	Applied                // Icon set on the folder
	Removed                // Custom icon cleared
	NotFound               // No candidate icon
	LoadFailed             // Candidate could not be decoded
	ApplyFailed            // Platform refused to set or clear the icon
	TargetMissing          // Folder does not exist
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Removed:
		return "removed"
	case NotFound:
		return "not_found"
	case LoadFailed:
		return "load_failed"
	case ApplyFailed:
		return "apply_failed"
	case TargetMissing:
		return "target_missing"
	default:
		return "unknown"
	}
}

// Succeeded reports whether the folder ended up in the requested state.
func (o Outcome) Succeeded() bool {
	return o == Applied || o == Removed
}

// Failed reports whether the outcome is an error. NotFound is neutral.
func (o Outcome) Failed() bool {
	switch o {
	case LoadFailed, ApplyFailed, TargetMissing, OutcomeUnknown:
		return true
	default:
		return false
	}
}

// Outcomes lists every reportable outcome in display order.
var Outcomes = []Outcome{Applied, Removed, NotFound, LoadFailed, ApplyFailed, TargetMissing}

// 📄 Result is produced once per target folder and never mutated
type Result struct {
	Folder   string  // Absolute path of the target folder
	Outcome  Outcome // What happened
	Remove   bool    // Whether the run was removing icons
	IconPath string  // Candidate used, empty when none
	Err      error   // Underlying error for failed outcomes
}

// Name is the folder name shown in the status line.
func (r Result) Name() string {
	return filepath.Base(r.Folder)
}

// Tally counts results per outcome.
func Tally(results []Result) map[Outcome]int {
	counts := make(map[Outcome]int, len(Outcomes))
	for _, r := range results {
		counts[r.Outcome]++
	}
	return counts
}
