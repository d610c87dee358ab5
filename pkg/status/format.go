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
	"fmt"

	"github.com/fatih/color"
)

// Formatter renders a Result as a single status line
type Formatter interface {
	FormatResult(r Result) string
}

// DefaultFormatter renders the coloured marker lines
type DefaultFormatter struct{}

// NewDefaultFormatter creates a new DefaultFormatter
func NewDefaultFormatter() *DefaultFormatter {
	return &DefaultFormatter{}
}

// FormatResult implements Formatter
func (f *DefaultFormatter) FormatResult(r Result) string {
	return FormatLine(r)
}

// 🎯 FormatLine formats a folder result for display
func FormatLine(r Result) string {
	var prefix string
	switch {
	case r.Outcome.Succeeded():
		prefix = color.GreenString("✓")
	case r.Outcome == NotFound:
		prefix = color.YellowString("~")
	default:
		prefix = color.RedString("✗")
	}

	detail := Detail(r)
	if detail == "" {
		return fmt.Sprintf("%s %s", prefix, r.Name())
	}
	return fmt.Sprintf("%s %s (%s)", prefix, r.Name(), detail)
}

// Detail is the parenthesised note for a result, empty for a plain success.
func Detail(r Result) string {
	switch r.Outcome {
	case Applied:
		return ""
	case Removed:
		return "icon removed"
	case NotFound:
		return "no icon found"
	case LoadFailed:
		return "couldn't load icon"
	case ApplyFailed:
		if r.Remove {
			return "failed to remove icon"
		}
		return "failed to set icon"
	case TargetMissing:
		return "not found"
	default:
		return "unknown result"
	}
}
