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

package log

import (
	"context"
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/foldericon/pkg/status"
)

// 📢 UserLogger provides user-friendly feedback outside the status lines
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
	out io.Writer
}

// 🎯 NewUserLogger creates a new user logger writing to out
func NewUserLogger(ctx context.Context, out io.Writer) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
		out: out,
	}
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).WithWriter(u.out).Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(u.out).Println(description)
		pterm.Error.WithWriter(u.out).Println(err)
		u.log.Error().Err(err).Msg(description)
		return
	}
	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).WithWriter(u.out).Println(description)
	u.log.Warn().Msg(description)
}

// 📊 LogSummary prints outcome counts for a finished run
func (u *UserLogger) LogSummary(results []status.Result) {
	counts := status.Tally(results)

	failed := 0
	for o, n := range counts {
		if o.Failed() {
			failed += n
		}
	}
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).WithWriter(u.out)
	if failed > 0 {
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: "📦"}).WithWriter(u.out)
	}

	printer.Printfln("%d folders: %d applied, %d removed, %d without icon, %d failed",
		len(results), counts[status.Applied], counts[status.Removed], counts[status.NotFound], failed)

	ev := u.log.Info().Int("folders", len(results)).Int("failed", failed)
	for _, o := range status.Outcomes {
		ev = ev.Int(o.String(), counts[o])
	}
	ev.Msg("run complete")
}
