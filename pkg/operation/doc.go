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

/*
Package operation runs a batch of folders through the icon pipeline.

🎯 Purpose:
- Expands the command line into the ordered list of target folders
- Applies (or removes) an icon on each target
- Keeps .gitignore files in step with freshly applied icons
- Reports every result as soon as it is known

🔄 Flow:

	paths ──► ExpandTargets ──► targets
	                              │
	                              ▼
	                 ┌──────── Runner ────────┐
	                 │ jobs=1: in order       │
	                 │ jobs>1: errgroup limit │
	                 └───────────┬────────────┘
	                             ▼
	             Applicator.Apply (per folder)
	                             │ Applied && !SkipGitignore
	                             ▼
	                  Gitignore.Ensure(folder)
	                             │
	                             ▼
	                    Reporter(result)

⚡ Key Rules:
- A failing folder never stops the batch
- --all takes exactly one parent and lists its visible subdirectories
- Usage errors are returned before any folder is touched
- Results come back in target order whatever the job count

🔍 Example:

	op, err := operation.New(operation.Options{
		Applicator: applicator,
		Gitignore:  gitignore.NewUpdater(),
		Reporter:   log.FromContext(ctx).LogResult,
	})
	results, err := op.Run(ctx, operation.Request{Paths: args, All: all})
*/
package operation
