/*
Package status defines the per-folder outcome of a foldericon run and the
one-line report printed for it.

	+-------------+      +-------------+
	|   Result    | ---> |  Formatter  |
	| (Outcome)   |      | (one line)  |
	+-------------+      +-------------+

Outcomes and their lines:

	Applied        ✓ name
	Removed        ✓ name (icon removed)
	NotFound       ~ name (no icon found)
	LoadFailed     ✗ name (couldn't load icon)
	ApplyFailed    ✗ name (failed to set icon) | ✗ name (failed to remove icon)
	TargetMissing  ✗ name (not found)

Markers are coloured through fatih/color, which turns itself off when stdout
is not a terminal, so scripted output stays plain.
*/
package status
