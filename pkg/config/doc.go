/*
Package config manages configuration parsing and validation for foldericon.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Holds the icon search settings (priority locations, fallback name, exclusions)
- Holds batch defaults (gitignore handling, parallelism)
- Picks a parser from the file extension

🔄 Flow:
1. Discover finds an explicit file or the first config.{yaml,yml,hcl,json}
   under the user config dir
2. The matching parser decodes it, rejecting unknown fields
3. Validate fills defaults and rejects paths that escape the folder
4. No file at all means Default()

🔍 Example:

	cfg, err := config.Discover(ctx, "", config.DefaultDir())
	if err != nil {
		return err
	}
	r := resolve.New(resolve.FromConfig(cfg))

HCL files may refer to the built-in lists:

	locations = default_locations
	exclude   = default_exclude
	exclude_globs = ["vendor", "generated/**"]

	gitignore {
	  skip = true
	}
*/
package config
