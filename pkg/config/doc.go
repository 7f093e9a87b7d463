/*
Package config loads cdnpin settings from YAML, JSON, HCL or TOML.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	   +---------+-----+-----+---------+
	   |         |           |         |
	+--+---+  +--+---+  +----+--+  +---+--+
	| YAML |  | JSON |  |  HCL  |  | TOML |
	+------+  +------+  +-------+  +------+

🎯 Purpose:
- Picks a parser by file extension
- Fills omitted settings from Default
- Compiles rewrite rules up front so a bad pattern fails at load time

🔄 Flow:
1. Reads the file
2. Parses format-specific syntax, rejecting unknown keys
3. Applies defaults
4. Validates

🔍 Example (YAML):

	store: ./repositories
	concurrency: 8
	queries:
	  - q: "cdn.auth0.com/w2/auth0 user:auth0"
	    sort: created
	    order: asc
	rules:
	  - pattern: 'cdn\.auth0\.com/w2/auth0-([0-9]{1,2}\.)+(min\.)?js'
	    replacement: cdn.auth0.com/w2/auth0-2.0.15.js
	    files: ["*.html", "*.js"]

The same settings in HCL use repeated blocks:

	store = "${env.HOME}/repositories"

	query {
	  q     = "cdn.auth0.com/w2/auth0 user:auth0"
	  sort  = "created"
	  order = "asc"
	}

	rule {
	  pattern     = "cdn\\.auth0\\.com/w2/auth0-([0-9]{1,2}\\.)+(min\\.)?js"
	  replacement = "cdn.auth0.com/w2/auth0-2.0.15.js"
	}
*/
package config
