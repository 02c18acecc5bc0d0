/*
Package parser loads request descriptions from the formats people already have
lying around.

# Formats

  - .http files: ### separated requests, headers, blank line, body
  - YAML and JSON request files: one request or a list
  - Postman v2.1 collections: folders flattened to "folder/request" names
  - HAR archives: every HTTP(S) entry becomes a request
  - cURL command lines (ParseCurl), for the curl2wget command

Parse picks the format with DetectFormat: the extension first, then the content
of the file.

# Variables

VariableResolver replaces {{name}} placeholders with values from the -e flag
and from an env file, and {{env.NAME}} with process environment variables.
Unknown placeholders are left in place and reported by Unresolved.
*/
package parser
