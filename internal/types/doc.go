/*
Package types defines the data structures shared by the parsers, the codegen
plugins and the CLI.

# Request Description

Request is the generic HTTP request every codegen plugin consumes:
  - Method and URL, the URL already rendered as a full absolute string
  - Headers, an ordered list where each entry can be disabled
  - Body, optional, one of the modes raw, urlencoded, formdata, file, graphql

Request files written by hand may use the short forms:

	{
	  "name": "Create User",
	  "method": "POST",
	  "url": "https://api.example.com/users",
	  "headers": {
	    "Content-Type": "application/json"
	  },
	  "body": "{\"name\":\"John\"}"
	}

Headers given as an object keep their document order. A string body is a
raw body. The long forms mirror Postman collections:

	headers:
	  - key: Accept
	    value: application/json
	  - key: X-Debug
	    value: "1"
	    disabled: true
	body:
	  mode: urlencoded
	  urlencoded:
	    - key: name
	      value: john

# Conversion Options

ConvertOptions carries the knobs advertised by OptionDescriptor. Its zero
value means "use every default", so callers only set what they override.
FollowRedirect is a pointer because only an explicit false changes output.
*/
package types
