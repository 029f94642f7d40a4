// Package npm provides an HTTP client for the npm registry API.
//
// # Overview
//
// The client answers one question: when was this exact version of a package
// published? It reads the package document (GET <registry>/<name>) and looks
// the version up in its "time" object:
//
//	{
//	  "name": "lodash",
//	  "time": {
//	    "created": "2012-04-23T16:37:11.912Z",
//	    "4.17.21": "2021-02-20T15:42:16.891Z"
//	  }
//	}
//
// # Usage
//
//	client := npm.NewClient("")  // https://registry.npmjs.com
//	published, err := client.PublishTime(ctx, "lodash", "4.17.21")
//	var nf *npm.VersionNotFoundError
//	if errors.As(err, &nf) {
//	    fmt.Println("available:", nf.Available)
//	}
//
// # Errors
//
// A version missing from the "time" object is reported as
// [*VersionNotFoundError]; callers typically log it and carry on. Everything
// else is fatal and carries a pubdate error code: PACKAGE_NOT_FOUND for a 404,
// NETWORK_ERROR for connection failures and other non-2xx statuses,
// INVALID_RESPONSE for undecodable bodies or a missing "time" object, and
// INVALID_TIMESTAMP for dates that are not ISO 8601.
package npm
