// Package client provides an HTTP client for the Pwnboard scoreboard API.
//
// The client wraps [github.com/go-resty/resty/v2] and sends each report as a
// JSON POST to a fixed route under the configured base URI.
//
// # Basic Usage
//
//	c, err := client.New("https://pwnboard.example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Close()
//
//	resp, err := c.Log(ctx, "10.0.0.5", "shell obtained", "ssh",
//	    client.WithLevel(client.LevelLoot),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.StatusCode())
//
// # Routes
//
//   - [Client.ReportBoxAccess] posts to /pwn/boxaccess
//   - [Client.ReportCredential] posts to /pwn/credential
//   - [Client.Log] posts to /pwn/log
//
// Optional fields are supplied as per-call options. A field is present in
// the request body only when its option was given.
//
// # Configuration
//
// Client configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained. The base
// URI must be non-empty and must not end with a trailing slash; otherwise
// [New] returns an error wrapping [ErrInvalidURI].
//
// # Errors and Responses
//
// The client never retries and never interprets the response. Any HTTP
// status, including 4xx and 5xx, is returned as a response for the caller to
// inspect. An error is returned only when the request could not be sent, as
// a [*TransportError].
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards
// all log output. Request bodies may contain captured passwords; they are
// never logged by the client.
package client
