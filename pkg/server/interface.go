/*
Package server implements msgpack IPC for the typo matching engine.

The server provides a minimal interface over stdin/stdout for a host
completion framework: it reads structured requests, dispatches them by op
name, and writes one response per request.

# IPC

Each message carries an ID the client uses to pair responses with requests,
and an op selecting the handler.

A best-match query:

	{"id": "req_001", "op": "try", "q": "foobor"}

answered with the selected candidate, its rune length, and timing:

	{"id": "req_001", "w": "foobar", "n": 6, "f": true, "t": 120}

A list-every-match query:

	{"id": "req_002", "op": "all", "q": "cat"}
	{"id": "req_002", "s": ["cats", "cast"], "c": 2, "t": 98}

Config messages adjust the matching policy at runtime and persist it to the
TOML file:

	{"id": "cfg_001", "op": "config", "typo_level": 2, "all_completions": false}

Unknown ops and invalid inputs come back as an ErrorResponse with a code.
All queries run against the dictionary source loaded at startup; timing is
reported in microseconds.
*/
package server

// Request is a single message from the host.
type Request struct {
	ID     string `msgpack:"id"`
	Op     string `msgpack:"op"`
	Input  string `msgpack:"q,omitempty"`
	Cursor int    `msgpack:"cur,omitempty"`

	// config op fields; nil leaves the setting untouched
	TypoLevel      *int  `msgpack:"typo_level,omitempty"`
	ShrinkBound    *int  `msgpack:"shrink_bound,omitempty"`
	ExpandBound    *int  `msgpack:"expand_bound,omitempty"`
	AllCompletions *bool `msgpack:"all_completions,omitempty"`
}

// TryResponse answers a "try" op. Found is false when nothing matched.
type TryResponse struct {
	ID        string `msgpack:"id"`
	Word      string `msgpack:"w,omitempty"`
	Length    int    `msgpack:"n,omitempty"`
	Found     bool   `msgpack:"f"`
	TimeTaken int64  `msgpack:"t"`
}

// AllResponse answers an "all" op.
type AllResponse struct {
	ID        string   `msgpack:"id"`
	Words     []string `msgpack:"s"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// StatusResponse answers "config" and "health" ops.
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
