/*
Package server implements the IPC host adapter for prose completion.

A host (usually an editor) spawns the process and talks to it over
stdin/stdout. Each message is a msgpack map by default, or one JSON object
per line when the server runs with format = "json".

# IPC

Every request carries an ID and an optional action. Lookups are the default:

	{"id": "req_001", "q": "ca"}

The server answers with the completions, their count and the time taken in
microseconds:

	{"id": "req_001", "s": ["car", "cat"], "c": 2, "t": 38}

Other actions:

	{"id": "init_001", "a": "init"}    builds and installs the index
	{"id": "ping_001", "a": "health"}  liveness
	{"id": "st_001", "a": "stats"}     index counters

The server usually initializes the index itself right after start and
announces it with a status message:

	{"status": "ready", "message": "Prose-Complete module loaded", "entries": 2738}

# Errors

Failures never stop the loop. They are sent back as error messages carrying
the request ID, a human readable message and a code:

	{"id": "req_002", "e": "failed to acquire trie instance", "c": 503}

Codes: 400 malformed request, 409 double initialization, 503 index not
installed yet, 500 internal errors including entries that fail to decode.
*/
package server

// Request actions.
const (
	ActionLookup = "lookup"
	ActionInit   = "init"
	ActionHealth = "health"
	ActionStats  = "stats"
)

// Request - any message from the host
type Request struct {
	ID     string `msgpack:"id" json:"id"`
	Action string `msgpack:"a,omitempty" json:"a,omitempty"`
	Query  string `msgpack:"q" json:"q"`
}

// LookupResponse - completions for one query
type LookupResponse struct {
	ID          string   `msgpack:"id" json:"id"`
	Suggestions []string `msgpack:"s" json:"s"`
	Count       int      `msgpack:"c" json:"c"`
	TimeTaken   int64    `msgpack:"t" json:"t"`
}

// StatusMessage - init and health replies
type StatusMessage struct {
	ID      string `msgpack:"id,omitempty" json:"id,omitempty"`
	Status  string `msgpack:"status" json:"status"`
	Message string `msgpack:"message,omitempty" json:"message,omitempty"`
	Entries int    `msgpack:"entries,omitempty" json:"entries,omitempty"`
}

// StatsResponse - index and server counters
type StatsResponse struct {
	ID    string         `msgpack:"id" json:"id"`
	Stats map[string]int `msgpack:"stats" json:"stats"`
}

// ErrorResponse - the host-level error signal
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty" json:"id,omitempty"`
	Error string `msgpack:"e" json:"e"`
	Code  int    `msgpack:"c" json:"c"`
}

// Engine is what the server drives. completion.Module satisfies it.
type Engine interface {
	Init() (string, error)
	Lookup(query string) ([]string, error)
	Stats() (map[string]int, error)
}
