// Package remote feeds paint sessions from the network.
//
// A [Server] accepts JSON events over a websocket at /ws and serves PNG
// snapshots of both surfaces at /persistent.png and /overlay.png. Every
// event and snapshot request is executed by a single dispatcher goroutine
// that owns the [paint.Controller], so the controller sees one event at a
// time no matter how many clients are connected.
//
// The same event format is used for recorded scripts: [Replay] applies a
// newline-delimited JSON stream to a controller.
package remote
