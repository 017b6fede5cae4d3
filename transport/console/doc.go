// Package console provides the terminal input collaborators for Gem Duel.
//
// Two KeySource implementations are available:
//   - KeyReader puts the terminal in raw mode for each read so a single key
//     press is delivered without Enter. Arrow keys map to U/D/L/R and
//     Ctrl-C / Ctrl-D end the game.
//   - StreamReader reads keys from any io.Reader, skipping whitespace, which
//     suits pipes, scripts and tests.
//
// Open chooses between them from the configured input mode, falling back to
// the stream reader when stdin is not a terminal.
package console
