// Package router holds the app-wide navigation state and its contracts.
//
// Allowed here:
// - the Router state holder and its mutation operations
// - screen, tab, destination and direction types
// - navigation messages and the commands that emit them
// - transition resolution (direction -> fixed slide/fade pair)
//
// Not allowed here:
// - rendering of any kind; views live in internal/tui
// - key handling policy
//
// The Router is single-writer: every mutation happens inside the tea.Program
// update loop, reached by sending a navigation message. Views never mutate
// the current screen directly; they emit NavigateCmd and the root model
// applies it. The per-tab stacks are the one exception, matching how native
// stack navigation integrates: the owning tab's view pushes and pops them,
// still only ever from within Update.
package router
