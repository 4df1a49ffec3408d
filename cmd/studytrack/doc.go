// Package main hosts the studytrack CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into progress
// engine operations: listing lessons, marking completion, navigating the
// course sequence, inspecting statistics, managing notes and bookmarks,
// running study sessions, and moving state in and out via export/import. It
// centralizes configuration resolution and logging setup so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
