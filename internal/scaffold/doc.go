// Package scaffold materializes the project skeleton for the news pipeline.
// It powers the "smartnews scaffold" command: a fixed plan of directories and
// empty placeholder files is applied to an injected filesystem, creating
// whatever is missing and never touching what already exists.
package scaffold
