// Package pipeline wires the stages of a smart-news run together: fetch
// headlines from every configured source, persist them, narrow them down to
// fresh and relevant articles with Gemini, and publish the result as
// Discord-ready Markdown.
package pipeline
