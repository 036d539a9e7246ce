// Package gemini is a minimal client for the Gemini generateContent API.
// The pipeline uses it twice: once to pick the most relevant headlines for
// the audience, and once to tag each selected article with a topic, an
// emoji, and a one-sentence summary.
package gemini
