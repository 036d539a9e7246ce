// Package discord renders enriched articles as webhook-ready Markdown and
// posts them to a Discord channel webhook.
package discord
