// Package updater checks GitHub releases for newer smartnews versions. The
// check runs in the background with a 24h on-disk cache; when a newer
// release is known, commands print a short banner on startup.
package updater
