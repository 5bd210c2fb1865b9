// Package feed imports supplier catalog exports into the product store.
//
// This package parses the XML feeds typically produced by shop platforms
// (YML / Horoshop exports and similar shapes), converts offers into products,
// and imports them concurrently in batches with progress tracking and retry
// logic with exponential backoff.
//
// Re-importing a feed is safe: products are upserted by ID, and a refresh
// with a blank description never wipes a curated one.
package feed
