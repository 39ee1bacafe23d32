// Package grabber is the entry point for clients: it resolves task ids to
// pages, fetches them through the transport and hands the documents to the
// extractor and parsers.
//
// Every operation works on documents fetched for that call alone; a Grabber
// holds no mutable state and is safe for concurrent use.
package grabber
