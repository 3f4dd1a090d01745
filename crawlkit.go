// Package crawlkit provides a concurrent, deduplicated, depth-bounded
// link crawler with on-disk memoization. Given a seed resource it
// fetches content, extracts outbound references, and recursively visits
// them up to a bounded depth, guaranteeing that no resource is fetched
// more than once per crawl even when concurrent branches discover the
// same resource simultaneously. Fetched content is persisted so repeat
// crawls read from the store instead of the network.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., fs/,
// sqlite/, goquery/, http/).
package crawlkit
