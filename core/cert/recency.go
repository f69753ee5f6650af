package cert

// VerifyRecency enforces certificate freshness: the reference block must be
// strictly before the current block, and the current block must not be
// more than recencyWindow blocks past the reference block. Exposed
// separately from Verify because recency depends on the caller's notion of
// "current block", which the rest of the pipeline does not need.
func VerifyRecency(currentBlock, referenceBlock uint64, recencyWindow uint64) error {
	if !(referenceBlock < currentBlock) {
		return ErrReferenceBlockDoesNotPrecedeCurrentBlock
	}
	if currentBlock-referenceBlock > recencyWindow {
		return ErrRecencyWindowMissed
	}
	return nil
}
