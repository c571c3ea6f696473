package replay

import "errors"

// Error kinds per the contract: execution errors are data, captured inside
// a TransactionStatus and never returned here; these sentinels cover only
// the infrastructure failures that halt the driver.
var (
	ErrAccountMissing      = errors.New("replay: required account missing from account map")
	ErrUnsupportedVariant  = errors.New("replay: unsupported instruction variant")
	ErrExecutorTimeout     = errors.New("replay: executor exceeded wall-clock budget")
	ErrSnapshotMismatch    = errors.New("replay: post-snapshot diverges from oracle")
	ErrMissingCreationTime = errors.New("replay: builder was never given a creation time")
	ErrProgramNotLoaded    = errors.New("replay: program bytecode not registered with host")
)
