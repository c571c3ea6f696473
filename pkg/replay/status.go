package replay

// TransactionStatus is the structured outcome of one synthetic
// execute-transaction call. An on-chain-style execution failure is
// captured here, not propagated as a Go error: execution errors are data,
// infrastructure errors are control.
type TransactionStatus struct {
	Success              bool
	ErrCode              string
	Logs                 []string
	ComputeUnitsConsumed uint64

	// VaultCheckOK is a non-fatal vault-subtraction consistency signal,
	// meaningful only for collectProtocolFees/collectReward. Ok/Failed
	// default it to true since no vault check applies elsewhere.
	VaultCheckOK bool
}

// Ok builds a successful status with the given log lines.
func Ok(logs ...string) TransactionStatus {
	return TransactionStatus{Success: true, Logs: logs, ComputeUnitsConsumed: 1, VaultCheckOK: true}
}

// Failed builds a failed status carrying the on-chain-style error code
// (e.g. "0x1781" for a slippage violation).
func Failed(code string, logs ...string) TransactionStatus {
	return TransactionStatus{Success: false, ErrCode: code, Logs: logs, VaultCheckOK: true}
}
