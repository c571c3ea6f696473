package replay

import "encoding/binary"

// ClockAccountDataSize is the synthesized Clock sysvar's on-chain size.
const ClockAccountDataSize = 40

// Clock mirrors the host chain's Clock sysvar. The replayer never reads a
// host wall-clock: every instruction's clock is pinned from its slot's
// block_time.
type Clock struct {
	Slot                uint64
	EpochStartTime      uint64
	Epoch               uint64
	LeaderScheduleEpoch uint64
	UnixTimestamp       int64
}

// Encode serializes the clock into the sysvar account's raw byte layout.
func (c Clock) Encode() []byte {
	data := make([]byte, ClockAccountDataSize)
	binary.LittleEndian.PutUint64(data[0:8], c.Slot)
	binary.LittleEndian.PutUint64(data[8:16], c.EpochStartTime)
	binary.LittleEndian.PutUint64(data[16:24], c.Epoch)
	binary.LittleEndian.PutUint64(data[24:32], c.LeaderScheduleEpoch)
	binary.LittleEndian.PutUint64(data[32:40], uint64(c.UnixTimestamp))
	return data
}
