package types

// Tag identifies the kind of an LNURL first-step response.
type Tag string

// String returns the string form of the tag.
func (t Tag) String() string { return string(t) }

// LNURL tags understood by this module.
const (
	TagPayRequest      Tag = "payRequest"
	TagWithdrawRequest Tag = "withdrawRequest"
	TagChannelRequest  Tag = "channelRequest"
	TagLogin           Tag = "login"
)

// Status values carried in LNURL status replies.
const (
	StatusOK    = "OK"
	StatusError = "ERROR"
)

// HashingKey is the 32-byte LNURL-auth hashing key (LUD-05).
type HashingKey [32]byte

// Slice returns the key as a byte slice.
func (k HashingKey) Slice() []byte { return k[:] }
