package websocket

import "github.com/google/uuid"

// ChannelFor derives the broadcast channel of a bearer token. Every session
// holding the same token lands on the same channel, so a change made in one
// tab reaches the others. The token itself never leaves the process.
func ChannelFor(token string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(token))
}
